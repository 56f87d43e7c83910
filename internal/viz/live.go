package viz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/metrics"
	"github.com/san-kum/ribbons/internal/sim"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statsWidth    = 44
	traceCapacity = 300
	frameInterval = time.Second / 60
)

type TickMsg time.Time

// Model drives a simulator from bubbletea ticks, passing the wall-clock time
// since the previous tick as dt.
type Model struct {
	cfg      *config.Config
	seed     int64
	sim      *sim.Simulator
	sink     *CanvasSink
	radius   *metrics.Trace
	speed    *metrics.Trace
	last     time.Time
	running  bool
	showHelp bool
	err      error
}

// NewModel builds the first simulation from cfg. cfg is resolved again on
// every reset, so unset hues change with the seed.
func NewModel(cfg *config.Config, seed int64) Model {
	m := Model{
		cfg:     cfg,
		sink:    NewCanvasSink(NewCanvas(defaultWidth, defaultHeight), cfg.OrbitalRadius),
		radius:  metrics.NewTrace("mean_radius", metrics.MeanRadius, traceCapacity),
		speed:   metrics.NewTrace("mean_speed", metrics.MeanSpeed, traceCapacity),
		running: true,
	}
	m.restart(seed)
	return m
}

func (m *Model) restart(seed int64) {
	m.seed = seed
	rng := dynamo.NewRand(seed)
	resolved := m.cfg.Resolve(rng)
	m.radius.Reset()
	m.speed.Reset()
	m.sim = sim.New(resolved.SimParams(), rng, m.sink)
	m.sim.AddObserver(m.radius)
	m.sim.AddObserver(m.speed)
	m.last = time.Time{}
	dynamo.Logger().Info("live simulation started", "seed", seed,
		"hue_start", *resolved.HueStart, "background_hue", *resolved.BackgroundHue)
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
			m.last = time.Time{}
		case "r":
			m.restart(m.seed + 1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		w := max(msg.Width-statsWidth-2, 10)
		h := max(msg.Height-1, 5)
		m.sink.Canvas = NewCanvas(w, h)
	case TickMsg:
		now := time.Time(msg)
		if m.running {
			if !m.last.IsZero() {
				if err := m.sim.Tick(now.Sub(m.last).Seconds()); err != nil {
					m.err = err
				}
			}
			m.last = now
		}
		return m, tick()
	}
	return m, nil
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("RIBBONS") + "\n")
	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if values := m.radius.Values(); len(values) > 1 {
		chart := asciigraph.Plot(values, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Mean radius"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	p := m.sim.Params()
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", m.sim.Time()))
	row("Ticks", fmt.Sprintf("%d", m.sim.Ticks()))
	row("Seed", fmt.Sprintf("%d", m.seed))
	row("Particles", fmt.Sprintf("%d", p.ParticleCount))
	row("Epochs", fmt.Sprintf("%d/%d", m.sim.History().Epochs(), p.HistoryEpochs))
	row("Triangles", fmt.Sprintf("%d", m.sim.Mesh().Triangles()))
	row("Radius", fmt.Sprintf("%.1f", m.radius.Last()))
	row("Speed", fmt.Sprintf("%.1f", m.speed.Last()))
	if m.err != nil {
		row("Error", m.err.Error())
	}

	s.WriteString("\nSLOTS\n")
	colors := m.sim.Colors()
	swatch := make([]color.NRGBA, len(colors))
	for i, c := range colors {
		swatch[i] = c.RGBA()
		swatch[i].A = 255
	}
	s.WriteString(Swatch(swatch) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reseed Q:Quit ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, m.sink.View(), statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Restart with next seed   ║
║  Q/Esc    - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the terminal view and blocks until the user quits.
func Run(cfg *config.Config, seed int64) error {
	p := tea.NewProgram(NewModel(cfg, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
