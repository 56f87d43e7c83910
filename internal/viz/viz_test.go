package viz

import (
	"image/color"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"
	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/mesh"
	"github.com/san-kum/ribbons/internal/render"
	"github.com/san-kum/ribbons/internal/trail"
	"gonum.org/v1/gonum/spatial/r2"
)

var red = color.NRGBA{R: 255, A: 255}

func litCount(c *Canvas) int {
	w, h := c.PixelSize()
	n := 0
	for y := range h {
		for x := range w {
			if c.Lit(x, y) {
				n++
			}
		}
	}
	return n
}

func TestCanvasSetAndClear(t *testing.T) {
	g := NewWithT(t)

	c := NewCanvas(2, 1)
	c.Set(0, 0, red)
	c.Set(3, 3, red)
	c.Set(-1, 0, red)
	c.Set(4, 0, red)

	g.Expect(c.Grid[0][0]).To(Equal(rune(0x2801)))
	g.Expect(c.Grid[0][1]).To(Equal(rune(0x2880)))
	g.Expect(c.Colors[0][1]).To(Equal(red))
	g.Expect(litCount(c)).To(Equal(2))

	c.Clear()
	g.Expect(c.String()).To(Equal("\u2800\u2800\n"))
	g.Expect(c.Colors[0][0]).To(Equal(color.NRGBA{}))
}

func TestFillTriangleEitherWinding(t *testing.T) {
	g := NewWithT(t)

	ccw := NewCanvas(10, 5)
	ccw.FillTriangle(0, 0, 0, 20, 20, 20, red)
	cw := NewCanvas(10, 5)
	cw.FillTriangle(0, 0, 20, 20, 0, 20, red)

	g.Expect(litCount(ccw)).To(BeNumerically(">", 150))
	g.Expect(litCount(ccw)).To(Equal(litCount(cw)))
	g.Expect(ccw.Lit(1, 18)).To(BeTrue())
	g.Expect(ccw.Lit(18, 1)).To(BeFalse())
}

func TestFillTriangleDegenerate(t *testing.T) {
	g := NewWithT(t)

	c := NewCanvas(10, 5)
	c.FillTriangle(0, 0, 5, 5, 10, 10, red)
	g.Expect(litCount(c)).To(Equal(0))
}

func TestDrawLineEndpoints(t *testing.T) {
	g := NewWithT(t)

	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19, red)
	g.Expect(c.Lit(0, 0)).To(BeTrue())
	g.Expect(c.Lit(19, 19)).To(BeTrue())
	g.Expect(litCount(c)).To(Equal(20))
}

func TestRenderKeepsCellText(t *testing.T) {
	g := NewWithT(t)

	c := NewCanvas(3, 2)
	c.Set(0, 0, red)
	out := c.Render("#000000")
	g.Expect(out).To(ContainSubstring("⠁"))
	g.Expect(strings.Count(out, "\n")).To(Equal(1))
}

func TestCanvasSinkDrawsRibbon(t *testing.T) {
	g := NewWithT(t)

	h := trail.New(2, 2)
	col := hsla.HSLA(0.3, 0.5, 0.5, 0.5)
	_ = h.PushBatch([]trail.Record{{Pos: r2.Vec{X: -500, Y: -500}, Color: col}, {Pos: r2.Vec{X: 500, Y: -500}, Color: col}})
	_ = h.PushBatch([]trail.Record{{Pos: r2.Vec{X: -500, Y: 500}, Color: col}, {Pos: r2.Vec{X: 500, Y: 500}, Color: col}})

	sink := NewCanvasSink(NewCanvas(40, 20), 1000)
	err := sink.Submit(render.Frame{
		Background: hsla.Background(0.5),
		Circle:     render.Circle{Radius: 1000, Color: hsla.CircleColor(0.5)},
		Mesh:       mesh.Build(h, 2),
	})
	g.Expect(err).NotTo(HaveOccurred())

	w, hgt := sink.Canvas.PixelSize()
	g.Expect(sink.Canvas.Lit(w/2, hgt/2)).To(BeTrue())
	g.Expect(sink.Canvas.Lit(0, 0)).To(BeFalse())
	g.Expect(sink.View()).NotTo(BeEmpty())
}

func TestModelTicksWithWallClock(t *testing.T) {
	g := NewWithT(t)

	cfg := config.DefaultConfig()
	cfg.ParticleCount = 4
	cfg.HistoryEpochs = 10
	m := NewModel(cfg, 7)

	start := time.Unix(100, 0)
	next, cmd := m.Update(TickMsg(start))
	g.Expect(cmd).NotTo(BeNil())
	m = next.(Model)
	g.Expect(m.sim.Ticks()).To(Equal(0))

	next, _ = m.Update(TickMsg(start.Add(time.Second / 2)))
	m = next.(Model)
	g.Expect(m.sim.Ticks()).To(Equal(1))
	g.Expect(m.sim.Time()).To(BeNumerically("~", 0.5, 1e-9))
	g.Expect(m.radius.Values()).To(HaveLen(1))
	g.Expect(m.View()).To(ContainSubstring("RUNNING"))
}

func TestModelPauseAndReseed(t *testing.T) {
	g := NewWithT(t)

	cfg := config.DefaultConfig()
	cfg.ParticleCount = 3
	m := NewModel(cfg, 7)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m = next.(Model)
	g.Expect(m.running).To(BeFalse())
	g.Expect(m.View()).To(ContainSubstring("PAUSED"))

	next, _ = m.Update(TickMsg(time.Unix(1, 0)))
	next, _ = next.(Model).Update(TickMsg(time.Unix(2, 0)))
	m = next.(Model)
	g.Expect(m.sim.Ticks()).To(Equal(0))

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)
	g.Expect(m.seed).To(Equal(int64(8)))
}

func TestModelQuit(t *testing.T) {
	g := NewWithT(t)

	m := NewModel(config.DefaultConfig(), 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(cmd()).To(Equal(tea.Quit()))
}
