package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/metrics"
	"github.com/san-kum/ribbons/internal/sim"
)

var (
	ColText    = rl.NewColor(220, 220, 220, 255)
	ColTextDim = rl.NewColor(140, 140, 140, 200)
	ColAccent  = rl.NewColor(240, 240, 240, 220)
)

const telemetryCapacity = 400

type App struct {
	Config    *config.Config
	Seed      int64
	Sim       *sim.Simulator
	Sink      *WindowSink
	Telemetry *metrics.Trace
	Running   bool
	ShowHUD   bool
}

// initWindow opens a resizable 1280x720 window at 60 FPS and disables the
// default exit key.
func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "ribbons")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config, seed int64) *App {
	app := &App{
		Config:    cfg,
		Sink:      &WindowSink{OrbitalRadius: cfg.OrbitalRadius},
		Telemetry: metrics.NewTrace("mean_radius", metrics.MeanRadius, telemetryCapacity),
		Running:   true,
		ShowHUD:   true,
	}
	app.restart(seed)
	return app
}

func (a *App) restart(seed int64) {
	a.Seed = seed
	rng := dynamo.NewRand(seed)
	resolved := a.Config.Resolve(rng)
	a.Telemetry.Reset()
	a.Sim = sim.New(resolved.SimParams(), rng, a.Sink)
	a.Sim.AddObserver(a.Telemetry)
	dynamo.Logger().Info("window simulation started", "seed", seed,
		"hue_start", *resolved.HueStart, "hue_range", *resolved.HueRange,
		"background_hue", *resolved.BackgroundHue)
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, seed int64) error {
	initWindow()
	defer rl.CloseWindow()
	return NewApp(cfg, seed).RunLoop()
}

// RunLoop ticks the simulator once per frame with the frame's wall-clock
// duration. The tick's sink draws the frame; the HUD goes on top.
func (a *App) RunLoop() error {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return nil
		}
		a.handleKeys()

		rl.BeginDrawing()
		var err error
		if a.Running {
			err = a.Sim.Tick(float64(rl.GetFrameTime()))
		} else {
			err = a.Sink.Submit(a.Sim.Frame())
		}
		if a.ShowHUD {
			a.DrawHUD()
		}
		rl.EndDrawing()

		if err != nil {
			return fmt.Errorf("tick %d: %w", a.Sim.Ticks(), err)
		}
	}
	return nil
}

func (a *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.restart(a.Seed + 1)
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}
}

func (a *App) DrawHUD() {
	rl.DrawText("ribbons", 30, 30, 24, ColText)
	rl.DrawText(fmt.Sprintf("seed %d  ticks %d  t %.1fs", a.Seed, a.Sim.Ticks(), a.Sim.Time()), 30, 60, 14, ColTextDim)

	status, col := "RUNNING", ColText
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawText(status, w-130, 30, 16, col)

	a.DrawTelemetry(30, int(h)-110, 400, 60)
	rl.DrawText("[SPACE] PAUSE  [R] RESEED  [H] HUD  [Q] QUIT", w-460, h-40, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, h-40, 14, ColTextDim)
}

// DrawTelemetry plots the mean-radius trace as a line strip.
func (a *App) DrawTelemetry(rectX, rectY, width, height int) {
	values := a.Telemetry.Values()
	if len(values) < 2 {
		return
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(values))
	for i, val := range values {
		px := float32(rectX) + (float32(i)/float32(len(values)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("r: %.1f", a.Telemetry.Last()), int32(rectX+width+10), int32(rectY+height-10), 14, ColText)
}
