package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/render"
)

// WindowSink draws frames into the current raylib drawing pass. It must be
// submitted to between BeginDrawing and EndDrawing.
type WindowSink struct {
	OrbitalRadius float64
}

// camera fits the orbit to the window and centres the world origin. World y
// is negated when drawing, so +y points up on screen.
func (s *WindowSink) camera() rl.Camera2D {
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	return rl.Camera2D{
		Offset: rl.NewVector2(float32(w/2), float32(h/2)),
		Zoom:   float32(render.FitScale(w, h, s.OrbitalRadius)),
	}
}

func (s *WindowSink) Submit(f render.Frame) error {
	rl.ClearBackground(rlColor(f.Background.RGBA()))

	rl.BeginMode2D(s.camera())
	defer rl.EndMode2D()

	rl.DrawCircleV(rl.NewVector2(0, 0), float32(f.Circle.Radius), rlColor(f.Circle.Color.RGBA()))

	if f.Mesh == nil {
		return nil
	}
	for t := range f.Mesh.Triangles() {
		a, b, c := f.Mesh.Triangle(t)
		va := rl.NewVector2(float32(a.Pos.X), float32(-a.Pos.Y))
		vb := rl.NewVector2(float32(b.Pos.X), float32(-b.Pos.Y))
		vc := rl.NewVector2(float32(c.Pos.X), float32(-c.Pos.Y))
		// raylib only fills triangles given counter-clockwise on screen.
		if cross(va, vb, vc) > 0 {
			vb, vc = vc, vb
		}
		rl.DrawTriangle(va, vb, vc, rlColor(hsla.Average(a.Color, b.Color, c.Color)))
	}
	return nil
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func rlColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
