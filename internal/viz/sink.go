package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/render"
)

// CanvasSink rasterizes frames onto a braille canvas: the reference circle
// as an outline and every ribbon triangle filled with its average colour.
type CanvasSink struct {
	Canvas        *Canvas
	OrbitalRadius float64
	background    lipgloss.Color
}

func NewCanvasSink(c *Canvas, orbitalRadius float64) *CanvasSink {
	return &CanvasSink{Canvas: c, OrbitalRadius: orbitalRadius}
}

func (s *CanvasSink) Submit(f render.Frame) error {
	c := s.Canvas
	c.Clear()
	s.background = lipgloss.Color(f.Background.Hex())

	w, h := c.PixelSize()
	scale := render.FitScale(float64(w), float64(h), s.OrbitalRadius)
	project := func(x, y float64) (float64, float64) {
		return float64(w)/2 + x*scale, float64(h)/2 - y*scale
	}

	cx, cy := project(0, 0)
	c.DrawCircle(cx, cy, f.Circle.Radius*scale, opaque(f.Circle.Color))

	if f.Mesh == nil {
		return nil
	}
	for t := range f.Mesh.Triangles() {
		a, b, v := f.Mesh.Triangle(t)
		ax, ay := project(a.Pos.X, a.Pos.Y)
		bx, by := project(b.Pos.X, b.Pos.Y)
		vx, vy := project(v.Pos.X, v.Pos.Y)
		col := hsla.Average(a.Color, b.Color, v.Color)
		col.A = 255
		c.FillTriangle(ax, ay, bx, by, vx, vy, col)
	}
	return nil
}

// View renders the last submitted frame.
func (s *CanvasSink) View() string {
	return s.Canvas.Render(s.background)
}

func opaque(c hsla.Color) color.NRGBA {
	n := c.RGBA()
	n.A = 255
	return n
}
