package export

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/render"
)

// PNG rasterizes each submitted frame with gg and writes it to Path,
// overwriting the previous frame.
type PNG struct {
	path string
	view viewport
	w, h int
}

func NewPNG(opts render.Options) (render.Sink, error) {
	v, err := newViewport(opts)
	if err != nil {
		return nil, err
	}
	return &PNG{path: opts.Path, view: v, w: opts.Width, h: opts.Height}, nil
}

func (p *PNG) Submit(f render.Frame) error {
	dc := p.draw(f)
	defer dc.Close()
	if err := dc.SavePNG(p.path); err != nil {
		return fmt.Errorf("write %s: %w", p.path, err)
	}
	dynamo.Logger().Debug("png written", "path", p.path, "triangles", triangles(f))
	return nil
}

// Encode renders f and writes the PNG bytes to w.
func (p *PNG) Encode(w io.Writer, f render.Frame) error {
	dc := p.draw(f)
	defer dc.Close()
	return dc.EncodePNG(w)
}

func (p *PNG) draw(f render.Frame) *gg.Context {
	dc := gg.NewContext(p.w, p.h)
	dc.ClearWithColor(toRGBA(f.Background))

	cx, cy := p.view.project(0, 0)
	setColor(dc, f.Circle.Color)
	dc.DrawCircle(cx, cy, f.Circle.Radius*p.view.scale)
	_ = dc.Fill()

	if f.Mesh == nil {
		return dc
	}
	for t := range f.Mesh.Triangles() {
		a, b, c := f.Mesh.Triangle(t)
		col := hsla.Average(a.Color, b.Color, c.Color)
		dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
		dc.MoveTo(p.view.project(a.Pos.X, a.Pos.Y))
		dc.LineTo(p.view.project(b.Pos.X, b.Pos.Y))
		dc.LineTo(p.view.project(c.Pos.X, c.Pos.Y))
		dc.ClosePath()
		_ = dc.Fill()
	}
	return dc
}

func toRGBA(c hsla.Color) gg.RGBA {
	r, g, b := c.RGB()
	return gg.RGBA{R: r, G: g, B: b, A: c.A}
}

func setColor(dc *gg.Context, c hsla.Color) {
	r, g, b := c.RGB()
	dc.SetRGBA(r, g, b, c.A)
}

func triangles(f render.Frame) int {
	if f.Mesh == nil {
		return 0
	}
	return f.Mesh.Triangles()
}
