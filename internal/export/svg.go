package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/render"
)

// SVG writes each submitted frame as a vector image: a background rect, the
// reference circle, and one polygon per ribbon triangle.
type SVG struct {
	path string
	view viewport
}

func NewSVG(opts render.Options) (render.Sink, error) {
	v, err := newViewport(opts)
	if err != nil {
		return nil, err
	}
	return &SVG{path: opts.Path, view: v}, nil
}

func (s *SVG) Submit(f render.Frame) error {
	out, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := s.Encode(out, f); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	dynamo.Logger().Debug("svg written", "path", s.path, "triangles", triangles(f))
	return out.Close()
}

func (s *SVG) Encode(w io.Writer, f render.Frame) error {
	_, err := io.WriteString(w, s.Render(f))
	return err
}

// Render returns the SVG document for f.
func (s *SVG) Render(f render.Frame) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.view.width, s.view.height, s.view.width, s.view.height, f.Background.Hex()))

	cx, cy := s.view.project(0, 0)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, f.Circle.Radius*s.view.scale, f.Circle.Color.Hex()))

	if f.Mesh != nil {
		sb.WriteString("<g stroke=\"none\">\n")
		for t := range f.Mesh.Triangles() {
			a, b, c := f.Mesh.Triangle(t)
			col := hsla.Average(a.Color, b.Color, c.Color)
			ax, ay := s.view.project(a.Pos.X, a.Pos.Y)
			bx, by := s.view.project(b.Pos.X, b.Pos.Y)
			qx, qy := s.view.project(c.Pos.X, c.Pos.Y)
			sb.WriteString(fmt.Sprintf(`<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="#%02x%02x%02x" fill-opacity="%.3f"/>
`, ax, ay, bx, by, qx, qy, col.R, col.G, col.B, float64(col.A)/255))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
