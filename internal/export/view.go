package export

import (
	"fmt"

	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/render"
)

// viewport maps world coordinates onto an image.
type viewport struct {
	width, height float64
	scale         float64
}

func newViewport(opts render.Options) (viewport, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return viewport{}, fmt.Errorf("%w: image size %dx%d", dynamo.ErrInvalidConfig, opts.Width, opts.Height)
	}
	if opts.OrbitalRadius <= 0 {
		return viewport{}, fmt.Errorf("%w: orbital radius %g", dynamo.ErrInvalidConfig, opts.OrbitalRadius)
	}
	w, h := float64(opts.Width), float64(opts.Height)
	return viewport{width: w, height: h, scale: render.FitScale(w, h, opts.OrbitalRadius)}, nil
}

func (v viewport) project(x, y float64) (float64, float64) {
	return v.width/2 + x*v.scale, v.height/2 - y*v.scale
}

// Register adds the png and svg sinks to r.
func Register(r *render.Registry) {
	r.Register("png", NewPNG)
	r.Register("svg", NewSVG)
}

// NewRegistry returns a registry holding every sink in this package.
func NewRegistry() *render.Registry {
	r := render.NewRegistry()
	Register(r)
	return r
}
