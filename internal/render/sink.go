// Package render defines the boundary between the simulation core and
// whatever draws its output. The core hands a [Frame] to a [Sink] once per
// tick; scaling, rasterization and presentation belong to the sink.
package render

import (
	"errors"

	"github.com/san-kum/ribbons/internal/hsla"
	"github.com/san-kum/ribbons/internal/mesh"
)

// Circle is the static reference orbit drawn under the ribbon.
type Circle struct {
	Radius float64
	Color  hsla.Color
}

// Frame is everything a sink needs to draw one tick. Mesh is owned by the
// simulator and is only valid until the next tick.
type Frame struct {
	Background hsla.Color
	Circle     Circle
	Mesh       *mesh.Mesh
}

type Sink interface {
	Submit(f Frame) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Frame) error

func (fn SinkFunc) Submit(f Frame) error { return fn(f) }

// Discard accepts and drops every frame.
var Discard Sink = SinkFunc(func(Frame) error { return nil })

type multi []Sink

// Multi submits each frame to every sink in order. All sinks see the frame
// even if one fails; the errors are joined.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Submit(f Frame) error {
	var errs []error
	for _, s := range m {
		if err := s.Submit(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps a deep copy of the most recent frame.
type Recorder struct {
	Last   Frame
	Frames int
}

func (r *Recorder) Submit(f Frame) error {
	r.Frames++
	r.Last = f
	if f.Mesh != nil {
		r.Last.Mesh = &mesh.Mesh{
			Vertices: append([]mesh.Vertex(nil), f.Mesh.Vertices...),
			Indices:  append([]uint32(nil), f.Mesh.Indices...),
		}
	}
	return nil
}

// FitScale is the world-to-screen factor that fits the orbit, plus a 10%
// margin, into a width×height viewport.
func FitScale(width, height, orbitalRadius float64) float64 {
	return min(width, height) / 2 / orbitalRadius / 1.1
}
