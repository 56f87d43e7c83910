package render

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/san-kum/ribbons/internal/dynamo"
)

// Options configure a file-backed sink.
type Options struct {
	Path          string
	Width, Height int
	OrbitalRadius float64
}

// Factory builds a sink from options.
type Factory func(Options) (Sink, error)

type Registry struct {
	sinks map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{sinks: make(map[string]Factory)}
}

func (r *Registry) Register(name string, fn Factory) {
	r.sinks[name] = fn
}

func (r *Registry) Get(name string, opts Options) (Sink, error) {
	fn, ok := r.sinks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownSink, name, r.List())
	}
	return fn(opts)
}

// ForPath picks a sink by the file extension of opts.Path.
func (r *Registry) ForPath(opts Options) (Sink, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")
	return r.Get(ext, opts)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
