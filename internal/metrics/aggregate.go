package metrics

import (
	"math"

	"github.com/san-kum/ribbons/internal/physics"
)

// Average is the time average of a gauge over every observed tick.
type Average struct {
	name    string
	gauge   Gauge
	total   float64
	samples int
}

func NewAverage(name string, g Gauge) *Average {
	return &Average{name: name, gauge: g}
}

func (a *Average) Name() string { return a.name }

func (a *Average) Observe(s *physics.Swarm, t float64) {
	a.total += a.gauge(s)
	a.samples++
}

func (a *Average) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.total / float64(a.samples)
}

func (a *Average) Reset() {
	a.total = 0
	a.samples = 0
}

// RadiusDrift is the largest relative departure of the mean radius from the
// reference orbit seen during a run.
type RadiusDrift struct {
	name     string
	orbit    float64
	maxDrift float64
}

func NewRadiusDrift(orbitalRadius float64) *RadiusDrift {
	return &RadiusDrift{name: "radius_drift", orbit: orbitalRadius}
}

func (r *RadiusDrift) Name() string { return r.name }

func (r *RadiusDrift) Observe(s *physics.Swarm, t float64) {
	if r.orbit == 0 {
		return
	}
	drift := math.Abs(MeanRadius(s)-r.orbit) / r.orbit
	r.maxDrift = math.Max(r.maxDrift, drift)
}

func (r *RadiusDrift) Value() float64 { return r.maxDrift }
func (r *RadiusDrift) Reset()         { r.maxDrift = 0 }

// Peak is the maximum of a gauge over a run.
type Peak struct {
	name  string
	gauge Gauge
	peak  float64
	seen  bool
}

func NewPeak(name string, g Gauge) *Peak {
	return &Peak{name: name, gauge: g}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(s *physics.Swarm, t float64) {
	v := p.gauge(s)
	if !p.seen || v > p.peak {
		p.peak = v
		p.seen = true
	}
}

func (p *Peak) Value() float64 { return p.peak }

func (p *Peak) Reset() {
	p.peak = 0
	p.seen = false
}
