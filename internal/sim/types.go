package sim

import "github.com/san-kum/ribbons/internal/physics"

// Params are the resolved knobs of one simulation. Random choices such as
// the hues are already fixed here; see config.Resolve.
type Params struct {
	ParticleCount  int
	OrbitalRadius  float64
	HistoryEpochs  int
	VelocityJitter float64
	GM             float64
	ColorDrift     float64
	HueStart       float64
	HueRange       float64
	BackgroundHue  float64
}

// Metric aggregates an observation of the swarm over a run.
type Metric interface {
	Name() string
	Observe(s *physics.Swarm, t float64)
	Value() float64
	Reset()
}

// Observer sees the swarm after every tick.
type Observer interface {
	OnTick(s *physics.Swarm, t float64)
}

// RunConfig drives a headless run.
type RunConfig struct {
	Dt            float64
	Ticks         int
	ValidateState bool
}

type Result struct {
	Ticks   int
	Time    float64
	Metrics map[string]float64
	Errors  []error
}
