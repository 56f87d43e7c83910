package metrics

import "github.com/san-kum/ribbons/internal/physics"

// Trace records a gauge on every tick, keeping at most capacity samples
// (the oldest are dropped). A capacity of 0 keeps everything.
type Trace struct {
	Name     string
	gauge    Gauge
	capacity int
	values   []float64
	times    []float64
}

func NewTrace(name string, g Gauge, capacity int) *Trace {
	return &Trace{Name: name, gauge: g, capacity: capacity}
}

func (tr *Trace) OnTick(s *physics.Swarm, t float64) {
	tr.values = append(tr.values, tr.gauge(s))
	tr.times = append(tr.times, t)
	if tr.capacity > 0 && len(tr.values) > tr.capacity {
		tr.values = tr.values[1:]
		tr.times = tr.times[1:]
	}
}

func (tr *Trace) Values() []float64 { return tr.values }
func (tr *Trace) Times() []float64  { return tr.times }

func (tr *Trace) Last() float64 {
	if len(tr.values) == 0 {
		return 0
	}
	return tr.values[len(tr.values)-1]
}

func (tr *Trace) Reset() {
	tr.values = tr.values[:0]
	tr.times = tr.times[:0]
}

// Standard returns the metric set the stats command reports.
func Standard(orbitalRadius float64) []Metric {
	return []Metric{
		NewAverage("mean_radius", MeanRadius),
		NewAverage("mean_speed", MeanSpeed),
		NewPeak("max_radius", MaxRadius),
		NewRadiusDrift(orbitalRadius),
		NewStability(orbitalRadius * 0.01),
	}
}

// Metric mirrors sim.Metric so this package stays free of the simulator.
type Metric interface {
	Name() string
	Observe(s *physics.Swarm, t float64)
	Value() float64
	Reset()
}
