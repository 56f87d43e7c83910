package metrics

import (
	"github.com/san-kum/ribbons/internal/physics"
)

// Stability is the fraction of observed ticks on which every particle was
// finite and no closer to the origin than threshold.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(sw *physics.Swarm, t float64) {
	s.samples++
	for i := range sw.Particles {
		p := &sw.Particles[i]
		if !p.IsFinite() || p.Radius() < s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
