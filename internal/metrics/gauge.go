package metrics

import (
	"math"

	"github.com/san-kum/ribbons/internal/physics"
)

// Gauge reads one scalar off the swarm.
type Gauge func(s *physics.Swarm) float64

func MeanRadius(s *physics.Swarm) float64 {
	return mean(s, (*physics.Particle).Radius)
}

func MeanSpeed(s *physics.Swarm) float64 {
	return mean(s, (*physics.Particle).Speed)
}

// MaxRadius is the distance of the farthest particle from the origin.
func MaxRadius(s *physics.Swarm) float64 {
	m := 0.0
	for i := range s.Particles {
		m = math.Max(m, s.Particles[i].Radius())
	}
	return m
}

// MinRadius is the distance of the particle closest to the origin, where the
// force term grows without bound.
func MinRadius(s *physics.Swarm) float64 {
	if len(s.Particles) == 0 {
		return 0
	}
	m := math.Inf(1)
	for i := range s.Particles {
		m = math.Min(m, s.Particles[i].Radius())
	}
	return m
}

// FiniteFraction is the share of particles whose state holds no NaN or Inf.
func FiniteFraction(s *physics.Swarm) float64 {
	if len(s.Particles) == 0 {
		return 1
	}
	n := 0
	for i := range s.Particles {
		if s.Particles[i].IsFinite() {
			n++
		}
	}
	return float64(n) / float64(len(s.Particles))
}

func mean(s *physics.Swarm, f func(*physics.Particle) float64) float64 {
	if len(s.Particles) == 0 {
		return 0
	}
	sum := 0.0
	for i := range s.Particles {
		sum += f(&s.Particles[i])
	}
	return sum / float64(len(s.Particles))
}
