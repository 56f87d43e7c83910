package physics

import (
	"math"

	"github.com/san-kum/ribbons/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

type Swarm struct {
	Particles []Particle
}

// NewSwarm places count particles on a circle of radius orbitalRadius.
//
// Each particle moves tangentially at sqrt(gm), the speed that would keep it
// on a circular orbit, with a random direction of travel and a uniform
// jitter in [-jitter, jitter] added to the signed speed.
func NewSwarm(count int, orbitalRadius, gm, jitter float64, rng dynamo.Rand) *Swarm {
	s := &Swarm{Particles: make([]Particle, count)}
	for i := range s.Particles {
		pos := r2.Scale(orbitalRadius, PointOnCircle(rng))
		speed := math.Sqrt(gm)
		if !dynamo.Coin(rng) {
			speed = -speed
		}
		speed += dynamo.Uniform(rng, -jitter, jitter)
		vel := r2.Scale(speed, r2.Unit(r2.Vec{X: pos.Y, Y: -pos.X}))
		s.Particles[i] = Particle{Pos: pos, Vel: vel}
	}
	return s
}

// PointOnCircle returns a random unit vector. Points are drawn from the
// square [-1, 1]² and projected onto the circle; the exact origin is redrawn.
func PointOnCircle(rng dynamo.Rand) r2.Vec {
	for {
		x := dynamo.Uniform(rng, -1, 1)
		y := dynamo.Uniform(rng, -1, 1)
		l := x*x + y*y
		if l != 0 {
			return r2.Scale(1/math.Sqrt(l), r2.Vec{X: x, Y: y})
		}
	}
}

// Step advances every particle independently.
func (s *Swarm) Step(dt float64) {
	for i := range s.Particles {
		s.Particles[i].Step(dt)
	}
}

func (s *Swarm) Len() int { return len(s.Particles) }

// Positions returns a copy of the current positions in slot order.
func (s *Swarm) Positions() []r2.Vec {
	out := make([]r2.Vec, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = p.Pos
	}
	return out
}
