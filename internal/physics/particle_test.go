package physics

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestParticleStepGolden(t *testing.T) {
	g := NewWithT(t)

	p := Particle{Pos: r2.Vec{X: 1000, Y: 0}, Vel: r2.Vec{X: 0, Y: 238.7}}
	p.Step(1.0)

	g.Expect(p.Pos.X).To(BeNumerically("~", 1000.0, 1e-9))
	g.Expect(p.Pos.Y).To(BeNumerically("~", 238.7, 1e-9))
	g.Expect(p.Vel.X).To(BeNumerically("~", -0.9721871762314733, 1e-9))
	g.Expect(p.Vel.Y).To(BeNumerically("~", 238.46830916920626, 1e-9))
}

func TestParticleStepMatchesFormula(t *testing.T) {
	g := NewWithT(t)

	p := Particle{Pos: r2.Vec{X: -300, Y: 420}, Vel: r2.Vec{X: 12, Y: -7}}
	dt := 0.016

	px, py := -300+12*dt, 420-7*dt
	r := math.Hypot(px, py)
	bias := dt / (2 * r)
	vx := 12 + (-px/r + bias)
	vy := -7 + (-py/r + bias)

	p.Step(dt)

	g.Expect(p.Pos.X).To(BeNumerically("~", px, 1e-12))
	g.Expect(p.Pos.Y).To(BeNumerically("~", py, 1e-12))
	g.Expect(p.Vel.X).To(BeNumerically("~", vx, 1e-12))
	g.Expect(p.Vel.Y).To(BeNumerically("~", vy, 1e-12))
}

func TestParticleStepZeroDtOnlyPullsInward(t *testing.T) {
	g := NewWithT(t)

	p := Particle{Pos: r2.Vec{X: 0, Y: 50}, Vel: r2.Vec{X: 3, Y: 0}}
	p.Step(0)

	g.Expect(p.Pos).To(Equal(r2.Vec{X: 0, Y: 50}))
	g.Expect(p.Vel.X).To(BeNumerically("~", 3, 1e-12))
	g.Expect(p.Vel.Y).To(BeNumerically("~", -1, 1e-12))
}

func TestParticleAtOriginIsNotGuarded(t *testing.T) {
	g := NewWithT(t)

	p := Particle{}
	g.Expect(p.IsFinite()).To(BeTrue())

	p.Step(0.1)

	g.Expect(p.IsFinite()).To(BeFalse())
}

func TestParticleRadiusAndSpeed(t *testing.T) {
	g := NewWithT(t)

	p := Particle{Pos: r2.Vec{X: 3, Y: 4}, Vel: r2.Vec{X: -6, Y: 8}}
	g.Expect(p.Radius()).To(BeNumerically("~", 5, 1e-12))
	g.Expect(p.Speed()).To(BeNumerically("~", 10, 1e-12))
}
