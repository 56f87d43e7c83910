package hsla

import "github.com/san-kum/ribbons/internal/dynamo"

// DefaultDrift is the per-tick perturbation magnitude of trail colours.
const DefaultDrift = 0.008

// Tweak perturbs H, S and L by independent uniform samples in
// [-magnitude, magnitude]. Hue wraps; saturation and lightness clamp; alpha
// is untouched. A zero magnitude returns c without drawing from rng.
func Tweak(c Color, magnitude float64, rng dynamo.Rand) Color {
	if magnitude == 0 {
		return c
	}
	return Color{
		H: WrapHue(c.H + dynamo.Uniform(rng, -magnitude, magnitude)),
		S: clamp01(c.S + dynamo.Uniform(rng, -magnitude, magnitude)),
		L: clamp01(c.L + dynamo.Uniform(rng, -magnitude, magnitude)),
		A: c.A,
	}
}

// Drifter applies Tweak with a fixed magnitude and random source.
type Drifter struct {
	Magnitude float64
	rng       dynamo.Rand
}

func NewDrifter(magnitude float64, rng dynamo.Rand) *Drifter {
	return &Drifter{Magnitude: magnitude, rng: rng}
}

func (d *Drifter) Drift(c Color) Color {
	return Tweak(c, d.Magnitude, d.rng)
}

// DriftAll replaces every colour with its drifted successor, in slot order.
func (d *Drifter) DriftAll(colors []Color) {
	for i := range colors {
		colors[i] = d.Drift(colors[i])
	}
}
