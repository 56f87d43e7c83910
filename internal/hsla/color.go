// Package hsla holds the colour value type carried by trail records, and the
// random walk that slowly drifts each particle's trail colour.
package hsla

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a hue/saturation/lightness/alpha colour. H is measured in turns
// and is circular in [0, 1); S, L and A lie in [0, 1].
type Color struct {
	H, S, L, A float64
}

// HSLA builds a colour with H wrapped and S, L, A clamped.
func HSLA(h, s, l, a float64) Color {
	return Color{H: WrapHue(h), S: clamp01(s), L: clamp01(l), A: clamp01(a)}
}

// HSL builds an opaque colour.
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 1)
}

// WrapHue maps h onto [0, 1).
func WrapHue(h float64) float64 {
	h -= math.Floor(h)
	// h - floor(h) rounds to exactly 1 for tiny negative inputs.
	if h >= 1 {
		h = 0
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func (c Color) colorful() colorful.Color {
	return colorful.Hsl(c.H*360, c.S, c.L).Clamped()
}

// RGBA converts to a non-premultiplied 8-bit colour.
func (c Color) RGBA() color.NRGBA {
	r, g, b := c.colorful().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// RGB returns the red, green and blue components in [0, 1].
func (c Color) RGB() (r, g, b float64) {
	cc := c.colorful()
	return cc.R, cc.G, cc.B
}

// Hex returns the "#rrggbb" form, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// Blend mixes c and other in RGB space; t=0 yields c. Alpha is averaged linearly.
func (c Color) Blend(other Color, t float64) color.NRGBA {
	mixed := c.colorful().BlendRgb(other.colorful(), t).Clamped()
	r, g, b := mixed.RGB255()
	a := c.A + (other.A-c.A)*t
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(a) * 255))}
}

// Average blends three colours with equal weight.
func Average(a, b, c Color) color.NRGBA {
	ab := a.colorful().BlendRgb(b.colorful(), 0.5)
	abc := ab.BlendRgb(c.colorful(), 1.0/3).Clamped()
	r, g, bl := abc.RGB255()
	alpha := (a.A + b.A + c.A) / 3
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(clamp01(alpha) * 255))}
}
