package hsla

// Palette spreads n trail colours evenly over [hueStart, hueStart+hueRange],
// all at half saturation, lightness and alpha.
func Palette(n int, hueStart, hueRange float64) []Color {
	colors := make([]Color, n)
	for i := range colors {
		h := hueStart
		if n > 1 {
			h = hueStart + hueRange*float64(i)/float64(n-1)
		}
		colors[i] = HSLA(h, 0.5, 0.5, 0.5)
	}
	return colors
}

// Background is the clear colour for a given background hue.
func Background(hue float64) Color {
	return HSL(hue, 0.38, 0.33)
}

// CircleColor is the reference orbit colour; a shade off the background.
func CircleColor(hue float64) Color {
	return HSL(hue, 0.36, 0.33)
}
