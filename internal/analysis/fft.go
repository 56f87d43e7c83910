package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the FFT of data,
// after removing its mean so bin 0 does not dominate.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	centered := make([]float64, len(data))
	m := 0.0
	for _, v := range data {
		m += v
	}
	m /= float64(len(data))
	for i, v := range data {
		centered[i] = v - m
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod finds the strongest non-zero frequency of a series sampled
// every dt seconds and returns its period. ok is false when the series is too
// short or flat.
func DominantPeriod(data []float64, dt float64) (period float64, ok bool) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 || dt <= 0 {
		return 0, false
	}
	best, bestIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > best {
			best, bestIdx = ps[i], i
		}
	}
	if bestIdx == 0 || best < 1e-12 {
		return 0, false
	}
	duration := float64(len(data)) * dt
	return duration / float64(bestIdx), true
}
