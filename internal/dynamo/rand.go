package dynamo

import "math/rand/v2"

// Rand is the source of all randomness in the core.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic PCG-backed source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Uniform draws from [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Coin reports true with probability 1/2.
func Coin(r Rand) bool {
	return r.Float64() < 0.5
}
