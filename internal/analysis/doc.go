// Package analysis provides spectral tools for metric traces.
//
// A particle on a perturbed orbit swings in and out around the reference
// circle; the mean radius of the swarm therefore oscillates, and its power
// spectrum exposes the typical orbital period:
//
//	period, ok := analysis.DominantPeriod(trace.Values(), dt)
//	if ok {
//	    fmt.Printf("period: %.2fs\n", period)
//	}
package analysis
