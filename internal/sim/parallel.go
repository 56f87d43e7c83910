package sim

import (
	"context"

	"github.com/san-kum/ribbons/internal/dynamo"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs independent simulations of the same parameters, one per
// seed, concurrently. Each run owns its simulator and random source; nothing
// is shared between goroutines.
type Ensemble struct {
	params    Params
	numRuns   int
	seedStart int64
	setup     func(*Simulator)
}

// NewEnsemble prepares numRuns runs seeded seedStart, seedStart+1, ...
// setup, if non-nil, attaches metrics and observers to each simulator.
func NewEnsemble(p Params, numRuns int, seedStart int64, setup func(*Simulator)) *Ensemble {
	return &Ensemble{params: p, numRuns: numRuns, seedStart: seedStart, setup: setup}
}

func (e *Ensemble) Run(ctx context.Context, cfg RunConfig) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		g.Go(func() error {
			s := New(e.params, dynamo.NewRand(e.seedStart+int64(i)), nil)
			if e.setup != nil {
				e.setup(s)
			}
			res, err := s.Run(ctx, cfg)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MeanMetrics averages each named metric over results.
func MeanMetrics(results []*Result) map[string]float64 {
	sums := make(map[string]float64)
	for _, r := range results {
		for k, v := range r.Metrics {
			sums[k] += v
		}
	}
	for k := range sums {
		sums[k] /= float64(len(results))
	}
	return sums
}
