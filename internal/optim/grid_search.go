package optim

import (
	"context"
	"fmt"
	"maps"
	"math"

	"github.com/san-kum/ribbons/internal/sim"
)

// Trial is one evaluated point of the grid.
type Trial struct {
	Params map[string]float64
	Value  float64
	Err    error
}

// Build creates a simulator, metrics attached, for one grid point.
type Build func(params map[string]float64) (*sim.Simulator, error)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Size is the number of grid points.
func (g *GridSearch) Size() int {
	if len(g.ranges) == 0 {
		return 0
	}
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Search runs every grid point and returns the one minimizing metricName.
// Runs that end with a non-finite particle, or whose metric is NaN, are
// kept in the trials but never chosen.
func (g *GridSearch) Search(ctx context.Context, build Build, cfg sim.RunConfig, metricName string) (map[string]float64, float64, []Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, nil, fmt.Errorf("grid: %d names for %d ranges", len(g.paramNames), len(g.ranges))
	}

	best := math.Inf(1)
	var bestParams map[string]float64
	trials := make([]Trial, 0, g.Size())

	err := g.searchRecursive(ctx, 0, make(map[string]float64), func(params map[string]float64) error {
		trial := Trial{Params: params, Value: math.NaN()}
		s, err := build(params)
		if err != nil {
			trial.Err = err
			trials = append(trials, trial)
			return nil
		}
		result, err := s.Run(ctx, cfg)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			trial.Err = err
			trials = append(trials, trial)
			return nil
		}

		val, ok := result.Metrics[metricName]
		if !ok {
			return fmt.Errorf("grid: metric %q not recorded", metricName)
		}
		trial.Value = val
		if len(result.Errors) > 0 {
			trial.Err = result.Errors[0]
		}
		trials = append(trials, trial)

		if trial.Err == nil && val < best {
			best = val
			bestParams = maps.Clone(params)
		}
		return nil
	})
	if err != nil {
		return nil, 0, trials, err
	}
	return bestParams, best, trials, nil
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, visit func(map[string]float64) error) error {
	if depth == len(g.paramNames) {
		return visit(current)
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		if err := ctx.Err(); err != nil {
			return err
		}
		newParams := maps.Clone(current)
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, visit); err != nil {
			return err
		}
	}
	return nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}
