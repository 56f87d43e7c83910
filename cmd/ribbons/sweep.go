package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/metrics"
	"github.com/san-kum/ribbons/internal/optim"
	"github.com/san-kum/ribbons/internal/sim"
	"github.com/spf13/cobra"
)

// parseSweep reads "name=lo:hi:n".
func parseSweep(s string) (string, []float64, error) {
	name, bounds, ok := strings.Cut(s, "=")
	parts := strings.Split(bounds, ":")
	if !ok || name == "" || len(parts) != 3 {
		return "", nil, fmt.Errorf("%w: sweep %q, want name=lo:hi:n", dynamo.ErrInvalidConfig, s)
	}
	lo, err1 := strconv.ParseFloat(parts[0], 64)
	hi, err2 := strconv.ParseFloat(parts[1], 64)
	n, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || n < 1 {
		return "", nil, fmt.Errorf("%w: sweep %q, want name=lo:hi:n", dynamo.ErrInvalidConfig, s)
	}
	return name, optim.Linspace(lo, hi, n), nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(sweeps))
	ranges := make([][]float64, 0, len(sweeps))
	for _, s := range sweeps {
		name, values, err := parseSweep(s)
		if err != nil {
			return err
		}
		if err := cfg.Set(name, values[0]); err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	// Every grid point shares the seed, so only the swept options differ.
	s := cfg.ResolveSeed()
	build := func(params map[string]float64) (*sim.Simulator, error) {
		point := *cfg
		for k, v := range params {
			if err := point.Set(k, v); err != nil {
				return nil, err
			}
		}
		if err := point.Validate(); err != nil {
			return nil, err
		}
		rng := dynamo.NewRand(s)
		sm := sim.New(point.Resolve(rng).SimParams(), rng, nil)
		for _, m := range metrics.Standard(point.OrbitalRadius) {
			sm.AddMetric(m)
		}
		return sm, nil
	}

	grid := optim.NewGridSearch(names, ranges)
	dynamo.Logger().Info("sweep started", "points", grid.Size(), "metric", metric, "seed", s)
	best, val, trials, err := grid.Search(cmd.Context(), build, cfg.RunConfig(true), metric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(names, "\t"))+"\t"+strings.ToUpper(metric)+"\tNOTE")
	for _, tr := range trials {
		row := make([]string, 0, len(names)+2)
		for _, n := range names {
			row = append(row, strconv.FormatFloat(tr.Params[n], 'g', 6, 64))
		}
		row = append(row, fmt.Sprintf("%.4f", tr.Value))
		note := ""
		if tr.Err != nil {
			note = tr.Err.Error()
		}
		fmt.Fprintln(w, strings.Join(append(row, note), "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best == nil {
		fmt.Println("\nno stable grid point")
		return nil
	}
	fmt.Printf("\nbest %s = %.4f at", metric, val)
	for _, n := range names {
		fmt.Printf(" %s=%g", n, best[n])
	}
	fmt.Println()
	return nil
}
