package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ribbons/internal/analysis"
	"github.com/san-kum/ribbons/internal/automation"
	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/export"
	"github.com/san-kum/ribbons/internal/gui"
	"github.com/san-kum/ribbons/internal/metrics"
	"github.com/san-kum/ribbons/internal/render"
	"github.com/san-kum/ribbons/internal/sim"
	"github.com/san-kum/ribbons/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cfg, cfg.ResolveSeed())
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg, cfg.ResolveSeed())
}

// newSimulator resolves cfg with a fresh seeded source and builds a
// simulator that discards frames.
func newSimulator(cfg *config.Config) (*sim.Simulator, *config.Config) {
	s := cfg.ResolveSeed()
	rng := dynamo.NewRand(s)
	resolved := cfg.Resolve(rng)
	resolved.Seed = s
	dynamo.Logger().Debug("resolved configuration", "seed", s,
		"hue_start", *resolved.HueStart, "hue_range", *resolved.HueRange,
		"background_hue", *resolved.BackgroundHue)
	return sim.New(resolved.SimParams(), rng, nil), resolved
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, h, err := parseSize(imageSize)
	if err != nil {
		return err
	}

	sink, err := export.NewRegistry().ForPath(render.Options{
		Path:          outPath,
		Width:         w,
		Height:        h,
		OrbitalRadius: cfg.OrbitalRadius,
	})
	if err != nil {
		return err
	}

	s, resolved := newSimulator(cfg)
	start := time.Now()
	if _, err := s.Run(cmd.Context(), resolved.RunConfig(false)); err != nil {
		return err
	}
	if err := sink.Submit(s.Frame()); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%dx%d, %d ticks, %d triangles, seed %d) in %v\n",
		outPath, w, h, s.Ticks(), s.Mesh().Triangles(), resolved.Seed, time.Since(start).Round(time.Millisecond))
	return nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q, want WxH", dynamo.ErrInvalidConfig, s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: %v", dynamo.ErrInvalidConfig, s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: %v", dynamo.ErrInvalidConfig, s, err)
	}
	return w, h, nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, resolved := newSimulator(cfg)
	for _, m := range metrics.Standard(cfg.OrbitalRadius) {
		s.AddMetric(m)
	}
	radius := metrics.NewTrace("mean_radius", metrics.MeanRadius, 0)
	speed := metrics.NewTrace("mean_speed", metrics.MeanSpeed, 0)
	s.AddObserver(radius)
	s.AddObserver(speed)

	result, err := s.Run(cmd.Context(), resolved.RunConfig(true))
	if err != nil {
		return err
	}

	fmt.Printf("seed %d, %d ticks, %.2fs simulated\n\n", resolved.Seed, result.Ticks, result.Time)

	if len(radius.Values()) > 1 {
		fmt.Println(asciigraph.Plot(radius.Values(),
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("mean radius"),
		))
		fmt.Println()
		fmt.Println(asciigraph.Plot(speed.Values(),
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("mean speed"),
		))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Fprintf(w, "%s\t%.4f\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if period, ok := analysis.DominantPeriod(radius.Values(), resolved.Dt); ok {
		fmt.Printf("\ndominant radius period: %.3f s\n", period)
	}
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1, got %d", dynamo.ErrInvalidConfig, runs)
	}

	first := cfg.ResolveSeed()
	resolved := cfg.Resolve(dynamo.NewRand(first))
	e := sim.NewEnsemble(resolved.SimParams(), runs, first, func(s *sim.Simulator) {
		for _, m := range metrics.Standard(cfg.OrbitalRadius) {
			s.AddMetric(m)
		}
	})

	start := time.Now()
	results, err := e.Run(cmd.Context(), resolved.RunConfig(true))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%d runs from seed %d in %v\n\n", runs, first, elapsed.Round(time.Millisecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN")
	mean := sim.MeanMetrics(results)
	for _, name := range sortedKeys(mean) {
		fmt.Fprintf(w, "%s\t%.4f\n", name, mean[name])
	}
	unstable := 0
	for _, r := range results {
		if len(r.Errors) > 0 {
			unstable++
		}
	}
	fmt.Fprintf(w, "non-finite runs\t%d\n", unstable)
	return w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, cfg, export.NewRegistry(), filepath.Dir(args[0]))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OUT\tSEED\tTICKS\tTRIANGLES")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.Out, r.Seed, r.Ticks, r.Triangles)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPARTICLES\tRADIUS\tEPOCHS\tJITTER\tDRIFT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%d\t%.0f\t%.3f\n",
			name, p.ParticleCount, p.OrbitalRadius, p.HistoryEpochs, p.VelocityJitter, p.ColorDrift)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s := cfg.ResolveSeed()
	resolved := cfg.Resolve(dynamo.NewRand(s))
	resolved.Seed = s
	resolved.GravitationalParam = resolved.GM()

	data, err := yaml.Marshal(resolved)
	if err != nil {
		return err
	}
	fmt.Print(string(data))

	if writePath != "" {
		if err := config.Save(writePath, resolved); err != nil {
			return err
		}
		dynamo.Logger().Info("config saved", "path", writePath)
	}
	return nil
}
