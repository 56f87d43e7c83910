package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	verbose    bool

	particleCount  int
	orbitalRadius  float64
	historyEpochs  int
	velocityJitter float64
	gm             float64
	colorDrift     float64
	hueStart       float64
	hueRange       float64
	backgroundHue  float64
	seed           int64
	dt             float64
	ticks          int

	outPath   string
	imageSize string
	runs      int
	writePath string
	sweeps    []string
	metric    string
)

// main registers the commands and runs the window when no subcommand is
// given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ribbons",
		Short: "orbiting particles drawn as colour-drifting ribbons",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE:          runWindow,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.IntVar(&particleCount, "particles", config.DefaultParticleCount, "number of particles")
	pf.Float64Var(&orbitalRadius, "radius", config.DefaultOrbitalRadius, "orbital radius")
	pf.IntVar(&historyEpochs, "epochs", config.DefaultHistoryEpochs, "trail length in ticks")
	pf.Float64Var(&velocityJitter, "jitter", config.DefaultVelocityJitter, "initial speed jitter")
	pf.Float64Var(&gm, "gm", 0, "gravitational parameter (0 derives it from the radius)")
	pf.Float64Var(&colorDrift, "drift", config.DefaultColorDrift, "colour drift per tick")
	pf.Float64Var(&hueStart, "hue-start", 0, "first slot hue in turns (random if unset)")
	pf.Float64Var(&hueRange, "hue-range", 0, "hue span across slots (random if unset)")
	pf.Float64Var(&backgroundHue, "background-hue", 0, "background hue (random if unset)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "headless timestep")
	pf.IntVar(&ticks, "ticks", config.DefaultTicks, "headless tick count")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run in a raylib window",
		RunE:  runWindow,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run in the terminal",
		RunE:  runLive,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and write the final frame to an image",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "ribbons.png", "output file (.png or .svg)")
	snapshotCmd.Flags().StringVar(&imageSize, "size", "1024x1024", "image size WxH")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run headless and report swarm metrics",
		RunE:  runStats,
	}

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run several seeds concurrently and average their metrics",
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid search config options for the lowest metric",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringArrayVarP(&sweeps, "param", "p", []string{"velocity_jitter=0:200:5"}, "option=lo:hi:n, repeatable")
	sweepCmd.Flags().StringVar(&metric, "metric", "radius_drift", "metric to minimize")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "render every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration",
		RunE:  printConfig,
	}
	configCmd.Flags().StringVarP(&writePath, "write", "w", "", "also save it to this path")

	rootCmd.AddCommand(windowCmd, liveCmd, snapshotCmd, statsCmd, ensembleCmd, sweepCmd, batchCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	dynamo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig layers defaults, the preset, the config file and finally any
// flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.ParticleCount = particleCount
	}
	if flags.Changed("radius") {
		cfg.OrbitalRadius = orbitalRadius
	}
	if flags.Changed("epochs") {
		cfg.HistoryEpochs = historyEpochs
	}
	if flags.Changed("jitter") {
		cfg.VelocityJitter = velocityJitter
	}
	if flags.Changed("gm") {
		cfg.GravitationalParam = gm
	}
	if flags.Changed("drift") {
		cfg.ColorDrift = colorDrift
	}
	if flags.Changed("hue-start") {
		cfg.HueStart = &hueStart
	}
	if flags.Changed("hue-range") {
		cfg.HueRange = &hueRange
	}
	if flags.Changed("background-hue") {
		cfg.BackgroundHue = &backgroundHue
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}

	if err := cfg.Validate(); err != nil {
		dynamo.Logger().Error("invalid configuration", "err", err)
		return nil, err
	}
	return cfg, nil
}
