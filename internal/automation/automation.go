package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/render"
	"github.com/san-kum/ribbons/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted list of renders.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Width       int            `yaml:"width"`
	Height      int            `yaml:"height"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep runs one simulation and writes its final frame to Out.
// Options are config keys applied over the preset (or the base config).
type ScenarioStep struct {
	Preset  string             `yaml:"preset"`
	Options map[string]float64 `yaml:"options"`
	Seed    int64              `yaml:"seed"`
	Ticks   int                `yaml:"ticks"`
	Out     string             `yaml:"out"`
}

type StepResult struct {
	Out       string
	Seed      int64
	Ticks     int
	Triangles int
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	scenario := Scenario{Width: 1024, Height: 1024}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario executes all steps in order. Relative output paths are
// resolved against dir. The first failing step stops the scenario.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, registry *render.Registry, dir string) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		dynamo.Logger().Info("scenario step", "step", i+1, "of", len(scenario.Steps), "out", step.Out)

		res, err := runStep(ctx, scenario, step, base, registry, dir)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func runStep(ctx context.Context, scenario *Scenario, step ScenarioStep, base *config.Config, registry *render.Registry, dir string) (StepResult, error) {
	cfg := *base
	if step.Preset != "" {
		p := config.GetPreset(step.Preset)
		if p == nil {
			return StepResult{}, fmt.Errorf("%w: unknown preset %q", dynamo.ErrInvalidConfig, step.Preset)
		}
		cfg = *p
	}
	for k, v := range step.Options {
		if err := cfg.Set(k, v); err != nil {
			return StepResult{}, err
		}
	}
	if step.Ticks > 0 {
		cfg.Ticks = step.Ticks
	}
	if step.Seed != 0 {
		cfg.Seed = step.Seed
	}
	if err := cfg.Validate(); err != nil {
		return StepResult{}, err
	}

	out := step.Out
	if out == "" {
		return StepResult{}, fmt.Errorf("%w: missing out path", dynamo.ErrInvalidConfig)
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	sink, err := registry.ForPath(render.Options{
		Path:          out,
		Width:         scenario.Width,
		Height:        scenario.Height,
		OrbitalRadius: cfg.OrbitalRadius,
	})
	if err != nil {
		return StepResult{}, err
	}

	seed := cfg.ResolveSeed()
	rng := dynamo.NewRand(seed)
	s := sim.New(cfg.Resolve(rng).SimParams(), rng, nil)
	if _, err := s.Run(ctx, cfg.RunConfig(false)); err != nil {
		return StepResult{}, err
	}
	if err := sink.Submit(s.Frame()); err != nil {
		return StepResult{}, err
	}

	return StepResult{Out: out, Seed: seed, Ticks: s.Ticks(), Triangles: s.Mesh().Triangles()}, nil
}
