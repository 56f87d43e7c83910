package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/san-kum/ribbons/internal/dynamo"
	"github.com/san-kum/ribbons/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultParticleCount  = 16
	DefaultOrbitalRadius  = 1000.0
	DefaultHistoryEpochs  = 200
	DefaultVelocityJitter = 100.0
	DefaultColorDrift     = 0.008
	DefaultDt             = 1.0 / 60.0
	DefaultTicks          = 600

	// GMPerRadius derives the gravitational parameter when none is set.
	GMPerRadius = 57.0
)

// Config is the YAML shape of a ribbons run. Hues left unset are drawn from
// the random source by Resolve.
type Config struct {
	ParticleCount      int      `yaml:"particle_count"`
	OrbitalRadius      float64  `yaml:"orbital_radius"`
	HistoryEpochs      int      `yaml:"history_epochs"`
	VelocityJitter     float64  `yaml:"velocity_jitter"`
	GravitationalParam float64  `yaml:"gravitational_param,omitempty"`
	ColorDrift         float64  `yaml:"color_drift"`
	HueStart           *float64 `yaml:"hue_start,omitempty"`
	HueRange           *float64 `yaml:"hue_range,omitempty"`
	BackgroundHue      *float64 `yaml:"background_hue,omitempty"`
	Seed               int64    `yaml:"seed,omitempty"`
	Dt                 float64  `yaml:"dt"`
	Ticks              int      `yaml:"ticks"`
}

func DefaultConfig() *Config {
	return &Config{
		ParticleCount:  DefaultParticleCount,
		OrbitalRadius:  DefaultOrbitalRadius,
		HistoryEpochs:  DefaultHistoryEpochs,
		VelocityJitter: DefaultVelocityJitter,
		ColorDrift:     DefaultColorDrift,
		Dt:             DefaultDt,
		Ticks:          DefaultTicks,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GM is the gravitational parameter, derived from the orbital radius when
// unset.
func (c *Config) GM() float64 {
	if c.GravitationalParam > 0 {
		return c.GravitationalParam
	}
	return c.OrbitalRadius * GMPerRadius
}

func (c *Config) Validate() error {
	switch {
	case c.ParticleCount < 1:
		return invalid("particle_count must be at least 1, got %d", c.ParticleCount)
	case !(c.OrbitalRadius > 0) || math.IsInf(c.OrbitalRadius, 0):
		return invalid("orbital_radius must be positive, got %g", c.OrbitalRadius)
	case c.HistoryEpochs < 0:
		return invalid("history_epochs must not be negative, got %d", c.HistoryEpochs)
	case c.VelocityJitter < 0:
		return invalid("velocity_jitter must not be negative, got %g", c.VelocityJitter)
	case c.GravitationalParam < 0:
		return invalid("gravitational_param must not be negative, got %g", c.GravitationalParam)
	case c.ColorDrift < 0 || c.ColorDrift > 1:
		return invalid("color_drift must be in [0,1], got %g", c.ColorDrift)
	case c.Dt <= 0:
		return invalid("dt must be positive, got %g", c.Dt)
	case c.Ticks < 0:
		return invalid("ticks must not be negative, got %d", c.Ticks)
	}
	for name, h := range map[string]*float64{
		"hue_start":      c.HueStart,
		"hue_range":      c.HueRange,
		"background_hue": c.BackgroundHue,
	} {
		if h != nil && (math.IsNaN(*h) || math.IsInf(*h, 0)) {
			return invalid("%s must be finite", name)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{dynamo.ErrInvalidConfig}, args...)...)
}

// ResolveSeed returns the configured seed, or one taken from the clock.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Resolve returns a copy with every unset hue drawn from rng: hue_start and
// background_hue in [0,1), hue_range in [0.2,0.4).
func (c *Config) Resolve(rng dynamo.Rand) *Config {
	out := *c
	if out.HueStart == nil {
		out.HueStart = ptr(rng.Float64())
	}
	if out.HueRange == nil {
		out.HueRange = ptr(dynamo.Uniform(rng, 0.2, 0.4))
	}
	if out.BackgroundHue == nil {
		out.BackgroundHue = ptr(rng.Float64())
	}
	return &out
}

// SimParams converts a resolved config. Unset hues read as zero.
func (c *Config) SimParams() sim.Params {
	return sim.Params{
		ParticleCount:  c.ParticleCount,
		OrbitalRadius:  c.OrbitalRadius,
		HistoryEpochs:  c.HistoryEpochs,
		VelocityJitter: c.VelocityJitter,
		GM:             c.GM(),
		ColorDrift:     c.ColorDrift,
		HueStart:       deref(c.HueStart),
		HueRange:       deref(c.HueRange),
		BackgroundHue:  deref(c.BackgroundHue),
	}
}

func (c *Config) RunConfig(validate bool) sim.RunConfig {
	return sim.RunConfig{Dt: c.Dt, Ticks: c.Ticks, ValidateState: validate}
}

func ptr(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Set assigns a numeric option by its YAML key.
func (c *Config) Set(key string, v float64) error {
	switch key {
	case "particle_count":
		c.ParticleCount = int(v)
	case "orbital_radius":
		c.OrbitalRadius = v
	case "history_epochs":
		c.HistoryEpochs = int(v)
	case "velocity_jitter":
		c.VelocityJitter = v
	case "gravitational_param":
		c.GravitationalParam = v
	case "color_drift":
		c.ColorDrift = v
	case "hue_start":
		c.HueStart = ptr(v)
	case "hue_range":
		c.HueRange = ptr(v)
	case "background_hue":
		c.BackgroundHue = ptr(v)
	case "dt":
		c.Dt = v
	case "ticks":
		c.Ticks = int(v)
	default:
		return fmt.Errorf("%w: unknown option %q", dynamo.ErrInvalidConfig, key)
	}
	return nil
}
