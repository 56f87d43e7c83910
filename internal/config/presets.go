package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"calm": {
		ParticleCount: 8, OrbitalRadius: 1000, HistoryEpochs: 300,
		VelocityJitter: 20, ColorDrift: 0.004, Dt: DefaultDt, Ticks: DefaultTicks,
	},
	"swarm": {
		ParticleCount: 48, OrbitalRadius: 1000, HistoryEpochs: 120,
		VelocityJitter: 160, ColorDrift: 0.012, Dt: DefaultDt, Ticks: DefaultTicks,
	},
	"tight": {
		ParticleCount: 16, OrbitalRadius: 400, HistoryEpochs: 200,
		VelocityJitter: 40, GravitationalParam: 400 * 80, ColorDrift: 0.008,
		Dt: DefaultDt, Ticks: DefaultTicks,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
