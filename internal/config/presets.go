package config

var Presets = map[string]*Config{
	// The coursework coefficients: equilibrium at (50, 40), three orbits.
	"classic": {
		Tolerance: DefaultTolerance, Step: DefaultStep,
		OutDir: DefaultOutDir, Width: DefaultWidth, Height: DefaultHeight,
		Model: ModelConfig{Growth: 0.2, Predation: 0.005, Death: 0.5, Conversion: 0.01},
		Runs: []InitialPair{
			{Prey: 20, Predator: 50},
			{Prey: 20, Predator: 150},
			{Prey: 200, Predator: 50},
		},
	},
	"textbook": {
		Tolerance: DefaultTolerance, Step: DefaultStep,
		OutDir: DefaultOutDir, Width: DefaultWidth, Height: DefaultHeight,
		Model: ModelConfig{Growth: 1.0, Predation: 0.1, Death: 1.5, Conversion: 0.075},
		Runs:  []InitialPair{{Prey: 50, Predator: 40}},
	},
	// Small orbit close to the equilibrium, nearly elliptical.
	"nearcenter": {
		Tolerance: DefaultTolerance, Step: 0.005,
		OutDir: DefaultOutDir, Width: DefaultWidth, Height: DefaultHeight,
		Model: ModelConfig{Growth: 1.0, Predation: 0.1, Death: 1.5, Conversion: 0.075},
		Runs:  []InitialPair{{Prey: 22, Predator: 11}},
	},
}

// GetPreset returns a copy of the named preset, so callers can apply
// overrides without mutating the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	out.Runs = append([]InitialPair(nil), cfg.Runs...)
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
