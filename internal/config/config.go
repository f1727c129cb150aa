package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lvorbit/internal/orbit"
)

const (
	DefaultTolerance = 1e-6
	DefaultStep      = 0.01
	DefaultOutDir    = "plots"
	DefaultWidth     = 640
	DefaultHeight    = 640
)

type Config struct {
	Tolerance float64       `yaml:"tolerance"`
	Step      float64       `yaml:"step"`
	OutDir    string        `yaml:"out_dir"`
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	Model     ModelConfig   `yaml:"model"`
	Runs      []InitialPair `yaml:"runs"`
}

type ModelConfig struct {
	Growth     float64 `yaml:"growth"`
	Predation  float64 `yaml:"predation"`
	Death      float64 `yaml:"death"`
	Conversion float64 `yaml:"conversion"`
}

// InitialPair is one initial condition; every pair in Runs gets its own
// traced orbit and plot set.
type InitialPair struct {
	Prey     float64 `yaml:"prey"`
	Predator float64 `yaml:"predator"`
}

func DefaultConfig() *Config {
	return &Config{
		Tolerance: DefaultTolerance,
		Step:      DefaultStep,
		OutDir:    DefaultOutDir,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Model: ModelConfig{
			Growth:     1.0,
			Predation:  0.1,
			Death:      1.5,
			Conversion: 0.075,
		},
		Runs: []InitialPair{
			{Prey: 50, Predator: 40},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParamsFor combines the model coefficients with one initial pair.
func (c *Config) ParamsFor(run InitialPair) orbit.Params {
	return orbit.Params{
		Growth:     c.Model.Growth,
		Predation:  c.Model.Predation,
		Death:      c.Model.Death,
		Conversion: c.Model.Conversion,
		Prey0:      run.Prey,
		Predator0:  run.Predator,
	}
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
