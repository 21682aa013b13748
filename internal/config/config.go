package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultH    = 0.01
	DefaultEps  = 1e-10
	DefaultTmin = 0.0
	DefaultTmax = 10.0
)

type Config struct {
	Model  string             `yaml:"model"`
	Method string             `yaml:"method"`
	Tmin   float64            `yaml:"tmin"`
	Tmax   float64            `yaml:"tmax"`
	H      float64            `yaml:"h"`
	Eps    float64            `yaml:"eps"`
	X0     []float64          `yaml:"x0"`
	Params map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  "contgrowth",
		Method: "rk4",
		Tmin:   DefaultTmin,
		Tmax:   DefaultTmax,
		H:      DefaultH,
		Eps:    DefaultEps,
		X0:     []float64{40},
		Params: map[string]float64{"k": 0.25},
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

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
