package config

import (
	"os"

	"github.com/san-kum/sortlab/internal/arrays"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble-sort"
	DefaultSpeed     = 5
	DefaultMode      = "continuous"
	DefaultSize      = 30
	DefaultKind      = arrays.KindRandom
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Speed     int    `yaml:"speed"`
	Mode      string `yaml:"mode"`
	Size      int    `yaml:"size"`
	Kind      string `yaml:"kind"`
	Seed      int64  `yaml:"seed"`
	Values    []int  `yaml:"values,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Speed:     DefaultSpeed,
		Mode:      DefaultMode,
		Size:      DefaultSize,
		Kind:      DefaultKind,
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

// ResolveInput returns the explicit values when present, otherwise a
// generated array.
func (c *Config) ResolveInput() ([]int, error) {
	if len(c.Values) > 0 {
		return append([]int(nil), c.Values...), nil
	}
	return arrays.Generate(c.Kind, c.Size, c.Seed)
}
