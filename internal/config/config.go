// Package config loads the optional YAML run configuration. Only
// non-physics knobs live here; the world constants are fixed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir = ".gravbox"
	DefaultFrames  = 600
	DefaultFPS     = 66
)

type Config struct {
	DataDir string `yaml:"data_dir"`
	Frames  int    `yaml:"frames"`
	FPS     int    `yaml:"fps"`
	Seed    int64  `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Frames:  DefaultFrames,
		FPS:     DefaultFPS,
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
	if err := cfg.validate(); err != nil {
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

func (c *Config) validate() error {
	if c.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
