// Package config holds the simulation settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const deckSize = 52

// Config is the full configuration for a simulation run.
type Config struct {
	Draw   DrawConfig   `yaml:"draw"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

// DrawConfig controls the deck draw.
type DrawConfig struct {
	Hands    int   `yaml:"hands"`
	HandSize int   `yaml:"hand_size"`
	Seed     int64 `yaml:"seed"` // 0 draws a fresh shuffle
}

// OutputConfig controls where the analysis file is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig holds the listen address for serve mode.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given: three
// five-card hands, written to analysis.txt.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a yaml configuration file, filling defaults for missing
// values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Draw.Hands == 0 {
		c.Draw.Hands = 3
	}
	if c.Draw.HandSize == 0 {
		c.Draw.HandSize = 5
	}
	if c.Output.Path == "" {
		c.Output.Path = "analysis.txt"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":7777"
	}
}

// Validate checks the draw settings against a single 52-card deck.
func (c *Config) Validate() error {
	if c.Draw.HandSize != 5 {
		return fmt.Errorf("hand_size must be 5, got %d", c.Draw.HandSize)
	}
	if c.Draw.Hands < 1 {
		return fmt.Errorf("hands must be at least 1, got %d", c.Draw.Hands)
	}
	if total := c.Draw.Hands * c.Draw.HandSize; total > deckSize {
		return fmt.Errorf("cannot draw %d cards from a %d-card deck", total, deckSize)
	}
	return nil
}
