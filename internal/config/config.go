// Package config loads the small set of host-level scalars needed to
// construct and drive a simulation engine. It never touches archetype
// definitions, emotion or relation tensors — those remain the
// embedding host's responsibility.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuntimeConfig is the demo binary's top-level configuration.
type RuntimeConfig struct {
	NumAgents          int    `yaml:"num_agents"`
	Seed               int64  `yaml:"seed"`
	InteractionsPerDay int    `yaml:"interactions_per_day"`
	Days               int    `yaml:"days"`
	LogDir             string `yaml:"log_dir"`
}

// Default returns a small, self-consistent configuration suitable for
// smoke-testing the engine without a config file.
func Default() RuntimeConfig {
	return RuntimeConfig{
		NumAgents:          12,
		Seed:               42,
		InteractionsPerDay: 3,
		Days:               7,
		LogDir:             "logs",
	}
}

// Load reads a RuntimeConfig from a YAML file at path, applying
// Default() for any fields left unset.
func Load(path string) (RuntimeConfig, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c RuntimeConfig) Validate() error {
	if c.NumAgents <= 0 {
		return fmt.Errorf("config: num_agents must be positive, got %d", c.NumAgents)
	}
	if c.InteractionsPerDay < 0 {
		return fmt.Errorf("config: interactions_per_day cannot be negative, got %d", c.InteractionsPerDay)
	}
	if c.Days < 0 {
		return fmt.Errorf("config: days cannot be negative, got %d", c.Days)
	}
	if c.LogDir == "" {
		return fmt.Errorf("config: log_dir must not be empty")
	}
	return nil
}
