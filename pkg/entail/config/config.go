// Package config loads prover configuration and knowledge base files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

// Config is the top-level prover configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Store  StoreConfig  `yaml:"store"`
}

// EngineConfig controls the refutation engine.
type EngineConfig struct {
	// Dialect selects the default sublanguage: "propositional" or
	// "first_order".
	Dialect string `yaml:"dialect"`
	// MaxRounds caps the saturation loop; the engine answers
	// "unknown" when the cap is hit.
	MaxRounds int `yaml:"max_rounds"`
}

// StoreConfig configures persistence.
type StoreConfig struct {
	// Path to the SQLite database; empty selects the in-memory store.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			Dialect:   "first_order",
			MaxRounds: 100,
		},
	}
}

// Load reads and validates a YAML configuration file. Fields missing
// from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for unusable values.
func (c Config) Validate() error {
	switch c.Engine.Dialect {
	case "propositional", "first_order":
	default:
		return fmt.Errorf("dialect %q: %w", c.Engine.Dialect, internalerr.ErrInvalidConfig)
	}
	if c.Engine.MaxRounds <= 0 {
		return fmt.Errorf("max_rounds must be positive, got %d: %w", c.Engine.MaxRounds, internalerr.ErrInvalidConfig)
	}
	return nil
}
