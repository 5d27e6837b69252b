// Package config loads lvpack settings from defaults, an optional TOML or
// YAML file and LVPACK_* environment variables, in that order of precedence
// (later wins).
package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpack/knapsack"
	"github.com/katalvlaran/lvpack/packer"
	"github.com/katalvlaran/lvpack/parse"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the effective configuration.
type Config struct {
	Limits LimitsConfig `koanf:"limits" toml:"limits" yaml:"limits"`
	Solver SolverConfig `koanf:"solver" toml:"solver" yaml:"solver"`
	// Policy is "fail-fast" or "skip-invalid".
	Policy string    `koanf:"policy" toml:"policy" yaml:"policy"`
	Log    LogConfig `koanf:"log" toml:"log" yaml:"log"`
}

// LimitsConfig mirrors parse.Limits.
type LimitsConfig struct {
	Capacity float64 `koanf:"capacity" toml:"capacity" yaml:"capacity"`
	Weight   float64 `koanf:"weight" toml:"weight" yaml:"weight"`
	Cost     float64 `koanf:"cost" toml:"cost" yaml:"cost"`
	Items    int     `koanf:"items" toml:"items" yaml:"items"`
}

// SolverConfig mirrors knapsack.Options.
type SolverConfig struct {
	Scale int `koanf:"scale" toml:"scale" yaml:"scale"`
	// Memory is "two-tables" or "rolling".
	Memory string `koanf:"memory" toml:"memory" yaml:"memory"`
}

// LogConfig controls logging.Setup.
type LogConfig struct {
	Verbosity int  `koanf:"verbosity" toml:"verbosity" yaml:"verbosity"`
	File      bool `koanf:"file" toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	l := parse.DefaultLimits()
	return Config{
		Limits: LimitsConfig{Capacity: l.Capacity, Weight: l.Weight, Cost: l.Cost, Items: l.Items},
		Solver: SolverConfig{Scale: knapsack.DefaultScale, Memory: knapsack.TwoTables.String()},
		Policy: packer.FailFast.String(),
		Log:    LogConfig{Verbosity: 0, File: false},
	}
}

// defaultsMap flattens Default for the confmap provider.
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"limits.capacity": d.Limits.Capacity,
		"limits.weight":   d.Limits.Weight,
		"limits.cost":     d.Limits.Cost,
		"limits.items":    d.Limits.Items,
		"solver.scale":    d.Solver.Scale,
		"solver.memory":   d.Solver.Memory,
		"policy":          d.Policy,
		"log.verbosity":   d.Log.Verbosity,
		"log.file":        d.Log.File,
	}
}

// Validate checks ranges and enum names.
func (c Config) Validate() error {
	switch {
	case c.Limits.Capacity <= 0:
		return fmt.Errorf("%w: limits.capacity must be positive, got %v", ErrInvalidConfig, c.Limits.Capacity)
	case c.Limits.Weight <= 0:
		return fmt.Errorf("%w: limits.weight must be positive, got %v", ErrInvalidConfig, c.Limits.Weight)
	case c.Limits.Cost <= 0:
		return fmt.Errorf("%w: limits.cost must be positive, got %v", ErrInvalidConfig, c.Limits.Cost)
	case c.Limits.Items < 0:
		return fmt.Errorf("%w: limits.items must be >= 0, got %d", ErrInvalidConfig, c.Limits.Items)
	case c.Solver.Scale < 1 || c.Solver.Scale > knapsack.MaxScale:
		return fmt.Errorf("%w: solver.scale must be in [1, %d], got %d", ErrInvalidConfig, knapsack.MaxScale, c.Solver.Scale)
	case c.Log.Verbosity < 0:
		return fmt.Errorf("%w: log.verbosity must be >= 0, got %d", ErrInvalidConfig, c.Log.Verbosity)
	}
	if _, err := knapsack.ParseMemoryMode(c.Solver.Memory); err != nil {
		return fmt.Errorf("%w: solver.memory %q: %v", ErrInvalidConfig, c.Solver.Memory, err)
	}
	if _, err := packer.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: policy %q: %v", ErrInvalidConfig, c.Policy, err)
	}

	return nil
}

// PackerOptions maps c onto packer.Options with logger attached.
func (c Config) PackerOptions(logger zerolog.Logger) (packer.Options, error) {
	if err := c.Validate(); err != nil {
		return packer.Options{}, err
	}
	mode, _ := knapsack.ParseMemoryMode(c.Solver.Memory)
	policy, _ := packer.ParsePolicy(c.Policy)

	return packer.Options{
		Limits: parse.Limits{
			Capacity: c.Limits.Capacity,
			Weight:   c.Limits.Weight,
			Cost:     c.Limits.Cost,
			Items:    c.Limits.Items,
		},
		Solver: knapsack.Options{Scale: c.Solver.Scale, MemoryMode: mode},
		Policy: policy,
		Logger: logger,
	}, nil
}
