// Package config provides the configuration system for PooledObjects.
// It defines a PoolConfig structure describing a single pool — sizing,
// exhaustion behaviour, logging, metrics — and YAML loading with
// environment variable substitution.
//
// Example usage:
//
//	var cfg config.PoolConfig
//	if err := config.Load("pool.yaml", &cfg); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"github.com/Clpsplug/PooledObjects/pkg/pool"
	"github.com/Clpsplug/PooledObjects/pkg/poolerrors"
)

// PoolConfig describes one pool instance. The zero value is not valid;
// use NewPoolConfig for defaults and Validate before use.
type PoolConfig struct {
	// Name identifies the pool in logs, metrics labels and the registry
	Name string `yaml:"name" json:"name"`
	// InitialCount is the number of instances built at Initialize; must be positive
	InitialCount int `yaml:"initial_count" json:"initial_count"`
	// ExhaustionBehaviour selects the policy when no free instance exists:
	// throw, null_or_default, add_one or double. Empty means throw.
	ExhaustionBehaviour string `yaml:"exhaustion_behaviour" json:"exhaustion_behaviour"`

	// Logging configures the structured logger
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	// Metrics configures Prometheus instrumentation
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Format selects the encoding: json or console
	Format string `yaml:"format" json:"format"`
	// Development enables colored, stacktrace-heavy output
	Development bool `yaml:"development" json:"development"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Enabled attaches a Prometheus collector to the pool
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// NewPoolConfig creates a PoolConfig with sensible defaults.
func NewPoolConfig(name string) *PoolConfig {
	return &PoolConfig{
		Name:                name,
		InitialCount:        8,
		ExhaustionBehaviour: pool.Throw.String(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for consistency. It returns a structured
// config error naming the offending field.
func (c *PoolConfig) Validate() error {
	if c.Name == "" {
		return poolerrors.New(poolerrors.ErrorTypeConfig, "pool name is required")
	}
	if c.InitialCount <= 0 {
		return poolerrors.New(poolerrors.ErrorTypeConfig, "initial_count must be positive").
			WithDetail("pool", c.Name).
			WithDetail("initial_count", c.InitialCount)
	}
	if _, err := pool.ParseExhaustionBehaviour(c.ExhaustionBehaviour); err != nil {
		return poolerrors.Wrap(err, poolerrors.ErrorTypeConfig, "invalid exhaustion_behaviour").
			WithDetail("pool", c.Name)
	}
	return nil
}

// Behaviour returns the parsed exhaustion behaviour. Call Validate first;
// an unparseable value falls back to Throw.
func (c *PoolConfig) Behaviour() pool.ExhaustionBehaviour {
	b, _ := pool.ParseExhaustionBehaviour(c.ExhaustionBehaviour)
	return b
}
