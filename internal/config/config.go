// Package config holds the YAML configuration for the sudoku server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all server settings.
type Config struct {
	// Server settings
	Server ServerConfig `yaml:"server"`

	// Solver selection
	Solver SolverConfig `yaml:"solver"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener and persistence.
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	DataDir string `yaml:"data_dir"`
}

// SolverConfig selects the search implementation.
type SolverConfig struct {
	// Kind is "backtrack" (baseline) or "pruned" (bitmask candidate
	// tracking with identical output).
	Kind string `yaml:"kind"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":8080", DataDir: "./data"},
		Solver:  SolverConfig{Kind: "backtrack"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path if it exists, layers it over the defaults, and applies
// environment overrides. An empty path yields defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SUDOKU_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SUDOKU_DATA_DIR"); v != "" {
		c.Server.DataDir = v
	}
	if v := os.Getenv("SUDOKU_SOLVER"); v != "" {
		c.Solver.Kind = v
	}
	if v := os.Getenv("SUDOKU_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) validate() error {
	switch c.Solver.Kind {
	case "backtrack", "backtracking", "pruned":
	default:
		return fmt.Errorf("unknown solver kind %q", c.Solver.Kind)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
