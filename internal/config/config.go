// Package config holds the settings of the peptide command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all peptide CLI configuration.
type Config struct {
	Search   SearchConfig   `yaml:"search"`
	Generate GenerateConfig `yaml:"generate"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SearchConfig bounds the exhaustive range search.
type SearchConfig struct {
	MaxNodes int    `yaml:"max_nodes"` // 0 = unbounded
	Timeout  string `yaml:"timeout"`   // Go duration, "" or "0" = unbounded
}

// GenerateConfig controls random template generation.
type GenerateConfig struct {
	MinGrowth int `yaml:"min_growth"`
	MaxGrowth int `yaml:"max_growth"`
	Workers   int `yaml:"workers"`
	Retries   int `yaml:"retries"` // regrowths per template after an unsolvable shape
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxNodes: 5_000_000,
			Timeout:  "2m",
		},
		Generate: GenerateConfig{
			MinGrowth: 4,
			MaxGrowth: 12,
			Workers:   4,
			Retries:   32,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies PEPTIDE_* environment variables.
func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv("PEPTIDE_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if v := os.Getenv("PEPTIDE_MAX_NODES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.MaxNodes = n
		}
	}
	if v := os.Getenv("PEPTIDE_SEARCH_TIMEOUT"); v != "" {
		c.Search.Timeout = v
	}
}

// SearchTimeout returns the search timeout; 0 means unbounded.
func (c *Config) SearchTimeout() time.Duration {
	if c.Search.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil {
		return 2 * time.Minute
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Search.MaxNodes < 0 {
		return fmt.Errorf("search.max_nodes cannot be negative: %d", c.Search.MaxNodes)
	}
	if c.Search.Timeout != "" {
		d, err := time.ParseDuration(c.Search.Timeout)
		if err != nil {
			return fmt.Errorf("invalid search.timeout %q: %w", c.Search.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("search.timeout cannot be negative: %s", c.Search.Timeout)
		}
	}
	g := c.Generate
	if g.MinGrowth < 0 || g.MaxGrowth < g.MinGrowth {
		return fmt.Errorf("invalid generate growth bounds [%d, %d]", g.MinGrowth, g.MaxGrowth)
	}
	if g.Workers < 1 {
		return fmt.Errorf("generate.workers must be at least 1: %d", g.Workers)
	}
	if g.Retries < 0 {
		return fmt.Errorf("generate.retries cannot be negative: %d", g.Retries)
	}
	return c.Logging.Validate()
}
