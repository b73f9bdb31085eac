package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Generate.MinGrowth)
	assert.Equal(t, 12, cfg.Generate.MaxGrowth)
	assert.Equal(t, 32, cfg.Generate.Retries)
	assert.Equal(t, 2*time.Minute, cfg.SearchTimeout())
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("PEPTIDE_LOG_LEVEL", "")
	t.Setenv("PEPTIDE_MAX_NODES", "")
	t.Setenv("PEPTIDE_SEARCH_TIMEOUT", "")

	path := filepath.Join(t.TempDir(), "nested", "peptide.yaml")
	cfg := DefaultConfig()
	cfg.Search.MaxNodes = 1000
	cfg.Search.Timeout = "5s"
	cfg.Generate.Workers = 2
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 5*time.Second, loaded.SearchTimeout())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PEPTIDE_LOG_LEVEL", "")
	t.Setenv("PEPTIDE_MAX_NODES", "")
	t.Setenv("PEPTIDE_SEARCH_TIMEOUT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("PEPTIDE_LOG_LEVEL", "")
	t.Setenv("PEPTIDE_MAX_NODES", "")
	t.Setenv("PEPTIDE_SEARCH_TIMEOUT", "")

	path := filepath.Join(t.TempDir(), "peptide.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  max_growth: 6\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Generate.MaxGrowth)
	assert.Equal(t, 4, cfg.Generate.MinGrowth)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PEPTIDE_LOG_LEVEL", "debug")
	t.Setenv("PEPTIDE_MAX_NODES", "42")
	t.Setenv("PEPTIDE_SEARCH_TIMEOUT", "0")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 42, cfg.Search.MaxNodes)
	assert.Zero(t, cfg.SearchTimeout())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"NegativeNodes", func(c *Config) { c.Search.MaxNodes = -1 }},
		{"BadTimeout", func(c *Config) { c.Search.Timeout = "soon" }},
		{"NegativeTimeout", func(c *Config) { c.Search.Timeout = "-1s" }},
		{"GrowthOrder", func(c *Config) { c.Generate.MinGrowth, c.Generate.MaxGrowth = 5, 4 }},
		{"NegativeGrowth", func(c *Config) { c.Generate.MinGrowth = -1 }},
		{"NoWorkers", func(c *Config) { c.Generate.Workers = 0 }},
		{"NegativeRetries", func(c *Config) { c.Generate.Retries = -1 }},
		{"BadLevel", func(c *Config) { c.Logging.Level = "loud" }},
		{"BadFormat", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoggingConfig_Build(t *testing.T) {
	l, err := LoggingConfig{Level: "warn", Format: "json"}.Build(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = LoggingConfig{Level: "warn", Format: "console"}.Build(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = LoggingConfig{Level: "loud", Format: "json"}.Build(false)
	assert.Error(t, err)
}
