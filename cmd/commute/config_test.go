package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "dihedral", cfg.Structure)
	assert.Equal(t, 4, cfg.Order)
	assert.Equal(t, "text", cfg.Output)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing structure", func(c *Config) { c.Structure = "" }, "structure is required"},
		{"zero order", func(c *Config) { c.Order = 0 }, "order must be at least 1, got 0"},
		{"negative exponent", func(c *Config) { c.MaxExponent = -1 }, "max_exponent"},
		{"negative samples", func(c *Config) { c.Samples = -2 }, "samples"},
		{"bad output", func(c *Config) { c.Output = "json" }, "output must be one of text yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commute.yaml")
	data := `structure: mat2
order: 3
pivots:
  - "1,1;0,1"
max_exponent: 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mat2", cfg.Structure)
	assert.Equal(t, 3, cfg.Order)
	assert.Equal(t, []string{"1,1;0,1"}, cfg.Pivots)
	assert.Equal(t, 4, cfg.MaxExponent)

	// Unset keys keep their defaults.
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 24, cfg.Samples)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order: [1, 2\n"), 0o644))
	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "", "warn", "warning", "error"} {
		_, err := parseLevel(name)
		assert.NoError(t, err, name)
	}
	_, err := parseLevel("verbose")
	assert.Error(t, err)
}
