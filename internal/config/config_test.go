package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sammonmap/internal/config"
	"github.com/katalvlaran/sammonmap/sammon"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Dimensions)
	assert.Equal(t, sammon.DefaultThreshold, cfg.Threshold)
	assert.Len(t, cfg.Options(), 5)

	o, err := sammon.New(cfg.Dimensions, cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, sammon.DefaultAlpha, o.Alpha())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
dimensions: 3
alpha: 0.35
max_iterations: 500
workers: 4
cache: results.db
plot: out.png
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Dimensions)
	assert.Equal(t, 0.35, cfg.Alpha)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "results.db", cfg.CachePath)
	assert.Equal(t, "out.png", cfg.PlotPath)
	assert.Equal(t, sammon.DefaultThreshold, cfg.Threshold, "unset keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "dimenzions: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "workers: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"dimensions", func(c *config.Config) { c.Dimensions = 0 }},
		{"threshold zero", func(c *config.Config) { c.Threshold = 0 }},
		{"threshold negative", func(c *config.Config) { c.Threshold = -1 }},
		{"max iterations", func(c *config.Config) { c.MaxIterations = -1 }},
		{"workers", func(c *config.Config) { c.Workers = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
