// Package config loads and validates sammonmap run configurations.
//
// A run configuration is a small YAML document; every field is optional and
// falls back to the library defaults. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sammonmap/sammon"
)

// DefaultDimensions is the output dimensionality used when none is given.
const DefaultDimensions = 2

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is one mapping run.
type Config struct {
	Dimensions    int     `yaml:"dimensions"`
	Alpha         float64 `yaml:"alpha"`
	Threshold     float64 `yaml:"threshold"`
	MaxIterations int     `yaml:"max_iterations"`
	Seed          int64   `yaml:"seed"`
	Workers       int     `yaml:"workers"`

	// CachePath is a bbolt file; empty disables persistent caching.
	CachePath string `yaml:"cache"`

	// PlotPath receives a scatter plot of the result; empty disables plotting.
	PlotPath string `yaml:"plot"`
}

// Default returns the configuration matching the library defaults.
func Default() Config {
	return Config{
		Dimensions:    DefaultDimensions,
		Alpha:         sammon.DefaultAlpha,
		Threshold:     sammon.DefaultThreshold,
		MaxIterations: sammon.DefaultMaxIterations,
		Seed:          sammon.DefaultSeed,
		Workers:       sammon.DefaultWorkers,
	}
}

// Load reads path over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the optimizer would panic or fail on.
// Alpha is not checked: the optimizer saturates it.
func (c Config) Validate() error {
	switch {
	case c.Dimensions <= 0:
		return fmt.Errorf("%w: dimensions must be > 0, got %d", ErrInvalid, c.Dimensions)
	case math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold <= 0:
		return fmt.Errorf("%w: threshold must be finite and > 0, got %g", ErrInvalid, c.Threshold)
	case c.MaxIterations < 0:
		return fmt.Errorf("%w: max_iterations must be >= 0, got %d", ErrInvalid, c.MaxIterations)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}

	return nil
}

// Options translates c into optimizer options. c must be valid.
func (c Config) Options() []sammon.Option {
	return []sammon.Option{
		sammon.WithAlpha(c.Alpha),
		sammon.WithThreshold(c.Threshold),
		sammon.WithMaxIterations(c.MaxIterations),
		sammon.WithSeed(c.Seed),
		sammon.WithWorkers(c.Workers),
	}
}
