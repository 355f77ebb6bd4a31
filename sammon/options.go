// SPDX-License-Identifier: MIT

// Package sammon: functional configuration for the optimizer.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors with strict validation (panic on nonsensical values).
//
// The one exception to "panic on nonsense" is alpha: any value saturates to
// [AlphaLowerBound, AlphaUpperBound] silently, both in WithAlpha and SetAlpha.
package sammon

import (
	"io"
	"log/slog"
	"math"
)

// Step size bounds.
const (
	AlphaLowerBound = 0.3
	AlphaUpperBound = 0.4

	// DefaultAlpha is the step-size coefficient used when none is given.
	DefaultAlpha = AlphaLowerBound
)

// Numeric policy.
const (
	// Epsilon guards the normalizing constant and pairwise distances.
	Epsilon = 1e-6

	// E2 guards the gradient denominator.
	E2 = 1e-11
)

// Termination policy.
const (
	// DefaultThreshold is the Diff value below which a run is converged.
	// Diff is a sum of squared coordinate moves, so the threshold is on that scale.
	DefaultThreshold = 1e-6

	// DefaultMaxIterations bounds a run; 0 means unbounded.
	DefaultMaxIterations = 10000
)

// Execution policy.
const (
	// DefaultWorkers keeps the update single-threaded.
	DefaultWorkers = 1

	// DefaultSeed seeds the random initial configuration (0 ⇒ vectorset.DefaultSeed).
	DefaultSeed int64 = 0
)

const (
	panicThresholdInvalid = "sammon: WithThreshold: threshold must be finite and > 0"
	panicMaxIterInvalid   = "sammon: WithMaxIterations: n must be >= 0"
	panicWorkersInvalid   = "sammon: WithWorkers: n must be >= 1"
	panicEpsilonInvalid   = "sammon: WithEpsilon: eps must be finite and > 0"
	panicE2Invalid        = "sammon: WithE2: e2 must be finite and > 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	alpha           float64
	threshold       float64
	maxIterations   int
	seed            int64
	workers         int
	absCurvature    bool
	epsilon         float64
	e2              float64
	logger          *slog.Logger
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		alpha:         DefaultAlpha,
		threshold:     DefaultThreshold,
		maxIterations: DefaultMaxIterations,
		seed:          DefaultSeed,
		workers:       DefaultWorkers,
		epsilon:       Epsilon,
		e2:            E2,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithAlpha sets the step-size coefficient, saturating to [0.3, 0.4].
func WithAlpha(v float64) Option {
	return func(o *Options) { o.alpha = clampAlpha(v) }
}

// WithThreshold sets the convergence threshold on Diff.
// Panics if t is not finite and positive.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithMaxIterations caps the number of update steps; 0 removes the cap.
// An uncapped run may not terminate on degenerate inputs unless ctx is cancelled.
// Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithSeed sets the seed of the random initial configuration.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWorkers fans each iteration's per-point update out over n goroutines.
// Results do not depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithAbsoluteCurvature divides by the magnitude of the second-derivative
// term instead of its signed value, so every step points downhill even where
// the curvature is negative.
func WithAbsoluteCurvature() Option {
	return func(o *Options) { o.absCurvature = true }
}

// WithEpsilon overrides the guard for the normalizing constant and distances.
// Panics if eps is not finite and positive.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithE2 overrides the guard for the gradient denominator.
// Panics if e2 is not finite and positive.
func WithE2(e2 float64) Option {
	if math.IsNaN(e2) || math.IsInf(e2, 0) || e2 <= 0 {
		panic(panicE2Invalid)
	}

	return func(o *Options) { o.e2 = e2 }
}

// WithLogger attaches a structured logger. nil restores the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		o.logger = l
	}
}

// clampAlpha saturates v to [AlphaLowerBound, AlphaUpperBound]; NaN maps to the lower bound.
func clampAlpha(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < AlphaLowerBound:
		return AlphaLowerBound
	case v > AlphaUpperBound:
		return AlphaUpperBound
	default:
		return v
	}
}
