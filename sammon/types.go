// SPDX-License-Identifier: MIT

package sammon

import (
	"errors"

	"github.com/katalvlaran/sammonmap/vectorset"
)

// Sentinel errors returned by the optimizer.
var (
	// ErrBadDimensionality indicates a target dimensionality <= 0.
	ErrBadDimensionality = errors.New("sammon: new dimensionality must be > 0")

	// ErrNilSource indicates that Map was called with a nil source set.
	ErrNilSource = errors.New("sammon: source set is nil")

	// ErrNonFinite indicates that an iteration produced NaN or ±Inf coordinates.
	// Reachable when the signed curvature term lands just outside the E2 guard,
	// or with pathological stabilization settings.
	ErrNonFinite = errors.New("sammon: iteration produced non-finite coordinates")

	// ErrNilOptimizer indicates a CachedMapper built without an optimizer.
	ErrNilOptimizer = errors.New("sammon: optimizer is nil")

	// ErrNilStore indicates a CachedMapper built without a store.
	ErrNilStore = errors.New("sammon: store is nil")
)

// Status tells how a Map call terminated.
type Status int

const (
	// StatusConverged means Diff between two successive configurations fell below the threshold.
	StatusConverged Status = iota

	// StatusBudgetExhausted means MaxIterations was reached first.
	StatusBudgetExhausted
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusBudgetExhausted:
		return "budget-exhausted"
	default:
		return "unknown"
	}
}

// Stabilization counts how often the numeric guards fired during one Map call.
// All counters stay zero on well-conditioned inputs except, occasionally,
// DenominatorNudges; persistent non-zero DistanceFloors point at duplicate
// source points or collapsed output points.
type Stabilization struct {
	// ConstantNudges counts |c| < Epsilon corrections (at most one per call).
	ConstantNudges int64

	// DenominatorNudges counts |Σ denominator| < E2 corrections.
	DenominatorNudges int64

	// DistanceFloors counts pairwise distances raised to Epsilon before division.
	DistanceFloors int64
}

// Result is the outcome of one Map call.
type Result struct {
	// Y is the low-dimensional configuration with a fresh distance matrix.
	Y *vectorset.VectorSet

	// Status is StatusConverged or StatusBudgetExhausted.
	Status Status

	// Iterations is the number of committed update steps.
	Iterations int

	// Diff is the convergence metric of the last step.
	Diff float64

	// InitialStress and Stress are the Sammon stress of the random starting
	// configuration and of Y.
	InitialStress float64
	Stress        float64

	// Stabilization reports numeric guard activity.
	Stabilization Stabilization
}

// Converged reports whether the run met the convergence threshold.
func (r *Result) Converged() bool { return r != nil && r.Status == StatusConverged }
