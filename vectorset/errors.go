// SPDX-License-Identifier: MIT

// Package vectorset: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ErrX)); tests and callers match them via errors.Is.
package vectorset

import "errors"

var (
	// ErrBadDimensionality is returned when a set is requested with dimensionality <= 0.
	ErrBadDimensionality = errors.New("vectorset: dimensionality must be > 0")

	// ErrDimensionMismatch indicates a point whose length differs from the set's dimensionality.
	ErrDimensionMismatch = errors.New("vectorset: point dimensionality mismatch")

	// ErrShapeMismatch indicates two sets that differ in point count or dimensionality
	// where an identical shape is required (Diff, ReplaceWith).
	ErrShapeMismatch = errors.New("vectorset: shape mismatch")

	// ErrEmptySet indicates a geometric operation on a set with zero points.
	ErrEmptySet = errors.New("vectorset: set has no points")

	// ErrNotComputed indicates a distance query while the distance matrix is absent
	// or older than the current points.
	ErrNotComputed = errors.New("vectorset: distance matrix not computed")

	// ErrIndexOutOfRange indicates a point or dimension index outside current bounds.
	ErrIndexOutOfRange = errors.New("vectorset: index out of range")

	// ErrNilSet indicates a nil *VectorSet argument.
	ErrNilSet = errors.New("vectorset: nil set")

	// ErrBadCount indicates a negative point count for Populate.
	ErrBadCount = errors.New("vectorset: point count must be >= 0")

	// ErrBadRange indicates a negative or non-finite coordinate range for Populate.
	ErrBadRange = errors.New("vectorset: range must be finite and >= 0")
)
