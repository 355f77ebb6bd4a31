// SPDX-License-Identifier: MIT

package vectorset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ComputeDistanceMatrix computes and caches the N×N Euclidean distance matrix
// of the current points. Calling it twice without mutation yields identical
// matrices.
//
// Implementation:
//   - Stage 1: reject empty sets (ErrEmptySet).
//   - Stage 2: fill the upper triangle of a gonum SymDense with
//     floats.Distance(p_i, p_j, 2); the diagonal stays 0.
//   - Stage 3: stamp the snapshot with the current generation.
//
// Complexity: O(N²·D) time, O(N²) memory.
func (vs *VectorSet) ComputeDistanceMatrix() error {
	n := len(vs.points)
	if n == 0 {
		return ErrEmptySet
	}

	if vs.dist == nil || vs.dist.SymmetricDim() != n {
		vs.dist = mat.NewSymDense(n, nil)
	}
	var i, j int
	for i = 0; i < n; i++ {
		vs.dist.SetSym(i, i, 0)
		for j = i + 1; j < n; j++ {
			vs.dist.SetSym(i, j, floats.Distance(vs.points[i], vs.points[j], 2))
		}
	}
	vs.distGen = vs.generation

	return nil
}

// IsStale reports whether the cached distance matrix is missing or older than
// the current points.
func (vs *VectorSet) IsStale() bool {
	return vs.dist == nil || vs.distGen != vs.generation
}

// Distance returns the cached distance between points i and j.
//
// Errors:
//   - ErrNotComputed if the matrix is absent or stale.
//   - ErrIndexOutOfRange if i or j is outside [0, N).
func (vs *VectorSet) Distance(i, j int) (float64, error) {
	if vs.IsStale() {
		return 0, ErrNotComputed
	}
	n := len(vs.points)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrIndexOutOfRange
	}

	return vs.dist.At(i, j), nil
}

// NormalizingConstant returns Σ_{i<j} d(i,j) over the cached matrix.
// Returns ErrNotComputed if the matrix is absent or stale.
//
// Complexity: O(N²).
func (vs *VectorSet) NormalizingConstant() (float64, error) {
	if vs.IsStale() {
		return 0, ErrNotComputed
	}
	var (
		n   = len(vs.points)
		sum float64
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += vs.dist.At(i, j)
		}
	}

	return sum, nil
}

// DistanceMatrix returns a copy of the cached matrix.
// Returns ErrNotComputed if the matrix is absent or stale.
func (vs *VectorSet) DistanceMatrix() (*mat.SymDense, error) {
	if vs.IsStale() {
		return nil, ErrNotComputed
	}
	out := mat.NewSymDense(vs.dist.SymmetricDim(), nil)
	out.CopySym(vs.dist)

	return out, nil
}
