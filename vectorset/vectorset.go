// SPDX-License-Identifier: MIT

package vectorset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// VectorSet is an ordered collection of points sharing one dimensionality.
//
// Invariants:
//   - len(points[i]) == dim for every i.
//   - dist, when non-nil, is an N×N symmetric zero-diagonal snapshot of the
//     points as they were at generation distGen.
type VectorSet struct {
	dim    int
	points [][]float64

	// generation counts structural mutations; distGen is the generation the
	// cached matrix was computed at.
	generation uint64
	dist       *mat.SymDense
	distGen    uint64
}

// New returns an empty set of the given dimensionality.
// Returns ErrBadDimensionality if dim <= 0.
func New(dim int) (*VectorSet, error) {
	if dim <= 0 {
		return nil, ErrBadDimensionality
	}

	return &VectorSet{dim: dim}, nil
}

// FromPoints builds a set of dimensionality dim and adds every point in order.
// The points are copied; the caller keeps ownership of the input slices.
func FromPoints(dim int, points [][]float64) (*VectorSet, error) {
	vs, err := New(dim)
	if err != nil {
		return nil, err
	}
	for i, p := range points {
		if err = vs.Add(p); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}

	return vs, nil
}

// Dimensionality returns the fixed length of every point.
func (vs *VectorSet) Dimensionality() int { return vs.dim }

// Len returns the number of points.
func (vs *VectorSet) Len() int { return len(vs.points) }

// Add appends a copy of point.
// Returns ErrDimensionMismatch if len(point) != Dimensionality().
// Invalidates the cached distance matrix.
func (vs *VectorSet) Add(point []float64) error {
	if len(point) != vs.dim {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(point), vs.dim)
	}
	p := make([]float64, vs.dim)
	copy(p, point)
	vs.points = append(vs.points, p)
	vs.touch()

	return nil
}

// Reset removes every point. The dimensionality is kept.
func (vs *VectorSet) Reset() {
	vs.points = vs.points[:0]
	vs.touch()
}

// At returns coordinate dim of point i.
func (vs *VectorSet) At(i, dim int) (float64, error) {
	if i < 0 || i >= len(vs.points) || dim < 0 || dim >= vs.dim {
		return 0, ErrIndexOutOfRange
	}

	return vs.points[i][dim], nil
}

// Point returns a copy of point i.
func (vs *VectorSet) Point(i int) ([]float64, error) {
	if i < 0 || i >= len(vs.points) {
		return nil, ErrIndexOutOfRange
	}
	p := make([]float64, vs.dim)
	copy(p, vs.points[i])

	return p, nil
}

// Points returns a deep copy of all points in index order.
func (vs *VectorSet) Points() [][]float64 {
	out := make([][]float64, len(vs.points))
	for i, p := range vs.points {
		out[i] = make([]float64, vs.dim)
		copy(out[i], p)
	}

	return out
}

// Column returns coordinate dim of every point, in index order.
// This is the per-dimension view consumed by plotting adapters.
func (vs *VectorSet) Column(dim int) ([]float64, error) {
	if dim < 0 || dim >= vs.dim {
		return nil, ErrIndexOutOfRange
	}
	col := make([]float64, len(vs.points))
	for i, p := range vs.points {
		col[i] = p[dim]
	}

	return col, nil
}

// Range returns max − min of coordinate dim across all points.
// Returns ErrEmptySet for an empty set and ErrIndexOutOfRange for a bad dim.
func (vs *VectorSet) Range(dim int) (float64, error) {
	if len(vs.points) == 0 {
		return 0, ErrEmptySet
	}
	col, err := vs.Column(dim)
	if err != nil {
		return 0, err
	}

	return floats.Max(col) - floats.Min(col), nil
}

// MaxRange returns the largest Range over all dimensions.
func (vs *VectorSet) MaxRange() (float64, error) {
	var (
		best = math.Inf(-1)
		r    float64
		err  error
	)
	for d := 0; d < vs.dim; d++ {
		if r, err = vs.Range(d); err != nil {
			return 0, err
		}
		if r > best {
			best = r
		}
	}

	return best, nil
}

// ReplaceWith replaces this set's points with copies of other's points and
// invalidates the cached distance matrix. This is the commit step of an
// iterative optimizer.
//
// Errors:
//   - ErrNilSet if other is nil.
//   - ErrShapeMismatch if dimensionalities differ, or if this set is non-empty
//     and the point counts differ.
func (vs *VectorSet) ReplaceWith(other *VectorSet) error {
	if other == nil {
		return ErrNilSet
	}
	if other.dim != vs.dim {
		return fmt.Errorf("%w: dimensionality %d vs %d", ErrShapeMismatch, vs.dim, other.dim)
	}
	if len(vs.points) != 0 && len(vs.points) != len(other.points) {
		return fmt.Errorf("%w: %d points vs %d", ErrShapeMismatch, len(vs.points), len(other.points))
	}
	if vs == other {
		vs.touch()

		return nil
	}

	n := len(other.points)
	if cap(vs.points) < n {
		vs.points = make([][]float64, n)
	}
	vs.points = vs.points[:n]
	for i, p := range other.points {
		if vs.points[i] == nil {
			vs.points[i] = make([]float64, vs.dim)
		}
		copy(vs.points[i], p)
	}
	vs.touch()

	return nil
}

// Diff returns the sum of squared per-coordinate differences between vs and
// other: Σ_i Σ_d (vs[i][d] − other[i][d])². Diff(a, a) == 0.
// Returns ErrShapeMismatch if point counts or dimensionalities differ.
func (vs *VectorSet) Diff(other *VectorSet) (float64, error) {
	if other == nil {
		return 0, ErrNilSet
	}
	if other.dim != vs.dim || len(other.points) != len(vs.points) {
		return 0, ErrShapeMismatch
	}
	var (
		sum float64
		d   float64
	)
	for i, p := range vs.points {
		d = floats.Distance(p, other.points[i], 2)
		sum += d * d
	}

	return sum, nil
}

// Clone returns a deep copy including the cached matrix and its freshness.
func (vs *VectorSet) Clone() *VectorSet {
	c := &VectorSet{
		dim:        vs.dim,
		points:     vs.Points(),
		generation: vs.generation,
		distGen:    vs.distGen,
	}
	if vs.dist != nil {
		c.dist = mat.NewSymDense(vs.dist.SymmetricDim(), nil)
		c.dist.CopySym(vs.dist)
	}

	return c
}

// touch records a structural mutation.
func (vs *VectorSet) touch() { vs.generation++ }
