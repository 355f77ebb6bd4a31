// SPDX-License-Identifier: MIT

package sammon

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sammonmap/vectorset"
)

// Stress returns the Sammon stress of configuration y against source x:
//
//	E = (1/c) · Σ_{i<j} (d*ij − dij)² / d*ij,   c = Σ_{i<j} d*ij
//
// where d* are x's distances and d are y's. Pairs with d*ij == 0 are skipped.
// Both sets must have fresh distance matrices and the same point count.
// A c below Epsilon is raised by Epsilon; use Optimizer.Stress to apply an
// optimizer's WithEpsilon value instead.
//
// Errors:
//   - ErrNilSource if either set is nil.
//   - vectorset.ErrNotComputed if either matrix is stale.
//   - vectorset.ErrShapeMismatch if point counts differ.
func Stress(x, y *vectorset.VectorSet) (float64, error) {
	return stressOf(x, y, Epsilon)
}

// Stress is the package-level Stress with o's constant guard, so it agrees
// with Result.Stress of o.Map(x).
func (o *Optimizer) Stress(x, y *vectorset.VectorSet) (float64, error) {
	return stressOf(x, y, o.opts.epsilon)
}

func stressOf(x, y *vectorset.VectorSet, eps float64) (float64, error) {
	if x == nil || y == nil {
		return 0, ErrNilSource
	}
	if x.Len() != y.Len() {
		return 0, fmt.Errorf("%w: %d vs %d points", vectorset.ErrShapeMismatch, x.Len(), y.Len())
	}
	dOld, err := x.DistanceMatrix()
	if err != nil {
		return 0, err
	}
	dNew, err := y.DistanceMatrix()
	if err != nil {
		return 0, err
	}
	c, err := x.NormalizingConstant()
	if err != nil {
		return 0, err
	}

	return stress(dOld, dNew, newStabilizer(eps, E2).constant(c)), nil
}

// stress evaluates E over two same-sized symmetric matrices.
func stress(dOld, dNew *mat.SymDense, c float64) float64 {
	var (
		n    = dOld.SymmetricDim()
		sum  float64
		a, b float64
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a = dOld.At(i, j)
			if a == 0 {
				continue
			}
			b = a - dNew.At(i, j)
			sum += b * b / a
		}
	}

	return sum / c
}
