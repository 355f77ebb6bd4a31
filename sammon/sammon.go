// SPDX-License-Identifier: MIT

package sammon

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sammonmap/vectorset"
)

// Optimizer maps a high-dimensional VectorSet onto a fixed lower
// dimensionality by minimizing Sammon stress.
//
// An Optimizer holds configuration only; every Map call owns its working
// sets and leaves no state behind. SetAlpha must not race with Map.
type Optimizer struct {
	newDim int
	opts   Options
}

// New returns an optimizer targeting newDim output dimensions.
// Returns ErrBadDimensionality if newDim <= 0.
func New(newDim int, opts ...Option) (*Optimizer, error) {
	if newDim <= 0 {
		return nil, ErrBadDimensionality
	}

	return &Optimizer{newDim: newDim, opts: gatherOptions(opts...)}, nil
}

// NewDimensionality returns the fixed output dimensionality.
func (o *Optimizer) NewDimensionality() int { return o.newDim }

// Alpha returns the effective step-size coefficient.
func (o *Optimizer) Alpha() float64 { return o.opts.alpha }

// SetAlpha sets the step-size coefficient, saturating to
// [AlphaLowerBound, AlphaUpperBound] instead of failing.
func (o *Optimizer) SetAlpha(v float64) { o.opts.alpha = clampAlpha(v) }

// Map runs the iterative Sammon mapping of x and returns the resulting
// configuration. x is treated as read-only: its distances are taken from a
// private clone.
//
// Implementation:
//   - Stage 1 (Init): distance matrix of x, largest per-dimension range R,
//     y := N random points in [-R/2, R/2)^newDim, distance matrix of y,
//     c := normalizing constant of x (stabilized once).
//   - Stage 2 (Iterate): with x and y distances frozen, compute every
//     next[p][q] = y[p][q] − alpha·numeratorTerm/denominatorTerm.
//   - Stage 3 (Commit): Diff(y, next); y ← next; recompute y's distances.
//     Stop when Diff < threshold (StatusConverged) or the iteration budget is
//     spent (StatusBudgetExhausted).
//
// ctx is checked once per iteration; cancellation aborts with ctx.Err().
//
// Errors:
//   - ErrNilSource for a nil x; vectorset.ErrEmptySet for an empty x.
//   - ErrNonFinite if an update yields NaN or ±Inf.
//
// Complexity: O(N²·D) per iteration, O(N²) memory.
func (o *Optimizer) Map(ctx context.Context, x *vectorset.VectorSet) (*Result, error) {
	if x == nil {
		return nil, ErrNilSource
	}
	var (
		opts = o.opts
		log  = opts.logger
		st   = newStabilizer(opts.epsilon, opts.e2)
		err  error
	)

	// Stage 1: Init.
	src := x.Clone()
	if src.IsStale() {
		if err = src.ComputeDistanceMatrix(); err != nil {
			return nil, fmt.Errorf("sammon: source: %w", err)
		}
	}
	n := src.Len()
	dOld, err := src.DistanceMatrix()
	if err != nil {
		return nil, err
	}
	c, err := src.NormalizingConstant()
	if err != nil {
		return nil, err
	}
	c = st.constant(c)

	span, err := src.MaxRange()
	if err != nil {
		return nil, err
	}
	y, err := vectorset.New(o.newDim)
	if err != nil {
		return nil, err
	}
	if err = y.Populate(n, span, vectorset.NewRand(opts.seed)); err != nil {
		return nil, err
	}
	if err = y.ComputeDistanceMatrix(); err != nil {
		return nil, err
	}
	dNew, err := y.DistanceMatrix()
	if err != nil {
		return nil, err
	}

	res := &Result{Status: StatusBudgetExhausted}
	res.InitialStress = stress(dOld, dNew, c)
	log.Debug("sammon: initialized",
		"points", n, "from", src.Dimensionality(), "to", o.newDim,
		"range", span, "c", c, "stress", res.InitialStress)

	next, _ := vectorset.New(o.newDim)
	buf := make([][]float64, n)
	for p := range buf {
		buf[p] = make([]float64, o.newDim)
	}

	// Stage 2 + 3: iterate until converged or out of budget.
	for m := 0; opts.maxIterations == 0 || m < opts.maxIterations; m++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		cur := y.Points()
		if err = o.step(cur, buf, dOld, dNew, c, st); err != nil {
			return nil, err
		}
		next.Reset()
		for p := range buf {
			if err = next.Add(buf[p]); err != nil {
				return nil, err
			}
		}

		if res.Diff, err = y.Diff(next); err != nil {
			return nil, err
		}
		if math.IsNaN(res.Diff) || math.IsInf(res.Diff, 0) {
			return nil, fmt.Errorf("%w: iteration %d", ErrNonFinite, m+1)
		}

		// Commit.
		if err = y.ReplaceWith(next); err != nil {
			return nil, err
		}
		if err = y.ComputeDistanceMatrix(); err != nil {
			return nil, err
		}
		if dNew, err = y.DistanceMatrix(); err != nil {
			return nil, err
		}
		res.Iterations = m + 1
		log.Debug("sammon: iteration completed", "iteration", res.Iterations, "diff", res.Diff)

		if res.Diff < opts.threshold {
			res.Status = StatusConverged
			break
		}
	}

	res.Y = y
	res.Stress = stress(dOld, dNew, c)
	res.Stabilization = st.snapshot()
	log.Info("sammon: finished",
		"status", res.Status.String(), "iterations", res.Iterations,
		"diff", res.Diff, "stress", res.Stress)

	return res, nil
}

// step fills out[p][q] for every point and coordinate from the frozen
// configuration y. With more than one worker the points are split into
// contiguous chunks; each (p, q) reads only frozen inputs, so the result is
// independent of the worker count.
func (o *Optimizer) step(y, out [][]float64, dOld, dNew *mat.SymDense, c float64, st *stabilizer) error {
	var (
		n       = len(y)
		workers = o.opts.workers
	)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return o.updateRange(0, n, y, out, dOld, dNew, c, st)
	}

	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			return o.updateRange(lo, hi, y, out, dOld, dNew, c, st)
		})
	}

	return g.Wait()
}

// updateRange computes the update for points [lo, hi).
func (o *Optimizer) updateRange(lo, hi int, y, out [][]float64, dOld, dNew *mat.SymDense, c float64, st *stabilizer) error {
	var v float64
	for p := lo; p < hi; p++ {
		for q := 0; q < o.newDim; q++ {
			v = updateCoordinate(p, q, y, dOld, dNew, c, o.opts.alpha, o.opts.absCurvature, st)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: point %d coordinate %d", ErrNonFinite, p, q)
			}
			out[p][q] = v
		}
	}

	return nil
}
