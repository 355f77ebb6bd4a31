// Package sammon implements Sammon mapping: nonlinear dimensionality reduction
// that places N points in a low-dimensional space so that their pairwise
// distances reproduce the distances of the original high-dimensional points.
//
// 🚀 What is Sammon mapping?
//
//	Given source distances d*ij and output distances dij, the optimizer
//	minimizes the stress
//
//	  E = (1/c) · Σ_{i<j} (d*ij − dij)² / d*ij,    c = Σ_{i<j} d*ij
//
//	The 1/d*ij weight preserves small (local) distances with higher relative
//	importance than large ones.
//
// Algorithm Outline:
//  1. Compute the source distance matrix and c; find the largest per-dimension
//     range R of the source.
//  2. Seed y with N uniform random points in [-R/2, R/2)^D (deterministic seed).
//  3. For every point p and output coordinate q, with both matrices frozen:
//     numerator   = Σ_{j≠p} (deltaD / prodD) · deltaY
//     denominator = Σ_{j≠p} (deltaD − (1 + deltaD/dpj) · deltaY²/dpj) / prodD
//     next[p][q]  = y[p][q] − alpha · (−2/c·numerator) / (−2/c·denominator)
//  4. Diff(y, next) = Σ (y − next)²; commit next into y; stop when
//     Diff < Threshold or MaxIterations is reached.
//
// Numeric stabilization (never an error):
//   - |c| < Epsilon (1e-6)           ⇒ c += Epsilon, once per Map call.
//   - |denominator| < E2 (1e-11)     ⇒ denominator += E2.
//   - pairwise distance < Epsilon    ⇒ distance = Epsilon (coincident points).
//
// Each guard is counted in Result.Stabilization.
//
// Options:
//
//	– WithAlpha:           step size, saturated to [0.3, 0.4] (default 0.3).
//	– WithThreshold:       convergence threshold on Diff (default 1e-6).
//	– WithMaxIterations:   iteration budget, 0 = unbounded (default 10 000).
//	– WithSeed:            seed of the random start (default 0 ⇒ fixed seed).
//	– WithWorkers:         goroutines per iteration (default 1).
//	– WithAbsoluteCurvature: divide by the magnitude of the second-derivative term.
//	– WithEpsilon, WithE2: override the stabilization guards.
//	– WithLogger:          slog logger for per-iteration Debug records.
//
// Complexity:
//
//	– Time:  O(N²·D) per iteration.
//	– Space: O(N²) for the two distance matrices.
//
// Example usage:
//
//	opt, _ := sammon.New(2, sammon.WithAlpha(0.35))
//	res, err := opt.Map(ctx, x)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Status, res.Iterations, res.Stress)
//
// CachedMapper adds a store.Store in front of an Optimizer so a mapping is
// computed once per (source data, configuration) fingerprint.
package sammon
