// Package sammonmap is a toolkit for Sammon mapping: nonlinear dimensionality
// reduction that keeps small pairwise distances faithful.
//
// 🚀 What is sammonmap?
//
//	A small, deterministic library plus CLI that brings together:
//		• Point sets: fixed-dimensionality VectorSet with a cached distance matrix
//		• Optimizer: iterative per-coordinate Sammon update with explicit stabilization
//		• Caching: results keyed by a fingerprint of data and settings (memory or bbolt)
//		• Datasets: CSV input/output and synthetic generators
//		• Plots: scatter rendering of dimensions 0 and 1
//
// ✨ Why choose sammonmap?
//
//   - Deterministic: fixed seeds; the worker count never changes the result
//   - Honest numerics: every near-zero guard is counted and reported
//   - Bounded: convergence threshold plus an iteration budget and context cancellation
//
// Under the hood, everything is organized under these subpackages:
//
//	vectorset/       VectorSet, distance matrix, staleness, random population
//	sammon/          Optimizer, Result, Stress, CachedMapper
//	store/           Store interface; go-cache and bbolt backends
//	dataset/         CSV codec and synthetic point sets
//	scatter/         gonum/plot scatter rendering
//	cmd/sammonmap/   command-line front end
//
// Quick start:
//
//	x := dataset.TwoSpheres(100)
//	opt, _ := sammon.New(2, sammon.WithAlpha(0.35))
//	res, err := opt.Map(ctx, x)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = scatter.Save("out.png", res.Y, scatter.Options{})
package sammonmap
