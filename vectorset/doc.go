// Package vectorset holds fixed-dimensionality collections of real vectors and
// the geometric primitives that distance-preserving mappings are built on.
//
// 🚀 What is a VectorSet?
//
//	An ordered list of points, all of the same dimensionality. Insertion order
//	is the stable index (0..N-1) used by every pairwise query:
//	  • Euclidean distance matrix (symmetric, zero diagonal), computed on demand
//	  • normalizing constant c = Σ_{i<j} d(i,j)
//	  • per-dimension range (max − min)
//	  • aggregate difference between two same-shaped sets
//
// ✨ Cache discipline:
//
//	The distance matrix is an explicit, owned snapshot. Every structural mutation
//	(Add, Populate, ReplaceWith, Reset) bumps a generation counter; the matrix
//	remembers the generation it was computed at. Queries against a snapshot
//	that no longer matches the points fail with ErrNotComputed instead of
//	silently returning stale values:
//
//	  vs.Add(p)                  // generation 1
//	  vs.ComputeDistanceMatrix() // snapshot @1
//	  vs.Add(q)                  // generation 2, vs.IsStale() == true
//	  vs.Distance(0, 1)          // ErrNotComputed
//
// ⚙️ Usage:
//
//	vs, _ := vectorset.New(3)
//	_ = vs.Add([]float64{0, 0, 0})
//	_ = vs.Add([]float64{1, 2, 2})
//	_ = vs.ComputeDistanceMatrix()
//	d, _ := vs.Distance(0, 1) // 3
//
// Complexity:
//
//   - ComputeDistanceMatrix: O(N²·D) time, O(N²) memory (gonum SymDense).
//   - Distance, At: O(1).
//   - Range: O(N). Diff: O(N·D).
//
// A VectorSet is not safe for concurrent mutation. Concurrent readers are fine
// once the matrix has been computed and no goroutine mutates the set.
package vectorset
