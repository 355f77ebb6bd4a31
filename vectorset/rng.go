// Package vectorset - deterministic random initialization.
//
// Goals:
//   - Determinism: same seed ⇒ identical configurations across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package vectorset

import (
	"math"
	"math/rand"
)

// DefaultSeed is the fixed seed used when callers pass seed==0 or a nil *rand.Rand.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Populate clears the set and generates count random points whose
// coordinates are drawn independently and uniformly from
// [-maxRange/2, maxRange/2). A nil rng uses NewRand(0).
//
// Errors:
//   - ErrBadCount if count < 0.
//   - ErrBadRange if maxRange is negative, NaN or ±Inf.
//
// Complexity: O(count·D).
func (vs *VectorSet) Populate(count int, maxRange float64, rng *rand.Rand) error {
	if count < 0 {
		return ErrBadCount
	}
	if math.IsNaN(maxRange) || math.IsInf(maxRange, 0) || maxRange < 0 {
		return ErrBadRange
	}
	if rng == nil {
		rng = NewRand(0)
	}

	points := make([][]float64, count)
	var i, d int
	for i = 0; i < count; i++ {
		points[i] = make([]float64, vs.dim)
		for d = 0; d < vs.dim; d++ {
			points[i][d] = (rng.Float64() - 0.5) * maxRange
		}
	}
	vs.points = points
	vs.touch()

	return nil
}
