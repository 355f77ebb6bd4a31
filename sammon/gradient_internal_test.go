package sammon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// pair builds the 2×2 distance matrix with off-diagonal d.
func pair(d float64) *mat.SymDense {
	return mat.NewSymDense(2, []float64{0, d, d, 0})
}

func TestGradientSums_TwoPoints(t *testing.T) {
	st := newStabilizer(Epsilon, E2)
	y := [][]float64{{0, 0}, {1, 0}}
	dOld, dNew := pair(2), pair(1)

	// q=0: deltaD=1, prodD=2, deltaY=-1.
	num, den := gradientSums(0, 0, y, dOld, dNew, st)
	assert.InDelta(t, -0.5, num, 1e-15)
	assert.InDelta(t, -0.5, den, 1e-15)

	// q=1: deltaY=0 ⇒ no pull, pure curvature from deltaD.
	num, den = gradientSums(0, 1, y, dOld, dNew, st)
	assert.Equal(t, 0.0, num)
	assert.InDelta(t, 0.5, den, 1e-15)

	assert.Equal(t, Stabilization{}, st.snapshot(), "no guard fires on a well-conditioned pair")
}

func TestUpdateCoordinate_MovesApartWhenTooClose(t *testing.T) {
	st := newStabilizer(Epsilon, E2)
	y := [][]float64{{0, 0}, {1, 0}}

	// Source distance 2, current distance 1: point 0 must move away from point 1.
	v := updateCoordinate(0, 0, y, pair(2), pair(1), 2, 0.3, false, st)
	assert.InDelta(t, -0.3, v, 1e-15)

	v = updateCoordinate(0, 1, y, pair(2), pair(1), 2, 0.3, false, st)
	assert.Equal(t, 0.0, v)
}

func TestUpdateCoordinate_CurvatureSign(t *testing.T) {
	st := newStabilizer(Epsilon, E2)
	// deltaY=-0.5 with dNew=1 gives a positive raw denominator (negative term).
	y := [][]float64{{0, 0}, {0.5, math.Sqrt(0.75)}}

	signed := updateCoordinate(0, 0, y, pair(2), pair(1), 2, 0.3, false, st)
	abs := updateCoordinate(0, 0, y, pair(2), pair(1), 2, 0.3, true, st)

	assert.InDelta(t, 0.3, signed, 1e-12, "default rule divides by the signed curvature term")
	assert.InDelta(t, -0.3, abs, 1e-12, "magnitude rule steps downhill")
}

func TestStabilizer(t *testing.T) {
	st := newStabilizer(Epsilon, E2)

	assert.Equal(t, Epsilon, st.constant(0))
	assert.Equal(t, 5.0, st.constant(5))
	assert.Equal(t, E2, st.denominator(0))
	assert.Equal(t, -1.0, st.denominator(-1))
	assert.Equal(t, Epsilon, st.distance(0))
	assert.Equal(t, 0.5, st.distance(0.5))

	assert.Equal(t, Stabilization{ConstantNudges: 1, DenominatorNudges: 1, DistanceFloors: 1}, st.snapshot())
}

func TestGradientSums_CoincidentPointsStayFinite(t *testing.T) {
	st := newStabilizer(Epsilon, E2)
	y := [][]float64{{1, 1}, {1, 1}}

	num, den := gradientSums(0, 0, y, pair(0), pair(0), st)
	assert.False(t, math.IsNaN(num) || math.IsInf(num, 0))
	assert.False(t, math.IsNaN(den) || math.IsInf(den, 0))
	assert.Equal(t, int64(2), st.snapshot().DistanceFloors)
	assert.Equal(t, int64(1), st.snapshot().DenominatorNudges)
}

func TestClampAlpha(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.1, 0.3},
		{0.9, 0.4},
		{0.35, 0.35},
		{0.3, 0.3},
		{0.4, 0.4},
		{math.NaN(), 0.3},
		{math.Inf(1), 0.4},
		{math.Inf(-1), 0.3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, clampAlpha(c.in), "clampAlpha(%v)", c.in)
	}
}
