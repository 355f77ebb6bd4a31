package vectorset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sammonmap/vectorset"
)

// randomSet returns a deterministic n×dim set with coordinates in [-5, 5).
func randomSet(t *testing.T, n, dim int, seed int64) *vectorset.VectorSet {
	t.Helper()
	vs, err := vectorset.New(dim)
	require.NoError(t, err)
	require.NoError(t, vs.Populate(n, 10, vectorset.NewRand(seed)))

	return vs
}

func TestComputeDistanceMatrix_Empty(t *testing.T) {
	vs, _ := vectorset.New(2)
	assert.ErrorIs(t, vs.ComputeDistanceMatrix(), vectorset.ErrEmptySet)
}

func TestDistance_NotComputed(t *testing.T) {
	vs := mustSet(t, 2, []float64{0, 0}, []float64{3, 4})

	_, err := vs.Distance(0, 1)
	assert.ErrorIs(t, err, vectorset.ErrNotComputed, "before any computation")
	_, err = vs.NormalizingConstant()
	assert.ErrorIs(t, err, vectorset.ErrNotComputed)
	_, err = vs.DistanceMatrix()
	assert.ErrorIs(t, err, vectorset.ErrNotComputed)

	require.NoError(t, vs.ComputeDistanceMatrix())
	d, err := vs.Distance(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	require.NoError(t, vs.Add([]float64{1, 1}))
	_, err = vs.Distance(0, 1)
	assert.ErrorIs(t, err, vectorset.ErrNotComputed, "mutation must stale the snapshot")
}

func TestDistance_IndexOutOfRange(t *testing.T) {
	vs := mustSet(t, 2, []float64{0, 0}, []float64{3, 4})
	require.NoError(t, vs.ComputeDistanceMatrix())

	for _, c := range [][2]int{{-1, 0}, {0, 2}, {2, 2}} {
		_, err := vs.Distance(c[0], c[1])
		assert.ErrorIs(t, err, vectorset.ErrIndexOutOfRange, "Distance(%d,%d)", c[0], c[1])
	}
}

func TestDistanceMatrix_Properties(t *testing.T) {
	vs := randomSet(t, 30, 4, 11)
	require.NoError(t, vs.ComputeDistanceMatrix())

	n := vs.Len()
	for i := 0; i < n; i++ {
		dii, err := vs.Distance(i, i)
		require.NoError(t, err)
		assert.Equal(t, 0.0, dii, "zero diagonal at %d", i)
		for j := 0; j < n; j++ {
			dij, _ := vs.Distance(i, j)
			dji, _ := vs.Distance(j, i)
			assert.Equal(t, dij, dji, "symmetry at (%d,%d)", i, j)
			assert.GreaterOrEqual(t, dij, 0.0, "non-negative at (%d,%d)", i, j)
		}
	}
}

func TestDistance_Known(t *testing.T) {
	vs := mustSet(t, 3, []float64{0, 0, 0}, []float64{1, 2, 2}, []float64{1, 2, 2})
	require.NoError(t, vs.ComputeDistanceMatrix())

	d, _ := vs.Distance(0, 1)
	assert.InDelta(t, 3.0, d, 1e-12)
	d, _ = vs.Distance(1, 2)
	assert.Equal(t, 0.0, d, "duplicate points are at distance zero")
}

func TestComputeDistanceMatrix_Idempotent(t *testing.T) {
	vs := randomSet(t, 12, 3, 5)
	require.NoError(t, vs.ComputeDistanceMatrix())
	first, err := vs.DistanceMatrix()
	require.NoError(t, err)

	require.NoError(t, vs.ComputeDistanceMatrix())
	second, err := vs.DistanceMatrix()
	require.NoError(t, err)

	assert.True(t, mat.Equal(first, second))
}

func TestDistanceMatrix_IsCopy(t *testing.T) {
	vs := mustSet(t, 2, []float64{0, 0}, []float64{3, 4})
	require.NoError(t, vs.ComputeDistanceMatrix())

	m, err := vs.DistanceMatrix()
	require.NoError(t, err)
	m.SetSym(0, 1, 42)

	d, _ := vs.Distance(0, 1)
	assert.Equal(t, 5.0, d)
}

func TestNormalizingConstant_BruteForce(t *testing.T) {
	vs := randomSet(t, 25, 3, 3)
	require.NoError(t, vs.ComputeDistanceMatrix())

	got, err := vs.NormalizingConstant()
	require.NoError(t, err)

	pts := vs.Points()
	var want float64
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			var s float64
			for d := range pts[i] {
				diff := pts[i][d] - pts[j][d]
				s += diff * diff
			}
			want += math.Sqrt(s)
		}
	}
	assert.InDelta(t, want, got, 1e-9)
}

func TestNormalizingConstant_SinglePoint(t *testing.T) {
	vs := mustSet(t, 2, []float64{1, 1})
	require.NoError(t, vs.ComputeDistanceMatrix())

	c, err := vs.NormalizingConstant()
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)
}
