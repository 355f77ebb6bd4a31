package dataset_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sammonmap/dataset"
	"github.com/katalvlaran/sammonmap/vectorset"
)

func TestReadCSV(t *testing.T) {
	in := "# x,y,z\n1,2,3\n 4, 5.5, -6\n\n7,8,9e-1\n"
	vs, err := dataset.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, vs.Dimensionality())
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5.5, -6}, {7, 8, 0.9}}, vs.Points())
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := dataset.ReadCSV(strings.NewReader("# only a comment\n"))
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.ReadCSV(strings.NewReader("1,2\n3,abc\n"))
	assert.ErrorIs(t, err, dataset.ErrParse)

	_, err = dataset.ReadCSV(strings.NewReader("1,2\n3,4,5\n"))
	assert.ErrorIs(t, err, vectorset.ErrDimensionMismatch)
}

func TestCSV_RoundTripExact(t *testing.T) {
	src := dataset.TwoSpheres(16)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&buf, src))
	back, err := dataset.ReadCSV(&buf)
	require.NoError(t, err)

	d, err := src.Diff(back)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "shortest 'g' formatting must round-trip bit-exactly")
}

func TestTwoSpheres(t *testing.T) {
	vs := dataset.TwoSpheres(10)
	require.Equal(t, 10, vs.Len())

	for i, p := range vs.Points() {
		c := 2.0
		if i%2 == 1 {
			c = -2
		}
		r := math.Sqrt((p[0]-c)*(p[0]-c) + (p[1]-c)*(p[1]-c) + (p[2]-c)*(p[2]-c))
		assert.InDelta(t, 1.0, r, 1e-12, "point %d on its unit sphere", i)
	}
}

func TestTwoClusters(t *testing.T) {
	const per = 20
	vs := dataset.TwoClusters(per, 1, vectorset.NewRand(9))
	require.Equal(t, 2*per, vs.Len())

	for i, p := range vs.Points() {
		c := 2.0
		if i >= per {
			c = -2
		}
		r := math.Sqrt((p[0]-c)*(p[0]-c) + (p[1]-c)*(p[1]-c) + (p[2]-c)*(p[2]-c))
		assert.LessOrEqual(t, r, 1.0, "point %d inside its ball", i)
	}

	again := dataset.TwoClusters(per, 1, vectorset.NewRand(9))
	d, err := vs.Diff(again)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "same seed, same points")
}

func TestSphere(t *testing.T) {
	vs := dataset.Sphere(50, 2)
	require.Equal(t, 50, vs.Len())
	for i, p := range vs.Points() {
		assert.InDelta(t, 2.0, math.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]), 1e-12, "point %d", i)
	}
}

func TestTetrahedron(t *testing.T) {
	vs := dataset.Tetrahedron()
	require.NoError(t, vs.ComputeDistanceMatrix())
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			d, err := vs.Distance(i, j)
			require.NoError(t, err)
			assert.InDelta(t, 2*math.Sqrt2, d, 1e-12)
		}
	}
}
