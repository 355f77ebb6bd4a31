package dataset

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sammonmap/vectorset"
)

// TwoSpheres returns n 3-D points alternating between two unit spheres centred
// at (2,2,2) (even indices) and (−2,−2,−2) (odd indices). Point i sits at
// θ = 2π·i/n, φ = π·i/n on its sphere.
func TwoSpheres(n int) *vectorset.VectorSet {
	vs, _ := vectorset.New(3)
	var theta, phi, c float64
	for i := 0; i < n; i++ {
		theta = float64(i) / float64(n) * 2 * math.Pi
		phi = float64(i) / float64(n) * math.Pi
		c = 2
		if i%2 == 1 {
			c = -2
		}
		_ = vs.Add([]float64{
			c + math.Cos(theta)*math.Sin(phi),
			c + math.Sin(theta)*math.Sin(phi),
			c + math.Cos(phi),
		})
	}

	return vs
}

// TwoClusters returns 2·perCluster 3-D points drawn uniformly from balls of the
// given radius centred at (2,2,2) (indices [0, perCluster)) and (−2,−2,−2)
// (indices [perCluster, 2·perCluster)). A nil rng uses vectorset.NewRand(0).
func TwoClusters(perCluster int, radius float64, rng *rand.Rand) *vectorset.VectorSet {
	if rng == nil {
		rng = vectorset.NewRand(0)
	}
	vs, _ := vectorset.New(3)
	for _, c := range []float64{2, -2} {
		for i := 0; i < perCluster; i++ {
			_ = vs.Add(ballPoint(c, radius, rng))
		}
	}

	return vs
}

// ballPoint samples a point uniformly from the 3-D ball by rejection from the cube.
func ballPoint(center, radius float64, rng *rand.Rand) []float64 {
	p := make([]float64, 3)
	for {
		var r2 float64
		for d := range p {
			p[d] = (2*rng.Float64() - 1) * radius
			r2 += p[d] * p[d]
		}
		if r2 <= radius*radius {
			break
		}
	}
	for d := range p {
		p[d] += center
	}

	return p
}

// Sphere returns n points spread over the sphere of the given radius around
// the origin using the Fibonacci lattice (deterministic, near-uniform).
func Sphere(n int, radius float64) *vectorset.VectorSet {
	vs, _ := vectorset.New(3)
	golden := math.Pi * (3 - math.Sqrt(5))
	var z, r, a float64
	for i := 0; i < n; i++ {
		z = 1 - (float64(i)+0.5)*2/float64(n)
		r = math.Sqrt(1 - z*z)
		a = golden * float64(i)
		_ = vs.Add([]float64{radius * r * math.Cos(a), radius * r * math.Sin(a), radius * z})
	}

	return vs
}

// Tetrahedron returns the four corners of a regular tetrahedron inscribed in
// the cube [−1, 1]³; every pairwise distance is 2√2.
func Tetrahedron() *vectorset.VectorSet {
	vs, _ := vectorset.FromPoints(3, [][]float64{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	})

	return vs
}
