// SPDX-License-Identifier: MIT

package sammon

import (
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"
)

// stabilizer is the explicit near-zero guard. Every nudge is counted so a
// caller can tell a well-conditioned run from one that leaned on the patch.
// Counters are atomic because workers share one stabilizer per Map call.
type stabilizer struct {
	eps float64
	e2  float64

	constantNudges    atomic.Int64
	denominatorNudges atomic.Int64
	distanceFloors    atomic.Int64
}

func newStabilizer(eps, e2 float64) *stabilizer {
	return &stabilizer{eps: eps, e2: e2}
}

// constant applies |c| < eps ⇒ c += eps.
func (s *stabilizer) constant(c float64) float64 {
	if math.Abs(c) < s.eps {
		s.constantNudges.Add(1)
		c += s.eps
	}

	return c
}

// denominator applies |den| < e2 ⇒ den += e2.
func (s *stabilizer) denominator(den float64) float64 {
	if math.Abs(den) < s.e2 {
		s.denominatorNudges.Add(1)
		den += s.e2
	}

	return den
}

// distance raises a pairwise distance below eps to eps so that the
// quotients deltaD/prodD and deltaY²/dNew stay finite for coincident points.
func (s *stabilizer) distance(d float64) float64 {
	if d < s.eps {
		s.distanceFloors.Add(1)
		return s.eps
	}

	return d
}

func (s *stabilizer) snapshot() Stabilization {
	return Stabilization{
		ConstantNudges:    s.constantNudges.Load(),
		DenominatorNudges: s.denominatorNudges.Load(),
		DistanceFloors:    s.distanceFloors.Load(),
	}
}

// gradientSums returns the raw numerator and denominator sums for point p,
// coordinate q, over every j ≠ p:
//
//	deltaD = dOld(p,j) − dNew(p,j)
//	prodD  = dOld(p,j) · dNew(p,j)
//	deltaY = y[p][q] − y[j][q]
//	num   += (deltaD / prodD) · deltaY
//	den   += (deltaD − (1 + deltaD/dNew) · deltaY²/dNew) / prodD
//
// dOld is the frozen source matrix, dNew the matrix of y at the start of the
// iteration. The denominator guard is applied before returning.
//
// Complexity: O(N).
func gradientSums(p, q int, y [][]float64, dOld, dNew *mat.SymDense, st *stabilizer) (num, den float64) {
	var (
		dpjOld, dpjNew float64
		deltaD, prodD  float64
		deltaY         float64
		yp             = y[p][q]
	)
	for j := range y {
		if j == p {
			continue
		}
		dpjOld = st.distance(dOld.At(p, j))
		dpjNew = st.distance(dNew.At(p, j))

		deltaD = dpjOld - dpjNew
		prodD = dpjOld * dpjNew
		deltaY = yp - y[j][q]

		num += (deltaD / prodD) * deltaY
		den += (deltaD - (1+deltaD/dpjNew)*(deltaY*deltaY/dpjNew)) / prodD
	}

	return num, st.denominator(den)
}

// updateCoordinate returns y[p][q] − alpha · numeratorTerm / denominatorTerm,
// where both terms carry the −2/c scale. With abs set the denominator term
// enters by magnitude.
func updateCoordinate(p, q int, y [][]float64, dOld, dNew *mat.SymDense, c, alpha float64, abs bool, st *stabilizer) float64 {
	num, den := gradientSums(p, q, y, dOld, dNew, st)

	numTerm := -(2.0 / c) * num
	denTerm := -(2.0 / c) * den
	if abs {
		denTerm = math.Abs(denTerm)
	}

	return y[p][q] - alpha*(numTerm/denTerm)
}
