package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

var kinematicCases = []r3.Vector{
	{},
	{X: 1e-9, Y: -2e-9, Z: 5e-10},
	{X: 0.01, Y: 0.03, Z: -0.02},
	{X: 0.0577, Y: 0.0577, Z: 0.0577},
	{X: 0.5, Y: -0.2, Z: 0.3},
	{X: -1.2, Y: 2.0, Z: 0.4},
	{X: 0, Y: 0, Z: 3.0},
}

func mulVec(m mat.Matrix, v r3.Vector) r3.Vector {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// bodyRate returns the angular velocity extracted from Cᵀ dC/dt by central differences.
func bodyRate(rv func(float64) r3.Vector, t, h float64) r3.Vector {
	c := FromRotationVector(rv(t))
	plus := FromRotationVector(rv(t + h))
	minus := FromRotationVector(rv(t - h))
	var w [9]float64
	for i := range w {
		w[i] = (plus.mat[i] - minus.mat[i]) / (2 * h)
	}
	ct := c.Transpose()
	m := ct.Mul(&RotationMatrix{w})
	return r3.Vector{
		X: (m.At(2, 1) - m.At(1, 2)) / 2,
		Y: (m.At(0, 2) - m.At(2, 0)) / 2,
		Z: (m.At(1, 0) - m.At(0, 1)) / 2,
	}
}

func TestKinematicMatricesAreInverse(t *testing.T) {
	for _, rv := range kinematicCases {
		var prod mat.Dense
		prod.Mul(AngularRateMatrix(rv), RotationVectorRateMatrix(rv))
		test.That(t, mat.EqualApprox(&prod, mat.NewDiagDense(3, []float64{1, 1, 1}), 1e-13), test.ShouldBeTrue)

		omega := r3.Vector{X: 0.3, Y: -0.7, Z: 1.1}
		expectVector(t, AngularRate(rv, RotationVectorRate(rv, omega)), omega, 1e-13)
		expectVector(t, mulVec(AngularRateMatrix(rv), omega), AngularRate(rv, omega), 1e-15)
		expectVector(t, mulVec(RotationVectorRateMatrix(rv), omega), RotationVectorRate(rv, omega), 1e-15)
	}
}

func TestKinematicSeriesContinuity(t *testing.T) {
	below, above := seriesAngle*(1-1e-9), seriesAngle*(1+1e-9)

	k1b, k2b := angularRateCoefficients(below)
	k1a, k2a := angularRateCoefficients(above)
	test.That(t, k1b, test.ShouldAlmostEqual, k1a, 1e-12)
	test.That(t, k2b, test.ShouldAlmostEqual, k2a, 1e-12)

	test.That(t, rotationVectorRateCoefficient(below), test.ShouldAlmostEqual, rotationVectorRateCoefficient(above), 1e-12)

	rdot := r3.Vector{X: 0.4, Y: -0.1, Z: 0.9}
	dir := r3.Vector{X: 1, Y: 2, Z: -2}.Normalize()
	expectVector(t,
		angularAccelerationNonlinearTerm(dir.Mul(below), rdot),
		angularAccelerationNonlinearTerm(dir.Mul(above), rdot),
		1e-12)
}

func TestAngularRateMatchesFiniteDifference(t *testing.T) {
	rdot := r3.Vector{X: 0.2, Y: -0.5, Z: 0.8}
	for _, rv0 := range kinematicCases {
		path := func(tm float64) r3.Vector { return rv0.Add(rdot.Mul(tm)) }
		expectVector(t, AngularRate(rv0, rdot), bodyRate(path, 0, 1e-6), 1e-8)
	}
}

func TestAngularAccelerationMatchesFiniteDifference(t *testing.T) {
	r1 := r3.Vector{X: 0.2, Y: -0.5, Z: 0.8}
	r2 := r3.Vector{X: -0.3, Y: 0.1, Z: 0.4}
	const h = 1e-5
	for _, rv0 := range kinematicCases {
		rate := func(tm float64) r3.Vector {
			rv := rv0.Add(r1.Mul(tm)).Add(r2.Mul(tm * tm))
			return AngularRate(rv, r1.Add(r2.Mul(2*tm)))
		}
		want := rate(h).Sub(rate(-h)).Mul(1 / (2 * h))
		expectVector(t, AngularAcceleration(rv0, r1, r2.Mul(2)), want, 1e-8)
	}
}
