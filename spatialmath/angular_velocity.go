package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// seriesAngle is the rotation angle in radians below which the kinematic coefficients
// below are evaluated from their Taylor series instead of their closed forms, which
// lose precision to cancellation for small angles.
const seriesAngle = 0.1

// angularRateCoefficients returns k1 = (1 - cos θ)/θ² and k2 = (θ - sin θ)/θ³.
func angularRateCoefficients(theta float64) (k1, k2 float64) {
	t2 := theta * theta
	if theta < seriesAngle {
		k1 = 0.5 - t2/24 + t2*t2/720 - t2*t2*t2/40320
		k2 = 1./6 - t2/120 + t2*t2/5040 - t2*t2*t2/362880
		return k1, k2
	}
	s := math.Sin(theta / 2)
	k1 = 2 * s * s / t2
	k2 = (theta - math.Sin(theta)) / (t2 * theta)
	return k1, k2
}

// rotationVectorRateCoefficient returns k = (1 - (θ/2) / tan(θ/2)) / θ².
func rotationVectorRateCoefficient(theta float64) float64 {
	t2 := theta * theta
	if theta < seriesAngle {
		return 1./12 + t2/720 + t2*t2/30240 + t2*t2*t2/1209600
	}
	return (1 - 0.5*theta/math.Tan(0.5*theta)) / t2
}

// AngularRate returns the body-frame angular velocity of the rotation exp(rv) when the rotation
// vector changes at rate rvDot.
func AngularRate(rv, rvDot r3.Vector) r3.Vector {
	k1, k2 := angularRateCoefficients(rv.Norm())
	cp := rv.Cross(rvDot)
	return rvDot.Sub(cp.Mul(k1)).Add(rv.Cross(cp).Mul(k2))
}

// RotationVectorRate is the inverse of AngularRate: the rate of change of rv that produces the
// body-frame angular velocity omega.
func RotationVectorRate(rv, omega r3.Vector) r3.Vector {
	k := rotationVectorRateCoefficient(rv.Norm())
	cp := rv.Cross(omega)
	return omega.Add(cp.Mul(0.5)).Add(rv.Cross(cp).Mul(k))
}

// AngularAcceleration returns the body-frame angular acceleration of exp(rv) given the first and
// second time derivatives of the rotation vector.
func AngularAcceleration(rv, rvDot, rvDotDot r3.Vector) r3.Vector {
	return AngularRate(rv, rvDotDot).Add(angularAccelerationNonlinearTerm(rv, rvDot))
}

// angularAccelerationNonlinearTerm is the part of the angular acceleration that depends on rvDot
// only, i.e. d/dt(J(rv)) * rvDot.
func angularAccelerationNonlinearTerm(rv, rvDot r3.Vector) r3.Vector {
	theta := rv.Norm()
	t2 := theta * theta

	var k1, k2, k3 float64
	if theta < seriesAngle {
		k1 = 1./12 - t2/180 + t2*t2/6720 - t2*t2*t2/453600
		k2 = -1./60 + t2/1260 - t2*t2/60480 + t2*t2*t2/4989600
	} else {
		s, c := math.Sincos(theta)
		h := math.Sin(theta / 2)
		k1 = (4*h*h - theta*s) / (t2 * t2)
		k2 = (-2*theta + 3*s - theta*c) / (t2 * t2 * theta)
	}
	_, k3 = angularRateCoefficients(theta)

	dp := rv.Dot(rvDot)
	cp := rv.Cross(rvDot)
	ccp := rv.Cross(cp)
	dccp := rvDot.Cross(cp)
	return cp.Mul(dp * k1).Add(ccp.Mul(dp * k2)).Add(dccp.Mul(k3))
}

// AngularRateMatrix returns J(rv), the matrix mapping the rotation vector rate to the body-frame
// angular velocity: omega = J(rv) * rvDot.
func AngularRateMatrix(rv r3.Vector) *mat.Dense {
	k1, k2 := angularRateCoefficients(rv.Norm())
	return kinematicMatrix(rv, -k1, k2)
}

// RotationVectorRateMatrix returns the inverse of AngularRateMatrix: rvDot = A(rv) * omega.
func RotationVectorRateMatrix(rv r3.Vector) *mat.Dense {
	return kinematicMatrix(rv, 0.5, rotationVectorRateCoefficient(rv.Norm()))
}

// kinematicMatrix returns I + a [rv]x + b [rv]x².
func kinematicMatrix(rv r3.Vector, a, b float64) *mat.Dense {
	skew := Skew(rv)
	var skew2 mat.Dense
	skew2.Mul(skew, skew)

	out := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	skew.Scale(a, skew)
	skew2.Scale(b, &skew2)
	out.Add(out, skew)
	out.Add(out, &skew2)
	return out
}
