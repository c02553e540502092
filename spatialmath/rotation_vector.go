package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"
)

// smallAngle is the rotation angle in radians below which the rotation vector codec
// switches to its Taylor expansions. Both branches agree to machine precision there.
const smallAngle = 1e-8

// FromRotationVector converts a rotation vector (axis times angle, radians) to a rotation
// matrix using Rodrigues' formula.
func FromRotationVector(rv r3.Vector) *RotationMatrix {
	theta2 := rv.Norm2()
	theta := math.Sqrt(theta2)

	var k1, k2 float64
	if theta < smallAngle {
		k1 = 1 - theta2/6
		k2 = 0.5 - theta2/24
	} else {
		s := math.Sin(theta / 2)
		k1 = math.Sin(theta) / theta
		k2 = 2 * s * s / theta2
	}

	x, y, z := rv.X, rv.Y, rv.Z
	return &RotationMatrix{[9]float64{
		1 - k2*(y*y+z*z), -k1*z + k2*x*y, k1*y + k2*x*z,
		k1*z + k2*x*y, 1 - k2*(x*x+z*z), -k1*x + k2*y*z,
		-k1*y + k2*x*z, k1*x + k2*y*z, 1 - k2*(x*x+y*y),
	}}
}

// ToRotationVector converts a rotation matrix to a rotation vector with angle in [0, pi].
// The conversion goes through the quaternion, which stays well conditioned both for
// tiny rotations and for rotations close to pi.
func ToRotationVector(rm *RotationMatrix) r3.Vector {
	q := ToQuaternion(rm)
	v := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	s := v.Norm()
	if s < smallAngle {
		return v.Mul(2 + s*s/3)
	}
	return v.Mul(2 * math.Atan2(s, q.Real) / s)
}

// FromRotationVectors converts a batch of rotation vectors.
func FromRotationVectors(rvs []r3.Vector) []*RotationMatrix {
	return lo.Map(rvs, func(rv r3.Vector, _ int) *RotationMatrix {
		return FromRotationVector(rv)
	})
}

// ToRotationVectors converts a batch of rotation matrices.
func ToRotationVectors(rms []*RotationMatrix) []r3.Vector {
	return lo.Map(rms, func(rm *RotationMatrix, _ int) r3.Vector {
		return ToRotationVector(rm)
	})
}
