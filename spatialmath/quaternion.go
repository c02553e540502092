package spatialmath

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/num/quat"
)

// ToQuaternion converts a rotation matrix to a unit quaternion with a non-negative real part.
// The branch is chosen by the largest of the trace and the diagonal elements, which keeps the
// square root argument away from zero.
func ToQuaternion(rm *RotationMatrix) quat.Number {
	m := &rm.mat
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]
	tr := m00 + m11 + m22

	var q quat.Number
	switch {
	case tr >= m00 && tr >= m11 && tr >= m22:
		s := 2 * math.Sqrt(1+tr)
		q = quat.Number{Real: s / 4, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 >= m11 && m00 >= m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{Real: (m21 - m12) / s, Imag: s / 4, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 >= m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: s / 4, Kmag: (m12 + m21) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: s / 4}
	}

	q = quat.Scale(1/quat.Abs(q), q)
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	return q
}

// FromQuaternion converts a quaternion to a rotation matrix. The quaternion is normalized first;
// q and -q give the same matrix.
func FromQuaternion(q quat.Number) (*RotationMatrix, error) {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, NewInvalidArgumentError("cannot normalize quaternion %v", q)
	}
	return fromUnitQuaternion(quat.Scale(1/n, q)), nil
}

func fromUnitQuaternion(q quat.Number) *RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return &RotationMatrix{[9]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}}
}

// ToQuaternions converts a batch of rotation matrices.
func ToQuaternions(rms []*RotationMatrix) []quat.Number {
	return lo.Map(rms, func(rm *RotationMatrix, _ int) quat.Number {
		return ToQuaternion(rm)
	})
}

// FromQuaternions converts a batch of quaternions. It fails if any quaternion cannot be normalized.
func FromQuaternions(qs []quat.Number) ([]*RotationMatrix, error) {
	return mapErr(qs, FromQuaternion)
}
