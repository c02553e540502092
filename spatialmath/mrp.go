package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/num/quat"
)

// ToMRP converts a rotation matrix to modified Rodrigues parameters, q_vec / (1 + q0).
// Since ToQuaternion returns q0 >= 0 the result always lies in the unit ball.
func ToMRP(rm *RotationMatrix) r3.Vector {
	q := ToQuaternion(rm)
	return r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}.Mul(1 / (1 + q.Real))
}

// FromMRP converts modified Rodrigues parameters to a rotation matrix.
func FromMRP(p r3.Vector) *RotationMatrix {
	p2 := p.Norm2()
	v := p.Mul(2 / (1 + p2))
	return fromUnitQuaternion(quat.Number{Real: (1 - p2) / (1 + p2), Imag: v.X, Jmag: v.Y, Kmag: v.Z})
}

// ToMRPs converts a batch of rotation matrices.
func ToMRPs(rms []*RotationMatrix) []r3.Vector {
	return lo.Map(rms, func(rm *RotationMatrix, _ int) r3.Vector {
		return ToMRP(rm)
	})
}

// FromMRPs converts a batch of modified Rodrigues parameters.
func FromMRPs(ps []r3.Vector) []*RotationMatrix {
	return lo.Map(ps, func(p r3.Vector, _ int) *RotationMatrix {
		return FromMRP(p)
	})
}
