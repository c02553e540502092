package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/num/quat"
)

// singularityTolerance is the smallest quaternion real part for which a Gibbs vector is produced.
const singularityTolerance = 1e-12

// ToGibbs converts a rotation matrix to a Gibbs vector, q_vec / q0.
// Rotations by pi have no Gibbs vector and yield ErrNumericalSingularity.
func ToGibbs(rm *RotationMatrix) (r3.Vector, error) {
	q := ToQuaternion(rm)
	if q.Real < singularityTolerance {
		return r3.Vector{}, NewNumericalSingularityError("rotation angle is too close to 180 degrees for a Gibbs vector")
	}
	return r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}.Mul(1 / q.Real), nil
}

// FromGibbs converts a Gibbs vector to a rotation matrix.
func FromGibbs(g r3.Vector) *RotationMatrix {
	q0 := 1 / math.Sqrt(1+g.Norm2())
	v := g.Mul(q0)
	return fromUnitQuaternion(quat.Number{Real: q0, Imag: v.X, Jmag: v.Y, Kmag: v.Z})
}

// ToGibbsVectors converts a batch of rotation matrices. It fails if any rotation is singular.
func ToGibbsVectors(rms []*RotationMatrix) ([]r3.Vector, error) {
	return mapErr(rms, ToGibbs)
}

// FromGibbsVectors converts a batch of Gibbs vectors.
func FromGibbsVectors(gs []r3.Vector) []*RotationMatrix {
	return lo.Map(gs, func(g r3.Vector, _ int) *RotationMatrix {
		return FromGibbs(g)
	})
}
