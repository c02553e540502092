package spline

import (
	"context"

	"github.com/golang/geo/r3"

	"go.viam.com/attitude/spatialmath"
	"go.viam.com/attitude/utils"
)

// Samples is a spline evaluated at a set of query times. Entry i of every slice belongs to Times[i].
type Samples struct {
	Times                []float64
	Rotations            []*spatialmath.RotationMatrix
	AngularRates         []r3.Vector
	AngularAccelerations []r3.Vector
}

// Sample evaluates the rotation, angular rate and angular acceleration at every time in ts,
// spreading the work over utils.ParallelFactor goroutines.
func (s *RotationSpline) Sample(ctx context.Context, ts []float64) (*Samples, error) {
	out := &Samples{
		Times:                append([]float64(nil), ts...),
		Rotations:            make([]*spatialmath.RotationMatrix, len(ts)),
		AngularRates:         make([]r3.Vector, len(ts)),
		AngularAccelerations: make([]r3.Vector, len(ts)),
	}
	err := utils.GroupWorkParallel(ctx, len(ts), func(_, from, to int) error {
		for i := from; i < to; i++ {
			k, tau := s.segment(ts[i])
			r, rdot, rddot := s.eval(k, tau)
			out.Rotations[i] = s.rotations[k].Mul(spatialmath.FromRotationVector(r))
			out.AngularRates[i] = spatialmath.AngularRate(r, rdot)
			out.AngularAccelerations[i] = spatialmath.AngularAcceleration(r, rdot, rddot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
