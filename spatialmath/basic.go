package spatialmath

import (
	"math"

	"go.viam.com/attitude/utils"
)

// FromBasic returns the right-handed rotation by angle degrees about the given body axis (1, 2 or 3).
func FromBasic(axis int, angle float64) (*RotationMatrix, error) {
	s, c := math.Sincos(utils.DegToRad(angle))
	switch axis {
	case 1:
		return &RotationMatrix{[9]float64{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		}}, nil
	case 2:
		return &RotationMatrix{[9]float64{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		}}, nil
	case 3:
		return &RotationMatrix{[9]float64{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		}}, nil
	default:
		return nil, NewInvalidArgumentError("axis must be 1, 2 or 3, got %d", axis)
	}
}

// FromBasics returns one elementary rotation per angle, in the order of the angles.
func FromBasics(axis int, angles []float64) ([]*RotationMatrix, error) {
	return mapErr(angles, func(angle float64) (*RotationMatrix, error) {
		return FromBasic(axis, angle)
	})
}

// mustBasic is FromBasic for axes known to be valid.
func mustBasic(axis int, angle float64) *RotationMatrix {
	rm, err := FromBasic(axis, angle)
	if err != nil {
		panic(err)
	}
	return rm
}
