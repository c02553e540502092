package spatialmath

import (
	"math"

	"go.viam.com/attitude/utils"
)

// gimbalLockTolerance is the value of cos(pitch) (or cos(latitude) for LLW) below which the
// triad extraction switches to its limiting-case branch.
const gimbalLockTolerance = 1e-10

// FromHPR converts heading, pitch and roll in degrees to a rotation matrix.
// The matrix is R3(-heading) * R1(pitch) * R2(roll): heading is measured clockwise about the
// vertical axis, pitch about the lateral axis, roll about the longitudinal axis.
func FromHPR(heading, pitch, roll float64) *RotationMatrix {
	return mustBasic(3, -heading).Mul(mustBasic(1, pitch)).Mul(mustBasic(2, roll))
}

// FromHPRs converts arrays of heading, pitch and roll in degrees. A slice of length one is
// broadcast against the others; any other length mismatch is an error.
func FromHPRs(heading, pitch, roll []float64) ([]*RotationMatrix, error) {
	n, err := broadcastLen(len(heading), len(pitch), len(roll))
	if err != nil {
		return nil, err
	}
	out := make([]*RotationMatrix, n)
	for i := range out {
		out[i] = FromHPR(broadcastAt(heading, i), broadcastAt(pitch, i), broadcastAt(roll, i))
	}
	return out, nil
}

// ToHPR converts a rotation matrix to heading in [0, 360), pitch in [-90, 90] and roll in
// (-180, 180], all in degrees. At pitch = ±90 heading and roll are not separable; roll is then
// reported as zero and heading absorbs the whole rotation about the vertical.
func ToHPR(rm *RotationMatrix) (heading, pitch, roll float64) {
	m := &rm.mat
	cp := math.Hypot(m[1], m[4])
	pitch = math.Atan2(m[7], cp)
	if cp < gimbalLockTolerance {
		heading = math.Atan2(-m[3], m[0])
		roll = 0
	} else {
		heading = math.Atan2(m[1], m[4])
		roll = math.Atan2(-m[6], m[8])
	}
	return utils.ModAngDeg(utils.RadToDeg(heading)), utils.RadToDeg(pitch), utils.RadToDeg(roll)
}

// ToHPRs converts a batch of rotation matrices to heading, pitch and roll arrays.
func ToHPRs(rms []*RotationMatrix) (heading, pitch, roll []float64) {
	heading = make([]float64, len(rms))
	pitch = make([]float64, len(rms))
	roll = make([]float64, len(rms))
	for i, rm := range rms {
		heading[i], pitch[i], roll[i] = ToHPR(rm)
	}
	return heading, pitch, roll
}
