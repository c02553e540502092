package spatialmath

import (
	"math"

	"go.viam.com/attitude/utils"
)

// FromLLW converts latitude, longitude and wander angle in degrees to the rotation matrix of a
// local-level navigation frame relative to the earth frame:
// R3(90 + lon) * R1(90 - lat) * R3(wander).
func FromLLW(lat, lon, wander float64) *RotationMatrix {
	return mustBasic(3, 90+lon).Mul(mustBasic(1, 90-lat)).Mul(mustBasic(3, wander))
}

// FromLatLon is FromLLW with a zero wander angle.
func FromLatLon(lat, lon float64) *RotationMatrix {
	return FromLLW(lat, lon, 0)
}

// FromLLWs converts arrays of latitude, longitude and wander angle in degrees. A nil wander
// slice means zero wander. Slices of length one are broadcast.
func FromLLWs(lat, lon, wander []float64) ([]*RotationMatrix, error) {
	if wander == nil {
		wander = []float64{0}
	}
	n, err := broadcastLen(len(lat), len(lon), len(wander))
	if err != nil {
		return nil, err
	}
	out := make([]*RotationMatrix, n)
	for i := range out {
		out[i] = FromLLW(broadcastAt(lat, i), broadcastAt(lon, i), broadcastAt(wander, i))
	}
	return out, nil
}

// ToLLW converts a rotation matrix to latitude in [-90, 90], longitude and wander angle in
// (-180, 180], all in degrees. At the poles longitude is undefined and reported as zero, so the
// identity matrix maps to (90, 0, -90).
func ToLLW(rm *RotationMatrix) (lat, lon, wander float64) {
	m := &rm.mat
	cl := math.Hypot(m[6], m[7])
	lat = utils.RadToDeg(math.Atan2(m[8], cl))
	if cl < gimbalLockTolerance {
		theta := utils.RadToDeg(math.Atan2(m[3], m[0]))
		if m[8] > 0 {
			wander = theta - 90
		} else {
			wander = 90 - theta
		}
		return lat, 0, utils.WrapAngDeg(wander)
	}
	lon = utils.RadToDeg(math.Atan2(m[5], m[2]))
	wander = utils.RadToDeg(math.Atan2(m[6], m[7]))
	return lat, lon, wander
}

// ToLLWs converts a batch of rotation matrices to latitude, longitude and wander arrays.
func ToLLWs(rms []*RotationMatrix) (lat, lon, wander []float64) {
	lat = make([]float64, len(rms))
	lon = make([]float64, len(rms))
	wander = make([]float64, len(rms))
	for i, rm := range rms {
		lat[i], lon[i], wander[i] = ToLLW(rm)
	}
	return lat, lon, wander
}
