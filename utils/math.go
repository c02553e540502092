package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngDeg wraps an angle in degrees into [0, 360).
func ModAngDeg(ang float64) float64 {
	ang = math.Mod(ang, 360)
	if ang < 0 {
		ang += 360
	}
	// a tiny negative angle rounds up to 360
	if ang >= 360 {
		ang -= 360
	}
	return ang
}

// WrapAngDeg wraps an angle in degrees into (-180, 180].
func WrapAngDeg(ang float64) float64 {
	ang = math.Mod(ang, 360)
	if ang > 180 {
		ang -= 360
	} else if ang <= -180 {
		ang += 360
	}
	return ang
}
