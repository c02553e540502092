package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRad(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldEqual, 90.)
	test.That(t, RadToDeg(DegToRad(33.3)), test.ShouldAlmostEqual, 33.3, 1e-12)
}

func TestWrapping(t *testing.T) {
	for _, tc := range []struct {
		in, mod, wrap float64
	}{
		{0, 0, 0},
		{-180, 180, 180},
		{180, 180, 180},
		{-90, 270, -90},
		{370, 10, 10},
		{-725, 355, -5},
		{540, 180, 180},
		{-1e-15, 0, -1e-15},
	} {
		test.That(t, ModAngDeg(tc.in), test.ShouldBeGreaterThanOrEqualTo, 0.)
		test.That(t, ModAngDeg(tc.in), test.ShouldBeLessThan, 360.)
		test.That(t, ModAngDeg(tc.in), test.ShouldAlmostEqual, tc.mod)
		test.That(t, WrapAngDeg(tc.in), test.ShouldAlmostEqual, tc.wrap)
	}
}
