package spatialmath

import (
	"errors"
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/attitude/utils"
	"go.viam.com/attitude/utils/matrix"
)

func TestFromLLW(t *testing.T) {
	identity := NewIdentityRotationMatrix().Data()
	expectMatrix(t, FromLLW(90, -90, 0), identity, 1e-10)
	expectMatrix(t, FromLatLon(90, -90), identity, 1e-10)

	a2 := []float64{
		1, -1e-9, 0,
		1e-9, 1, 0,
		0, 0, 1,
	}
	expectMatrix(t, FromLLW(90, -90, utils.RadToDeg(1e-9)), a2, 1e-10)

	a3 := []float64{
		s2 / 4, -s2 / 2, s6 / 4,
		-s2 / 4, -s2 / 2, -s6 / 4,
		sqrt3 / 2, 0, -0.5,
	}
	expectMatrix(t, FromLLW(-30, -45, 90), a3, 1e-10)

	a4 := []float64{
		s2 / 2, s2 / 4, s6 / 4,
		s2 / 2, -s2 / 4, -s6 / 4,
		0, sqrt3 / 2, -0.5,
	}
	expectMatrix(t, FromLatLon(-30, -45), a4, 1e-10)

	rms, err := FromLLWs(
		[]float64{90, 90, -30},
		[]float64{-90, -90, -45},
		[]float64{0, utils.RadToDeg(1e-9), 90},
	)
	test.That(t, err, test.ShouldBeNil)
	for i, want := range [][]float64{identity, a2, a3} {
		expectMatrix(t, rms[i], want, 1e-10)
	}

	rms, err = FromLLWs([]float64{-30}, []float64{-45}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(rms), test.ShouldEqual, 1)
	expectMatrix(t, rms[0], a4, 1e-10)

	_, err = FromLLWs([]float64{1, 2}, []float64{1, 2, 3}, nil)
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
}

func TestToLLW(t *testing.T) {
	a2, err := NewRotationMatrix([]float64{0, 0, 1, 1, 0, 0, 0, 1, 0})
	test.That(t, err, test.ShouldBeNil)

	rms := []*RotationMatrix{NewIdentityRotationMatrix(), a2}
	want := [][3]float64{{90, 0, -90}, {0, 0, 0}}
	lat, lon, wander := ToLLWs(rms)
	for i, rm := range rms {
		la, lo, wa := ToLLW(rm)
		test.That(t, la, test.ShouldAlmostEqual, want[i][0], 1e-10)
		test.That(t, lo, test.ShouldAlmostEqual, want[i][1], 1e-10)
		test.That(t, wa, test.ShouldAlmostEqual, want[i][2], 1e-10)
		test.That(t, lat[i], test.ShouldEqual, la)
		test.That(t, lon[i], test.ShouldEqual, lo)
		test.That(t, wander[i], test.ShouldEqual, wa)
	}
}

func TestLLWRoundTrip(t *testing.T) {
	src := matrix.NewSource(0)
	lat := matrix.SampleUniform(20, -90, 90, src)
	lon := matrix.SampleUniform(20, -180, 180, src)
	wan := matrix.SampleUniform(20, -180, 180, src)

	rms, err := FromLLWs(lat, lon, wan)
	test.That(t, err, test.ShouldBeNil)
	latR, lonR, wanR := ToLLWs(rms)
	for i := range rms {
		test.That(t, latR[i], test.ShouldAlmostEqual, lat[i], 1e-10*math.Max(1, math.Abs(lat[i])))
		test.That(t, lonR[i], test.ShouldAlmostEqual, lon[i], 1e-10*math.Max(1, math.Abs(lon[i])))
		test.That(t, wanR[i], test.ShouldAlmostEqual, wan[i], 1e-10*math.Max(1, math.Abs(wan[i])))
	}
}

func TestLLWPoles(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		rm := FromLLW(lat, 40, 25)
		la, lo, wa := ToLLW(rm)
		test.That(t, la, test.ShouldAlmostEqual, lat, 1e-10)
		test.That(t, lo, test.ShouldEqual, 0.)
		test.That(t, FromLLW(la, lo, wa).AlmostEqual(rm, 1e-12), test.ShouldBeTrue)
	}
}
