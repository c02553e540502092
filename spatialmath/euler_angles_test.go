package spatialmath

import (
	"errors"
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/attitude/utils"
	"go.viam.com/attitude/utils/matrix"
)

var (
	s2 = math.Sqrt2
	s6 = math.Sqrt(6)

	hprCases = []struct {
		name    string
		heading float64
		pitch   float64
		roll    float64
		want    []float64
		tol     float64
	}{
		{
			name:    "heading only",
			heading: 30,
			want: []float64{
				sqrt3 / 2, 0.5, 0,
				-0.5, sqrt3 / 2, 0,
				0, 0, 1,
			},
			tol: 1e-12,
		},
		{
			name:    "small angles",
			heading: utils.RadToDeg(1e-10),
			pitch:   utils.RadToDeg(3e-10),
			roll:    utils.RadToDeg(-1e-10),
			want: []float64{
				1, 1e-10, -1e-10,
				-1e-10, 1, -3e-10,
				1e-10, 3e-10, 1,
			},
			tol: 1e-17,
		},
		{
			name:    "general",
			heading: 45,
			pitch:   -30,
			roll:    60,
			want: []float64{
				-s6/8 + s2/4, s6 / 4, s2/8 + s6/4,
				-s2/4 - s6/8, s6 / 4, -s6/4 + s2/8,
				-0.75, -0.5, sqrt3 / 4,
			},
			tol: 1e-12,
		},
	}
)

func TestFromHPR(t *testing.T) {
	var h, p, r []float64
	for _, tc := range hprCases {
		t.Run(tc.name, func(t *testing.T) {
			expectMatrix(t, FromHPR(tc.heading, tc.pitch, tc.roll), tc.want, tc.tol)
		})
		h = append(h, tc.heading)
		p = append(p, tc.pitch)
		r = append(r, tc.roll)
	}

	rms, err := FromHPRs(h, p, r)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(rms), test.ShouldEqual, len(hprCases))
	for i, tc := range hprCases {
		expectMatrix(t, rms[i], tc.want, 1e-12)
	}
}

func TestFromHPRsBroadcast(t *testing.T) {
	rms, err := FromHPRs([]float64{0, 45, 90}, []float64{0}, []float64{0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(rms), test.ShouldEqual, 3)
	test.That(t, rms[2].AlmostEqual(mustBasic(3, -90), 1e-15), test.ShouldBeTrue)

	_, err = FromHPRs([]float64{0, 45, 90}, []float64{0, 1}, []float64{0})
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
}

func TestToHPR(t *testing.T) {
	a2, err := NewRotationMatrix([]float64{
		1, 1e-10, -2e-10,
		-1e-10, 1, 3e-10,
		2e-10, -3e-10, 1,
	})
	test.That(t, err, test.ShouldBeNil)
	h := 1 / math.Sqrt2
	a3, err := NewRotationMatrix([]float64{
		h, 0, h,
		0, 1, 0,
		-h, 0, h,
	})
	test.That(t, err, test.ShouldBeNil)
	a4, err := NewRotationMatrix([]float64{
		-1, 0, 0,
		0, 0, -1,
		0, -1, 0,
	})
	test.That(t, err, test.ShouldBeNil)

	rms := []*RotationMatrix{NewIdentityRotationMatrix(), a2, a3, a4}
	want := [][3]float64{
		{0, 0, 0},
		{utils.RadToDeg(1e-10), utils.RadToDeg(-3e-10), utils.RadToDeg(-2e-10)},
		{0, 0, 45},
		{180, -90, 0},
	}
	for i, rm := range rms {
		heading, pitch, roll := ToHPR(rm)
		test.That(t, heading, test.ShouldAlmostEqual, want[i][0], 1e-10)
		test.That(t, pitch, test.ShouldAlmostEqual, want[i][1], 1e-10)
		test.That(t, roll, test.ShouldAlmostEqual, want[i][2], 1e-10)
	}

	heading, pitch, roll := ToHPRs(rms)
	for i := range rms {
		test.That(t, heading[i], test.ShouldAlmostEqual, want[i][0], 1e-10)
		test.That(t, pitch[i], test.ShouldAlmostEqual, want[i][1], 1e-10)
		test.That(t, roll[i], test.ShouldAlmostEqual, want[i][2], 1e-10)
	}
}

func TestToHPRHeadingRange(t *testing.T) {
	for _, heading := range []float64{-1e-15, -1e-13, 360 - 1e-13} {
		h, p, r := ToHPR(FromHPR(heading, 0, 0))
		test.That(t, h, test.ShouldBeGreaterThanOrEqualTo, 0.)
		test.That(t, h, test.ShouldBeLessThan, 360.)
		test.That(t, utils.WrapAngDeg(h-heading), test.ShouldAlmostEqual, 0., 1e-10)
		test.That(t, p, test.ShouldAlmostEqual, 0., 1e-14)
		test.That(t, r, test.ShouldAlmostEqual, 0., 1e-14)
	}
}

func TestHPRRoundTrip(t *testing.T) {
	h, p, r := matrix.SampleHPR(20, matrix.NewSource(0))
	rms, err := FromHPRs(h, p, r)
	test.That(t, err, test.ShouldBeNil)

	hr, pr, rr := ToHPRs(rms)
	for i := range rms {
		test.That(t, hr[i], test.ShouldAlmostEqual, h[i], 1e-10*math.Max(1, h[i]))
		test.That(t, pr[i], test.ShouldAlmostEqual, p[i], 1e-10*math.Max(1, math.Abs(p[i])))
		test.That(t, rr[i], test.ShouldAlmostEqual, r[i], 1e-10*math.Max(1, math.Abs(r[i])))
	}
}

func TestHPRGimbalLock(t *testing.T) {
	for _, pitch := range []float64{90, -90} {
		rm := FromHPR(30, pitch, 20)
		h, p, r := ToHPR(rm)
		test.That(t, p, test.ShouldAlmostEqual, pitch, 1e-10)
		test.That(t, r, test.ShouldEqual, 0.)
		test.That(t, FromHPR(h, p, r).AlmostEqual(rm, 1e-12), test.ShouldBeTrue)
	}
}
