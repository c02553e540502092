package spatialmath

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestFromBasic(t *testing.T) {
	a1, err := FromBasic(1, 30)
	test.That(t, err, test.ShouldBeNil)
	expectMatrix(t, a1, []float64{
		1, 0, 0,
		0, sqrt3 / 2, -0.5,
		0, 0.5, sqrt3 / 2,
	}, 1e-12)

	a2, err := FromBasic(2, 30)
	test.That(t, err, test.ShouldBeNil)
	expectMatrix(t, a2, []float64{
		sqrt3 / 2, 0, 0.5,
		0, 1, 0,
		-0.5, 0, sqrt3 / 2,
	}, 1e-12)

	a3, err := FromBasic(3, 30)
	test.That(t, err, test.ShouldBeNil)
	expectMatrix(t, a3, []float64{
		sqrt3 / 2, -0.5, 0,
		0.5, sqrt3 / 2, 0,
		0, 0, 1,
	}, 1e-12)

	batch, err := FromBasics(3, []float64{30, 60})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(batch), test.ShouldEqual, 2)
	expectMatrix(t, batch[0], a3.Data(), 1e-12)
	expectMatrix(t, batch[1], []float64{
		0.5, -sqrt3 / 2, 0,
		sqrt3 / 2, 0.5, 0,
		0, 0, 1,
	}, 1e-12)
}

func TestFromBasicInvalidAxis(t *testing.T) {
	for _, axis := range []int{0, 4, -1} {
		rm, err := FromBasic(axis, 30)
		test.That(t, rm, test.ShouldBeNil)
		test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
	}

	rms, err := FromBasics(0, []float64{1, 2})
	test.That(t, rms, test.ShouldBeNil)
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "sample 0")
}
