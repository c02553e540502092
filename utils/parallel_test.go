package utils

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/atomic"
	"go.viam.com/test"
)

func TestGroupWorkParallel(t *testing.T) {
	orig := ParallelFactor
	defer func() { ParallelFactor = orig }()

	for _, factor := range []int{1, 3, 8} {
		ParallelFactor = factor
		for _, size := range []int{0, 1, 7, 100} {
			seen := make([]atomic.Int32, size)
			var groups atomic.Int32
			err := GroupWorkParallel(context.Background(), size, func(groupNum, from, to int) error {
				groups.Inc()
				for i := from; i < to; i++ {
					seen[i].Inc()
				}
				return nil
			})
			test.That(t, err, test.ShouldBeNil)
			for i := range seen {
				test.That(t, seen[i].Load(), test.ShouldEqual, int32(1))
			}
			test.That(t, int(groups.Load()), test.ShouldBeLessThanOrEqualTo, factor)
		}
	}
}

func TestGroupWorkParallelErrors(t *testing.T) {
	orig := ParallelFactor
	defer func() { ParallelFactor = orig }()
	ParallelFactor = 4

	boom := errors.New("boom")
	err := GroupWorkParallel(context.Background(), 10, func(groupNum, from, to int) error {
		if groupNum == 2 {
			return boom
		}
		return nil
	})
	test.That(t, errors.Is(err, boom), test.ShouldBeTrue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var ran atomic.Int32
	err = GroupWorkParallel(ctx, 10, func(groupNum, from, to int) error {
		ran.Inc()
		return nil
	})
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
	test.That(t, ran.Load(), test.ShouldEqual, int32(0))

	test.That(t, GroupWorkParallel(ctx, 0, nil), test.ShouldBeError, context.Canceled)
}
