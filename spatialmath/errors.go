package spatialmath

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when an input has a bad value or shape.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumericalSingularity is returned when a conversion is requested at a
	// configuration where the target representation is singular.
	ErrNumericalSingularity = errors.New("numerical singularity")
)

// NewInvalidArgumentError returns an error wrapping ErrInvalidArgument.
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// NewNumericalSingularityError returns an error wrapping ErrNumericalSingularity.
func NewNumericalSingularityError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNumericalSingularity, format, args...)
}

// mapErr applies f to every element of in. It stops at the first failure so that
// no partial batch is ever returned.
func mapErr[T, R any](in []T, f func(T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	for i, v := range in {
		r, err := f(v)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		out[i] = r
	}
	return out, nil
}

// broadcastLen returns the common length of a set of slices where a slice of
// length one stands for any length.
func broadcastLen(lens ...int) (int, error) {
	n := 1
	for _, l := range lens {
		switch {
		case l == 1:
		case n == 1:
			n = l
		case l != n:
			return 0, NewInvalidArgumentError("cannot broadcast inputs of lengths %v", lens)
		}
	}
	return n, nil
}

func broadcastAt(xs []float64, i int) float64 {
	if len(xs) == 1 {
		return xs[0]
	}
	return xs[i]
}
