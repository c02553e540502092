package spline

import (
	"github.com/benbjohnson/clock"

	"go.viam.com/attitude/logging"
)

// options configures a RotationSpline fit.
type options struct {
	cfg    Config
	logger logging.Logger
	clock  clock.Clock
}

func defaultOptions() *options {
	return &options{
		cfg:    DefaultConfig(),
		logger: logging.Global().Sublogger("spline"),
		clock:  clock.New(),
	}
}

// Option configures how a spline is fitted.
// Cribbed from https://github.com/grpc/grpc-go/blob/aff571cc86e6e7e740130dbbb32a9741558db805/dialoptions.go#L41
type Option interface {
	apply(*options)
}

// funcOption wraps a function that modifies options into an
// implementation of the Option interface.
type funcOption struct {
	f func(*options)
}

func (fdo *funcOption) apply(do *options) {
	fdo.f(do)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithConfig returns an Option which replaces the iteration settings of the fit.
// The config is validated by New.
func WithConfig(cfg Config) Option {
	return newFuncOption(func(o *options) {
		o.cfg = cfg
	})
}

// WithLogger returns an Option which sets the logger the fit reports to.
func WithLogger(logger logging.Logger) Option {
	return newFuncOption(func(o *options) {
		o.logger = logger
	})
}

// WithClock returns an Option which sets the clock used to time the fit.
func WithClock(clk clock.Clock) Option {
	return newFuncOption(func(o *options) {
		o.clock = clk
	})
}
