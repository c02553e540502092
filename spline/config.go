package spline

import (
	"math"

	"go.uber.org/multierr"

	"go.viam.com/attitude/utils"
)

const (
	defaultMaxIterations = 10
	defaultTolerance     = 1e-9
)

// Config controls the fixed-point iteration that resolves the nonlinear coupling between
// knot angular rates.
type Config struct {
	MaxIterations int     `json:"max_iterations"`
	Tolerance     float64 `json:"tolerance"`
}

// DefaultConfig returns the settings used when no config is supplied.
func DefaultConfig() Config {
	return Config{
		MaxIterations: defaultMaxIterations,
		Tolerance:     defaultTolerance,
	}
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var err error
	if cfg.MaxIterations <= 0 {
		err = multierr.Append(err, utils.NewConfigValidationFieldOutOfRangeError(path, "max_iterations", cfg.MaxIterations))
	}
	if !(cfg.Tolerance > 0) || math.IsInf(cfg.Tolerance, 0) {
		err = multierr.Append(err, utils.NewConfigValidationFieldOutOfRangeError(path, "tolerance", cfg.Tolerance))
	}
	return err
}
