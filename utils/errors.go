// Package utils contains small helpers shared by the attitude packages.
package utils

import (
	"github.com/pkg/errors"
)

// NewConfigValidationError returns a config validation error
// occurring at a given path.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

// NewConfigValidationFieldOutOfRangeError returns a config validation
// error for a field whose value falls outside its allowed range.
func NewConfigValidationFieldOutOfRangeError(path, field string, value interface{}) error {
	return NewConfigValidationError(path, errors.Errorf("%q is out of range: %v", field, value))
}
