package controller

import (
	"errors"
	"fmt"
)

// ErrConfigurationMissing is wrapped by errors reporting an absent
// collaborator. The controller keeps running without that capability.
var ErrConfigurationMissing = errors.New("configuration missing")

func missing(what string) error {
	return fmt.Errorf("%w: %s", ErrConfigurationMissing, what)
}

// InvalidNumericConfigError reports a tuning value that was clamped or
// rejected during validation.
type InvalidNumericConfigError struct {
	Field       string
	Value       float64
	Replacement float64
	Reason      string
}

func (e *InvalidNumericConfigError) Error() string {
	return fmt.Sprintf("invalid %s = %v (%s), using %v", e.Field, e.Value, e.Reason, e.Replacement)
}
