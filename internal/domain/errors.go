package domain

import (
	"errors"
	"fmt"
)

// ErrInsufficientStops is returned when a multi-stop route has fewer than two locations.
var ErrInsufficientStops = errors.New("at least 2 stops are required")

// InvalidVehicleProfileError reports a vehicle field that cannot be used for planning.
type InvalidVehicleProfileError struct {
	Field string
	Value float64
}

func (e *InvalidVehicleProfileError) Error() string {
	return fmt.Sprintf("invalid vehicle profile: %s must be positive, got %v", e.Field, e.Value)
}

// InvalidConstraintError reports a caller-supplied numeric input outside its domain.
type InvalidConstraintError struct {
	Field  string
	Reason string
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint %s: %s", e.Field, e.Reason)
}

// IsInputError reports whether err is caused by invalid caller input
// rather than an internal failure.
func IsInputError(err error) bool {
	if errors.Is(err, ErrInsufficientStops) {
		return true
	}
	var ve *InvalidVehicleProfileError
	if errors.As(err, &ve) {
		return true
	}
	var ce *InvalidConstraintError
	return errors.As(err, &ce)
}
