package prayer

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeElevation is returned when the horizon dip would need the
	// square root of a negative elevation.
	ErrNegativeElevation = errors.New("elevation must not be negative")

	// ErrDegenerateGeometry is returned when cos(latitude)·cos(declination)
	// is zero and the hour angle has no defined value.
	ErrDegenerateGeometry = errors.New("hour angle undefined at this latitude and declination")
)

// DomainError reports an input the astronomy cannot be evaluated for.
type DomainError struct {
	Op    string  // stage that rejected the input
	Value float64 // offending value
	Err   error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v (got %g)", e.Op, e.Err, e.Value)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
