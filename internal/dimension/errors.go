package dimension

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleDimensions matches any *IncompatibleError.
	ErrIncompatibleDimensions = errors.New("incompatible dimensions")

	// ErrInvalidPolicy matches any *PolicyError.
	ErrInvalidPolicy = errors.New("invalid checking policy")
)

// IncompatibleError reports a failed compatibility check under Strict.
// Left and Right hold each operand's rendering, or "dimensionless".
type IncompatibleError struct {
	Left  string
	Right string
}

func newIncompatibleError(lhs, rhs *Vector) *IncompatibleError {
	return &IncompatibleError{Left: describe(lhs), Right: describe(rhs)}
}

func describe(d *Vector) string {
	if d.IsOne() {
		return "dimensionless"
	}
	return d.String()
}

// Error implements the error interface.
func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("Dimensions must be equal (%s, %s)", e.Left, e.Right)
}

// Unwrap lets errors.Is match ErrIncompatibleDimensions.
func (e *IncompatibleError) Unwrap() error {
	return ErrIncompatibleDimensions
}

// IsIncompatible returns true if err is (or wraps) an *IncompatibleError.
func IsIncompatible(err error) bool {
	var ie *IncompatibleError
	return errors.As(err, &ie)
}

// PolicyError reports an unrecognized checking policy mode.
type PolicyError struct {
	Value string
}

// Error implements the error interface.
func (e *PolicyError) Error() string {
	return fmt.Sprintf("invalid checking policy %q: must be one of strict, none", e.Value)
}

// Unwrap lets errors.Is match ErrInvalidPolicy.
func (e *PolicyError) Unwrap() error {
	return ErrInvalidPolicy
}
