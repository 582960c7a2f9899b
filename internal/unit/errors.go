package unit

import (
	"errors"
	"fmt"
)

// ErrInvalidLabelArity matches any *LabelArityError.
var ErrInvalidLabelArity = errors.New("invalid label arity")

// LabelArityError reports a labels slice whose length is not 7.
type LabelArityError struct {
	Got int
}

// Error implements the error interface.
func (e *LabelArityError) Error() string {
	return fmt.Sprintf("labels must have length 7, got %d", e.Got)
}

// Unwrap lets errors.Is match ErrInvalidLabelArity.
func (e *LabelArityError) Unwrap() error {
	return ErrInvalidLabelArity
}
