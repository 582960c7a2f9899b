package rational

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a Rational would end up with a zero
// denominator, either at construction or through Div/Inv.
var ErrDivisionByZero = errors.New("division by zero")

func divisionByZero(numer, denom int64) error {
	return fmt.Errorf("rational %d/%d: %w", numer, denom, ErrDivisionByZero)
}
