package unit

import (
	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/rational"
)

// The helpers below treat a nil *Unit as the dimensionless identity.

// Mul returns lhs * rhs.
func Mul(lhs, rhs *Unit) *Unit {
	switch {
	case lhs == nil:
		return rhs
	case rhs == nil:
		return lhs
	}
	return lhs.Mul(rhs)
}

// Div returns lhs / rhs.
func Div(lhs, rhs *Unit) *Unit {
	switch {
	case rhs == nil:
		return lhs
	case lhs == nil:
		return rhs.Inv()
	}
	return lhs.Div(rhs)
}

// Pow returns u ** exp, nil for nil.
func Pow(u *Unit, exp *rational.Rational) *Unit {
	if u == nil {
		return nil
	}
	return u.Pow(exp)
}

// Sqrt returns the square root of u, nil for nil.
func Sqrt(u *Unit) *Unit {
	if u == nil {
		return nil
	}
	return u.Sqrt()
}

// Inv returns 1/u, nil for nil.
func Inv(u *Unit) *Unit {
	if u == nil {
		return nil
	}
	return u.Inv()
}

// IsOne reports whether u is nil or the dimensionless unit with multiplier 1.
func IsOne(u *Unit) bool {
	return u == nil || u.IsOne()
}

// Compatible checks lhs against rhs under p. A nil side is compared as
// dimensionless; the result is the non-nil side (nil when both are nil).
func Compatible(lhs, rhs *Unit, p dimension.Policy) (*Unit, error) {
	switch {
	case lhs == nil && rhs == nil:
		return nil, nil
	case lhs == nil:
		if _, err := dimension.One.Compatible(rhs.dims, p); err != nil {
			return nil, err
		}
		return rhs, nil
	case rhs == nil:
		if _, err := lhs.dims.Compatible(dimension.One, p); err != nil {
			return nil, err
		}
		return lhs, nil
	}
	return lhs.Compatible(rhs, p)
}

// IsCompatible reports whether Compatible would succeed under p.
func IsCompatible(lhs, rhs *Unit, p dimension.Policy) bool {
	_, err := Compatible(lhs, rhs, p)
	return err == nil
}
