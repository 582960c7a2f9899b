package unit

import (
	"math"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/rational"
)

// Add returns u + rhs. The dimensions must be compatible under p; the result
// keeps u's labels.
func (u *Unit) Add(rhs *Unit, p dimension.Policy) (*Unit, error) {
	dims, err := u.dims.Compatible(rhs.dims, p)
	if err != nil {
		return nil, err
	}
	return of(u.multiplier+rhs.multiplier, dims, u.labels), nil
}

// Sub returns u - rhs. The dimensions must be compatible under p.
func (u *Unit) Sub(rhs *Unit, p dimension.Policy) (*Unit, error) {
	dims, err := u.dims.Compatible(rhs.dims, p)
	if err != nil {
		return nil, err
	}
	return of(u.multiplier-rhs.multiplier, dims, u.labels), nil
}

// Mul returns u * rhs. Any two units can be multiplied.
func (u *Unit) Mul(rhs *Unit) *Unit {
	return of(u.multiplier*rhs.multiplier, u.dims.Mul(rhs.dims), u.labels)
}

// Div returns u / rhs. Any two units can be divided.
func (u *Unit) Div(rhs *Unit) *Unit {
	return of(u.multiplier/rhs.multiplier, u.dims.Div(rhs.dims), u.labels)
}

// Pow raises u to a rational power.
func (u *Unit) Pow(exp *rational.Rational) *Unit {
	return of(math.Pow(u.multiplier, exp.Float64()), u.dims.Pow(exp), u.labels)
}

// Sqrt returns the square root of u.
func (u *Unit) Sqrt() *Unit {
	return of(math.Sqrt(u.multiplier), u.dims.Sqrt(), u.labels)
}

// Inv returns 1/u.
func (u *Unit) Inv() *Unit {
	return of(1/u.multiplier, u.dims.Inv(), u.labels)
}

// Scale returns alpha * u.
func (u *Unit) Scale(alpha float64) *Unit {
	return of(alpha*u.multiplier, u.dims, u.labels)
}

// IsOne reports whether u is the dimensionless unit with multiplier 1.
func (u *Unit) IsOne() bool {
	return u.multiplier == 1 && u.dims.IsOne()
}

// Compatible checks u against rhs under p. It returns the unit whose
// dimensions the check resolved to: u on a match, and under None possibly
// rhs when u is dimensionless.
func (u *Unit) Compatible(rhs *Unit, p dimension.Policy) (*Unit, error) {
	dims, err := u.dims.Compatible(rhs.dims, p)
	if err != nil {
		return nil, err
	}
	if dims != u.dims {
		return rhs, nil
	}
	return u, nil
}

// IsCompatible reports whether Compatible would succeed under p.
func (u *Unit) IsCompatible(rhs *Unit, p dimension.Policy) bool {
	_, err := u.Compatible(rhs, p)
	return err == nil
}

// Equals reports whether u and rhs have the same multiplier and dimensions.
func (u *Unit) Equals(rhs *Unit) bool {
	if u == rhs {
		return true
	}
	return u.multiplier == rhs.multiplier && u.dims.Equals(rhs.dims)
}
