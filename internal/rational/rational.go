package rational

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geometryzen/multivectors-sub001/internal/intern"
)

// Rational is an immutable fraction numer/denom.
//
// Invariants (enforced by New):
//   - denom > 0
//   - gcd(|numer|, denom) == 1
//   - numer == 0 implies denom == 1
type Rational struct {
	numer int64
	denom int64
}

var table = intern.New[[2]int64, *Rational]()

// Frequently used values.
var (
	Zero     = Must(0, 1)
	One      = Must(1, 1)
	Two      = Must(2, 1)
	MinusOne = Must(-1, 1)
	Half     = Must(1, 2)
)

// New returns the canonical Rational equal to numer/denom.
// Returns an error wrapping ErrDivisionByZero if denom is zero.
func New(numer, denom int64) (*Rational, error) {
	if denom == 0 {
		return nil, divisionByZero(numer, denom)
	}
	if numer == 0 {
		denom = 1
	}

	g := gcd(abs(numer), abs(denom))
	if denom < 0 {
		numer, denom = -numer, -denom
	}
	n, d := numer/g, denom/g

	return table.Get([2]int64{n, d}, func() *Rational {
		return &Rational{numer: n, denom: d}
	}), nil
}

// Must is like New but panics on error.
// Use only in tests or when the denominator is known to be nonzero.
func Must(numer, denom int64) *Rational {
	r, err := New(numer, denom)
	if err != nil {
		panic(err)
	}
	return r
}

// Int returns the canonical Rational n/1.
func Int(n int64) *Rational {
	return Must(n, 1)
}

// Parse reads "n" or "n/d" (surrounding whitespace allowed).
func Parse(s string) (*Rational, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, hasSlash := strings.Cut(s, "/")

	numer, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse rational %q: %w", s, err)
	}
	denom := int64(1)
	if hasSlash {
		denom, err = strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse rational %q: %w", s, err)
		}
	}
	return New(numer, denom)
}

// Numer returns the numerator (sign-carrying).
func (r *Rational) Numer() int64 { return r.numer }

// Denom returns the denominator, always positive.
func (r *Rational) Denom() int64 { return r.denom }

// Add returns r + rhs.
func (r *Rational) Add(rhs *Rational) *Rational {
	return Must(r.numer*rhs.denom+rhs.numer*r.denom, r.denom*rhs.denom)
}

// Sub returns r - rhs.
func (r *Rational) Sub(rhs *Rational) *Rational {
	return Must(r.numer*rhs.denom-rhs.numer*r.denom, r.denom*rhs.denom)
}

// Mul returns r * rhs.
func (r *Rational) Mul(rhs *Rational) *Rational {
	return Must(r.numer*rhs.numer, r.denom*rhs.denom)
}

// Div returns r / rhs.
//
// A zero cross-multiplied numerator yields Zero without inspecting the
// denominator, so Zero.Div(Zero) is Zero. Any other division by zero is
// reported by New.
func (r *Rational) Div(rhs *Rational) (*Rational, error) {
	numer := r.numer * rhs.denom
	if numer == 0 {
		return Zero, nil
	}
	return New(numer, r.denom*rhs.numer)
}

// Neg returns -r.
func (r *Rational) Neg() *Rational {
	return Must(-r.numer, r.denom)
}

// Inv returns 1/r. Fails with ErrDivisionByZero when r is zero.
func (r *Rational) Inv() (*Rational, error) {
	return New(r.denom, r.numer)
}

// IsZero reports whether r == 0.
func (r *Rational) IsZero() bool { return r.numer == 0 }

// IsOne reports whether r == 1.
func (r *Rational) IsOne() bool { return r.numer == 1 && r.denom == 1 }

// Sign returns -1, 0 or +1.
func (r *Rational) Sign() int {
	switch {
	case r.numer < 0:
		return -1
	case r.numer > 0:
		return 1
	}
	return 0
}

// Float64 returns the nearest float64 to r.
func (r *Rational) Float64() float64 {
	return float64(r.numer) / float64(r.denom)
}

// Equals reports whether r and rhs have the same value.
func (r *Rational) Equals(rhs *Rational) bool {
	if r == rhs {
		return true
	}
	return r.numer*rhs.denom == rhs.numer*r.denom
}

// String renders r as "numer/denom", e.g. "-1/3" or "2/1".
func (r *Rational) String() string {
	return fmt.Sprintf("%d/%d", r.numer, r.denom)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
