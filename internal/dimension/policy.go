package dimension

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/geometryzen/multivectors-sub001/internal/logging"
)

// Policy decides what Compatible does with mismatched dimensions.
type Policy int32

const (
	// Strict fails with an *IncompatibleError.
	Strict Policy = iota

	// None tolerates the mismatch and returns a possibly wrong result.
	None
)

// String returns the mode name accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case None:
		return "none"
	}
	return "unknown"
}

// ParsePolicy maps "strict" or "none" to a Policy.
func ParsePolicy(mode string) (Policy, error) {
	switch mode {
	case "strict":
		return Strict, nil
	case "none":
		return None, nil
	}
	return Strict, &PolicyError{Value: mode}
}

var current atomic.Int32 // zero value is Strict

// SetCheckingPolicy sets the process-wide default policy.
// Returns a *PolicyError for anything but "strict" or "none".
func SetCheckingPolicy(mode string) error {
	p, err := ParsePolicy(mode)
	if err != nil {
		return err
	}
	current.Store(int32(p))
	return nil
}

// CheckingPolicy returns the process-wide default policy.
func CheckingPolicy() Policy {
	return Policy(current.Load())
}

// Compatible checks that d and rhs describe the same dimensions.
//
// On a match it returns d. On a mismatch under Strict it returns an
// *IncompatibleError. Under None the mismatch is tolerated: it returns the
// operand that is not dimensionless, or d when neither is.
func (d *Vector) Compatible(rhs *Vector, p Policy) (*Vector, error) {
	if d.tag != Uncategorized && d.tag == rhs.tag {
		return d, nil
	}
	if d.Equals(rhs) {
		return d, nil
	}

	if p == None {
		logging.L().Debug("tolerating incompatible dimensions",
			zap.Stringer("lhs", d),
			zap.Stringer("rhs", rhs),
		)
		if d.IsOne() {
			return rhs, nil
		}
		return d, nil
	}
	return nil, newIncompatibleError(d, rhs)
}
