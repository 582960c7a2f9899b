package dimension

import (
	"fmt"
	"strings"

	"github.com/geometryzen/multivectors-sub001/internal/rational"
)

// Parse reads seven comma-separated rational exponents in M, L, T, Q, Θ,
// N, J order, e.g. "1,1,-2,0,0,0,0" or "0,1/2,0,0,0,0,0".
func Parse(s string) (*Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(baseNames) {
		return nil, fmt.Errorf("exponents %q: want %d comma-separated values (M,L,T,Q,K,N,J), got %d", s, len(baseNames), len(parts))
	}
	var exps [7]*rational.Rational
	for i, p := range parts {
		e, err := rational.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("exponents %q: %s: %w", s, baseNames[i], err)
		}
		exps[i] = e
	}
	return ofExps(exps), nil
}
