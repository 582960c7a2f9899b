package cli

import (
	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

// buildUnit parses exponents and combines them with a multiplier and labels.
func buildUnit(exponents string, multiplier float64, labels []string) (*unit.Unit, error) {
	dims, err := dimension.Parse(exponents)
	if err != nil {
		return nil, err
	}
	return unit.New(multiplier, dims, labels)
}
