package unit

import (
	"slices"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
)

// NamedUnit maps a dimension signature to its preferred display symbol.
type NamedUnit struct {
	Signature dimension.Key
	Symbol    string
}

// sig packs integral exponents (M, L, T, Q, Θ, N, J) into a signature.
func sig(m, l, t, q, k, n, j int64) dimension.Key {
	return dimension.Key{m, 1, l, 1, t, 1, q, 1, k, 1, n, 1, j, 1}
}

// namedUnits is scanned in order; the first matching signature wins.
var namedUnits = []NamedUnit{
	{sig(-1, -3, 2, 2, 0, 0, 0), "F/m"},
	{sig(-1, -2, 1, 2, 0, 0, 0), "S"},
	{sig(-1, -2, 2, 2, 0, 0, 0), "F"},
	{sig(-1, -1, 2, 2, 0, 0, 0), "F·m"},
	{sig(-1, -1, 1, 0, 0, 0, 0), "(kg·m/s) ** -1"},
	{sig(-1, 0, 0, 0, 0, 0, 0), "kg ** -1"},
	{sig(-1, 3, -2, 0, 0, 0, 0), "N·m ** 2/kg ** 2"},

	{sig(0, -3, 0, 1, 0, 0, 0), "C/m ** 3"},
	{sig(0, -2, 0, 1, 0, 0, 0), "C/m ** 2"},
	{sig(0, -1, 0, 0, 0, 0, 0), "m ** -1"},
	{sig(0, 0, -1, 0, 0, 0, 0), "Hz"},
	{sig(0, 0, -1, 1, 0, 0, 0), "A"},
	{sig(0, 0, 0, 1, 0, 0, 0), "C"},
	{sig(0, 0, 0, 0, 1, 0, 0), "K"},
	{sig(0, 0, 0, 0, 0, 1, 0), "mol"},
	{sig(0, 0, 0, 0, 0, 0, 1), "cd"},
	{sig(0, 0, 1, 0, 0, 0, 0), "s"},
	{sig(0, 0, 2, 0, 0, 0, 0), "s ** 2"},
	{sig(0, 1, -2, 0, 0, 0, 0), "m/s ** 2"},
	{sig(0, 1, -1, 0, 0, 0, 0), "m/s"},
	{sig(0, 1, 0, 0, 0, 0, 0), "m"},
	{sig(0, 2, -2, 0, 0, 0, 0), "m ** 2/s ** 2"},
	{sig(0, 2, -1, 0, 0, 0, 0), "m ** 2/s"},
	{sig(0, 2, 0, 0, 0, 0, 0), "m ** 2"},
	{sig(0, 3, 0, 0, 0, 0, 0), "m ** 3"},

	{sig(1, -1, -2, 0, 0, 0, 0), "Pa"},
	{sig(1, 0, -2, 0, 0, 0, 0), "N/m"},
	{sig(1, 0, -1, -1, 0, 0, 0), "T"},
	{sig(1, 0, -1, 0, 0, 0, 0), "kg/s"},
	{sig(1, 0, 0, 0, 0, 0, 0), "kg"},
	{sig(1, 1, -2, -1, 0, 0, 0), "N/C or V/m"},
	{sig(1, 1, -2, 0, 0, 0, 0), "N"},
	{sig(1, 1, -1, 0, 0, 0, 0), "kg·m/s"},
	{sig(1, 2, -3, 0, 0, 0, 0), "W"},
	{sig(1, 2, -2, -1, 0, 0, 0), "V"},
	{sig(1, 2, -2, 0, -1, -1, 0), "J/(mol·K)"},
	{sig(1, 2, -2, 0, -1, 0, 0), "J/K"},
	{sig(1, 2, -2, 0, 0, 0, 0), "J or N·m"},
	{sig(1, 2, -1, -2, 0, 0, 0), "Ω"},
	{sig(1, 2, -1, -1, 0, 0, 0), "Wb"},
	{sig(1, 2, -1, 0, 0, 0, 0), "J·s"},
	{sig(1, 2, 0, -2, 0, 0, 0), "H"},

	{sig(2, 2, -2, 0, 0, 0, 0), "kg ** 2·m ** 2/s ** 2"},
}

var namedIndex = buildNamedIndex()

func buildNamedIndex() map[dimension.Key]string {
	index := make(map[dimension.Key]string, len(namedUnits))
	for _, nu := range namedUnits {
		if _, taken := index[nu.Signature]; !taken {
			index[nu.Signature] = nu.Symbol
		}
	}
	return index
}

// NamedUnits returns the named-unit table in priority order.
func NamedUnits() []NamedUnit {
	return slices.Clone(namedUnits)
}

// Symbol returns the display symbol for dims, if the table has one.
func Symbol(dims *dimension.Vector) (string, bool) {
	s, ok := namedIndex[dims.Key()]
	return s, ok
}
