package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/rational"
)

func TestNamedUnitFormatting(t *testing.T) {
	force := Kilogram.Mul(Meter).Div(Second).Div(Second)
	assert.Equal(t, "N", force.ToString(10, true))
	assert.Equal(t, "1 * N", force.ToString(10, false))
	assert.Equal(t, "J or N·m", force.Mul(Meter).ToString(10, true))
	assert.Equal(t, "m/s", Meter.Div(Second).ToString(10, true))
}

func TestToStringTable(t *testing.T) {
	tests := []struct {
		name    string
		unit    *Unit
		radix   int
		compact bool
		want    string
	}{
		{"dimensionless compact", One, 10, true, "1"},
		{"dimensionless scaled", Of(2.5, dimension.One), 10, true, "2.5"},
		{"scaled named", Of(1000, dimension.Length), 10, true, "1000 * m"},
		{"volt", Volt, 10, true, "V"},
		{"ohm", Joule.Div(Ampere).Div(Ampere).Div(Second), 10, true, "Ω"},
		{"pressure", Newton.Div(SquareMeter), 10, true, "Pa"},
		{"generic", Kilogram.Mul(Kilogram).Mul(Meter), 10, true, "kg ** 2·m"},
		{"generic scaled", Of(3, dimension.Mass.Mul(dimension.Mass).Mul(dimension.Length)), 10, true, "3 kg ** 2·m"},
		{"generic non-compact", Kilogram.Mul(Kilogram).Mul(Meter), 10, false, "1 kg ** 2·m"},
		{"fractional exponent", Meter.Sqrt(), 10, true, "m ** 1/2"},
		{"negative exponent", Kelvin.Inv(), 10, true, "K ** -1"},
		{"binary", Of(5, dimension.Length), 2, true, "101 * m"},
		{"binary fraction", Of(0.5, dimension.Length), 2, true, "0.1 * m"},
		{"hex negative", Of(-2.5, dimension.Length), 16, true, "-2.8 * m"},
		{"large", Of(1e21, dimension.Length), 10, true, "1e+21 * m"},
		{"small", Of(1e-7, dimension.Length), 10, true, "1e-7 * m"},
		{"micro", Of(0.000001, dimension.Length), 10, true, "0.000001 * m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.unit.ToString(tt.radix, tt.compact))
		})
	}
}

func TestCustomLabels(t *testing.T) {
	dims := dimension.Mass.Mul(dimension.Mass)
	u := Must(7, dims, []string{"M", "L", "T", "Q", "K", "N", "J"})
	assert.Equal(t, "7 M ** 2", u.ToString(10, true))
	assert.Equal(t, "7 M ** 2·L", u.Mul(Meter).ToString(10, true))
}

func TestStringIsCompactDecimal(t *testing.T) {
	assert.Equal(t, "N", Newton.String())
	assert.Equal(t, "0.01 * m", Of(0.01, dimension.Length).String())
}

func TestToStringPanicsOnBadRadix(t *testing.T) {
	assert.Panics(t, func() { Meter.ToString(1, true) })
	assert.Panics(t, func() { Meter.ToString(37, true) })
}

func TestToFixed(t *testing.T) {
	u := Of(1234.5678, dimension.Length)
	assert.Equal(t, "1234.57 * m", u.ToFixed(2, true))
	assert.Equal(t, "1235 * m", u.ToFixed(0, true))
	assert.Equal(t, "1.000 * N", Newton.ToFixed(3, false))
	assert.Equal(t, "N", Newton.ToFixed(3, true))
}

func TestToPrecision(t *testing.T) {
	u := Of(1234.5678, dimension.Length)
	assert.Equal(t, "1.23e+3 * m", u.ToPrecision(3, true))
	assert.Equal(t, "1234.57 * m", u.ToPrecision(6, true))
	assert.Equal(t, "0.0000012 * s", Of(0.000001234, dimension.Time).ToPrecision(2, true))
	assert.Equal(t, "1.2e-7 * s", Of(0.0000001234, dimension.Time).ToPrecision(2, true))
}

func TestToExponential(t *testing.T) {
	u := Of(1234.5678, dimension.Length)
	assert.Equal(t, "1.23e+3 * m", u.ToExponential(2, true))
	assert.Equal(t, "1.2345678e+3 * m", u.ToExponential(-1, true))
	assert.Equal(t, "1e+0 * N", Newton.ToExponential(0, false))
}

func TestFormatSpecialValues(t *testing.T) {
	assert.Equal(t, "Infinity * m", Meter.Scale(1).Div(Of(0, dimension.One)).ToString(10, true))
	assert.Equal(t, "NaN", formatFixed(nanValue(), 2))
	assert.Equal(t, "-Infinity", formatPrecision(-infValue(), 3))
}

func TestTrimExponent(t *testing.T) {
	assert.Equal(t, "1.5e+7", trimExponent("1.5e+07"))
	assert.Equal(t, "1e-10", trimExponent("1e-10"))
	assert.Equal(t, "1e+0", trimExponent("1e+00"))
	assert.Equal(t, "12", trimExponent("12"))
}

func TestSymbol(t *testing.T) {
	sym, ok := Symbol(dimension.Force)
	assert.True(t, ok)
	assert.Equal(t, "N", sym)

	_, ok = Symbol(dimension.Mass.Pow(rational.Int(3)))
	assert.False(t, ok)
}

func TestNamedUnitsTable(t *testing.T) {
	table := NamedUnits()
	assert.GreaterOrEqual(t, len(table), 35)

	seen := make(map[dimension.Key]bool)
	for _, nu := range table {
		assert.False(t, seen[nu.Signature], "duplicate signature for %s", nu.Symbol)
		seen[nu.Signature] = true
	}

	table[0].Symbol = "mutated"
	assert.NotEqual(t, "mutated", NamedUnits()[0].Symbol)
}

func nanValue() float64 {
	zero := 0.0
	return zero / zero
}

func infValue() float64 {
	zero := 0.0
	return 1 / zero
}
