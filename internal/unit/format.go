package unit

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
)

// String renders u compactly in base 10, e.g. "N" or "1000 * m".
func (u *Unit) String() string {
	return u.ToString(10, true)
}

// ToString renders u with the multiplier in the given radix (2..36).
// In compact mode a multiplier of exactly 1 is omitted.
// Panics if radix is out of range, like strconv.FormatInt.
func (u *Unit) ToString(radix int, compact bool) string {
	return u.render(formatRadix(u.multiplier, radix), compact)
}

// ToFixed renders the multiplier with a fixed number of decimals.
func (u *Unit) ToFixed(digits int, compact bool) string {
	return u.render(formatFixed(u.multiplier, digits), compact)
}

// ToPrecision renders the multiplier with the given number of significant
// digits, switching to exponential notation for very large or small values.
func (u *Unit) ToPrecision(precision int, compact bool) string {
	return u.render(formatPrecision(u.multiplier, precision), compact)
}

// ToExponential renders the multiplier in exponential notation with the
// given number of fraction digits. A negative count uses as many digits as
// needed.
func (u *Unit) ToExponential(digits int, compact bool) string {
	return u.render(formatExponential(u.multiplier, digits), compact)
}

// render combines a formatted multiplier with the unit symbol. Signatures in
// the named-unit table render as "scale * symbol"; anything else renders its
// labels as "label ** exponent" terms joined by a middle dot.
func (u *Unit) render(formatted string, compact bool) string {
	scale := formatted
	if compact && u.multiplier == 1 {
		scale = ""
	}

	if sym, ok := Symbol(u.dims); ok {
		if scale == "" {
			return sym
		}
		return scale + " * " + sym
	}

	terms := make([]string, 0, len(u.labels))
	for i, e := range u.dims.Exponents() {
		if e.IsZero() {
			continue
		}
		terms = append(terms, dimension.Term(u.labels[i], e))
	}
	units := strings.Join(terms, "·")

	switch {
	case units == "":
		return formatted
	case scale == "":
		return units
	}
	return scale + " " + units
}

func formatRadix(f float64, radix int) string {
	if radix < 2 || radix > 36 {
		panic("unit: radix must be in [2, 36], got " + strconv.Itoa(radix))
	}
	if special, ok := formatSpecial(f); ok {
		return special
	}
	if radix == 10 {
		return formatShortest(f)
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	ip, frac := math.Modf(f)
	if ip >= 1<<63 {
		// Beyond int64: fall back to decimal rather than lose digits.
		return sign + formatShortest(f)
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(strconv.FormatInt(int64(ip), radix))
	if frac > 0 {
		b.WriteByte('.')
		// 52 digits exhaust a float64 mantissa even in base 2.
		for i := 0; i < 52 && frac > 0; i++ {
			frac *= float64(radix)
			d, rest := math.Modf(frac)
			b.WriteString(strconv.FormatInt(int64(d), radix))
			frac = rest
		}
	}
	return b.String()
}

// formatShortest prints the shortest round-tripping decimal, using
// exponential notation outside [1e-6, 1e21).
func formatShortest(f float64) string {
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
}

func formatFixed(f float64, digits int) string {
	if special, ok := formatSpecial(f); ok {
		return special
	}
	return decimal.NewFromFloat(f).StringFixed(int32(digits))
}

func formatPrecision(f float64, precision int) string {
	if special, ok := formatSpecial(f); ok {
		return special
	}
	if precision < 1 {
		return formatShortest(f)
	}
	e := exponentOf(strconv.FormatFloat(f, 'e', precision-1, 64))
	if e < -6 || e >= precision {
		return trimExponent(strconv.FormatFloat(f, 'e', precision-1, 64))
	}
	return strconv.FormatFloat(f, 'f', precision-1-e, 64)
}

func formatExponential(f float64, digits int) string {
	if special, ok := formatSpecial(f); ok {
		return special
	}
	if digits < 0 {
		digits = -1
	}
	return trimExponent(strconv.FormatFloat(f, 'e', digits, 64))
}

func formatSpecial(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}

// exponentOf extracts the decimal exponent from strconv's 'e' format.
func exponentOf(s string) int {
	i := strings.LastIndexByte(s, 'e')
	e, _ := strconv.Atoi(s[i+1:])
	return e
}

// trimExponent rewrites strconv's "1.5e+07" as "1.5e+7".
func trimExponent(s string) string {
	i := strings.LastIndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}
