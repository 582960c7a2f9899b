// Package rational provides exact fractions in canonical lowest-terms form.
//
// Every *Rational is created through New (or a helper built on it), which
// reduces the fraction, forces a positive denominator and interns the result.
// Two Rationals with equal value are therefore the same pointer, although
// Equals still falls back to cross-multiplication.
//
// Arithmetic uses int64. Overflow is not detected: exponents in dimensional
// analysis stay tiny, and arbitrary precision is deliberately out of scope.
package rational
