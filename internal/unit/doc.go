// Package unit provides units of measure: a real multiplier combined with an
// interned dimension.Vector and seven base-dimension labels.
//
// Units are immutable and interned by (multiplier, dimensions). A unit with
// multiplier 1 and a well-known dimension tag is always the predefined
// singleton for that tag (Kilogram, Newton, Joule, ...).
//
// A nil *Unit stands for the dimensionless identity. The package-level
// helpers (Mul, Div, Pow, Sqrt, Inv, IsOne, Compatible, IsCompatible) accept
// nil operands and never materialize a unit just to represent "no unit".
//
// Formatting first consults the named-unit table, which maps dimension
// signatures to idiomatic symbols ("N", "J or N·m", "m/s"), and otherwise
// renders the labels with their exponents.
package unit
