// Package intern provides the canonicalizing lookup tables behind the
// engine's value types.
//
// Every Rational, dimension Vector and Unit is created through a Table so that
// equal canonical values are always the same pointer. Tables are keyed by the
// comparable tuple of integers (or bits) that defines a value and are never
// evicted: entries live for the lifetime of the process.
package intern
