// Package dimension provides dimension vectors over the seven SI base
// dimensions (mass, length, time, charge, temperature, amount, luminous
// intensity) with exact rational exponents.
//
// Vectors are interned: Of returns the same pointer for equal exponents.
// Vectors whose exponents match one of the well-known signatures in the tag
// table are additionally tagged and resolved to a package-level singleton
// (Mass, Force, Energy, ...), which makes Compatible a tag comparison in the
// common case.
//
// Compatibility checking is governed by a Policy passed explicitly to
// Compatible. CheckingPolicy/SetCheckingPolicy hold the process-wide default
// for callers that have no policy of their own.
package dimension
