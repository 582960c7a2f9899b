// Package harness runs dimensional-analysis scenarios.
//
// A scenario binds named units, applies a flow of unit operations under a
// checking policy, and validates the outcome step by step and through
// trace assertions. Every run records a deterministic trace that can be
// compared against a golden snapshot.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: kinetic_energy
//	description: "1/2 m v ** 2 has the dimensions of energy"
//	policy: strict
//	units:
//	  kg: { exponents: "1,0,0,0,0,0,0" }
//	  v:  { exponents: "0,1,-1,0,0,0,0" }
//	flow:
//	  - op: pow
//	    lhs: v
//	    exponent: "2"
//	    as: v2
//	  - op: mul
//	    lhs: kg
//	    rhs: v2
//	    as: energy
//	    expect:
//	      display: "J or N·m"
//	      tag: energy_or_torque
//	assertions:
//	  - type: unit_tag
//	    unit: energy
//	    value: energy_or_torque
//
// # Operations
//
// Binary: mul, div, add, sub, compatible. Unary: inv, sqrt, pow (needs
// exponent), scale (needs factor).
//
// # Assertion Types
//
//   - trace_contains: an op appears in the trace, optionally binding a name
//   - trace_count: an op appears exactly count times
//   - unit_display: a bound unit renders as value
//   - unit_tag: a bound unit's dimensions carry tag value
package harness
