// Package canonical produces canonical JSON (RFC 8785 key ordering, NFC
// strings, no HTML escaping) for content-addressed identifiers.
//
// Floats and null are rejected: numeric values that need to be identified
// exactly, such as unit multipliers, are encoded as strings by the caller.
package canonical
