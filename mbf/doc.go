// Package mbf implements Microsoft Binary Format floating point, the
// pre-IEEE binary encoding used by GW-BASIC/BASICA for Single (4-byte) and
// Double (8-byte) values.
//
// Unlike IEEE 754, MBF stores the exponent first (most significant byte)
// in excess-128 form and has no NaN, no infinity and no negative zero: a
// stored exponent of 0 always means the value 0, regardless of the
// mantissa bits. Arithmetic is performed on a widened integer mantissa
// (not via the host's IEEE float) so that rounding is identical on every
// platform; only the transcendental functions (Sqrt, Exp, Sin, ...) bridge
// through the host's float64 math package and round the result back.
//
// Single and Double are small value types (backed by uint32/uint64
// respectively, holding the little-endian word exactly as it appears on
// the wire) so every operation returns a fresh value rather than mutating
// a receiver in place, matching the immutable descriptor discipline of
// the BASIC value engine built on top of this package.
package mbf
