// Package numparse implements the GW-BASIC numeric literal grammar:
// decimal, hex (&H), and octal (&O or &) literals, including the legacy
// EL/EQ tokeniser rollback that protects ELSE and EQV from being
// swallowed as the start of an exponent.
//
// Parse returns a Result describing the literal's sigil and payload
// without constructing an mbf.Single/Double itself; the caller is
// responsible for rounding Result.Mantissa/Exp10 into the chosen MBF
// precision via mbf.SingleFromDecimal/DoubleFromDecimal. Keeping numparse
// free of an mbf import keeps the literal grammar testable on its own and
// usable by a tokeniser that never touches MBF encodings.
package numparse
