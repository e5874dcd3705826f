// Package intop implements BASIC's 16-bit two's-complement Integer
// arithmetic and bitwise operators (NOT/AND/OR/XOR/EQV/IMP), plus integer
// division and modulo. Integer overflow here is a hard error; it never
// routes through the soft-error handler in package softerr.
package intop
