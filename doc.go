// Package gwvalue implements the value engine of a GW-BASIC/BASICA-
// compatible interpreter: the four scalar kinds (Integer, Single, Double,
// String), their type promotion rules, arithmetic, comparisons, and the
// string-library primitives that operate on value descriptors.
//
// A Value is an immutable tagged variant; every operation that would
// mutate a BASIC variable in place instead returns a fresh Value. The
// underlying numeric work is delegated to mbf (MBF float arithmetic) and
// mbf/intop (16-bit Integer arithmetic); string bytes live in a caller-
// supplied strspace.Space collaborator.
package gwvalue
