package gwvalue

import "github.com/dbasic/gwvalue/mbf/intop"

// bitwise implements the shared shape of AND/OR/XOR/EQV/IMP: both
// operands round to Integer (per ToInteger's usual round-to-nearest),
// then op runs over the 16-bit bit patterns.
func (vs *Values) bitwise(a, b Value, op func(x, y intop.Int) intop.Int) (Value, error) {
	ia, err := vs.ToInteger(a, false)
	if err != nil {
		return Value{}, err
	}
	ib, err := vs.ToInteger(b, false)
	if err != nil {
		return Value{}, err
	}
	return NewInteger(op(ia, ib)), nil
}

// And implements the AND operator.
func (vs *Values) And(a, b Value) (Value, error) { return vs.bitwise(a, b, intop.And) }

// Or implements the OR operator.
func (vs *Values) Or(a, b Value) (Value, error) { return vs.bitwise(a, b, intop.Or) }

// Xor implements the XOR operator.
func (vs *Values) Xor(a, b Value) (Value, error) { return vs.bitwise(a, b, intop.Xor) }

// Eqv implements the EQV operator.
func (vs *Values) Eqv(a, b Value) (Value, error) { return vs.bitwise(a, b, intop.Eqv) }

// Imp implements the IMP operator.
func (vs *Values) Imp(a, b Value) (Value, error) { return vs.bitwise(a, b, intop.Imp) }

// Not implements the unary NOT operator.
func (vs *Values) Not(v Value) (Value, error) {
	i, err := vs.ToInteger(v, false)
	if err != nil {
		return Value{}, err
	}
	return NewInteger(intop.Not(i)), nil
}
