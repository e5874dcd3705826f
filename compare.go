package gwvalue

import (
	"bytes"

	"github.com/dbasic/gwvalue/valueserr"
)

// cmp returns -1, 0, or 1 per the usual convention. Strings compare
// byte-for-byte (GW-BASIC's string ordering is its host's native byte
// ordering, never locale-aware); numeric operands promote to a common
// type first, exactly as Add/Subtract do.
func (vs *Values) cmp(a, b Value) (int, error) {
	if a.IsString() != b.IsString() {
		return 0, valueserr.New(valueserr.TypeMismatch, "")
	}
	if a.IsString() {
		ab, err := vs.space.Copy(a.str)
		if err != nil {
			return 0, err
		}
		bb, err := vs.space.Copy(b.str)
		if err != nil {
			return 0, err
		}
		return bytes.Compare(ab, bb), nil
	}
	sigil, na, nb, err := vs.promoteFloat(a, b)
	if err != nil {
		return 0, err
	}
	switch sigil {
	case '#':
		return na.d.Cmp(nb.d), nil
	default:
		return na.s.Cmp(nb.s), nil
	}
}

// Equals implements the = operator.
func (vs *Values) Equals(a, b Value) (Value, error) {
	c, err := vs.cmp(a, b)
	if err != nil {
		return Value{}, err
	}
	return FromBool(c == 0), nil
}

// NotEquals implements the <> operator.
func (vs *Values) NotEquals(a, b Value) (Value, error) {
	c, err := vs.cmp(a, b)
	if err != nil {
		return Value{}, err
	}
	return FromBool(c != 0), nil
}

// Lt implements the < operator.
func (vs *Values) Lt(a, b Value) (Value, error) {
	c, err := vs.cmp(a, b)
	if err != nil {
		return Value{}, err
	}
	return FromBool(c < 0), nil
}

// Lte implements the <= operator.
func (vs *Values) Lte(a, b Value) (Value, error) {
	c, err := vs.cmp(a, b)
	if err != nil {
		return Value{}, err
	}
	return FromBool(c <= 0), nil
}

// Gt implements the > operator.
func (vs *Values) Gt(a, b Value) (Value, error) {
	c, err := vs.cmp(a, b)
	if err != nil {
		return Value{}, err
	}
	return FromBool(c > 0), nil
}

// Gte implements the >= operator.
func (vs *Values) Gte(a, b Value) (Value, error) {
	c, err := vs.cmp(a, b)
	if err != nil {
		return Value{}, err
	}
	return FromBool(c >= 0), nil
}
