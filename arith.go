package gwvalue

import (
	"github.com/dbasic/gwvalue/mbf"
	"github.com/dbasic/gwvalue/mbf/intop"
	"github.com/dbasic/gwvalue/valueserr"
)

// Add implements the binary + operator. Both operands always promote to
// at least Single first, matching GW-BASIC's arithmetic type-promotion
// rule unconditionally rather than only on 16-bit overflow; float
// overflow recovers through the soft-error handler.
func (vs *Values) Add(a, b Value) (Value, error) {
	if a.IsString() || b.IsString() {
		return vs.concat(a, b)
	}
	return vs.floatBinary(a, b,
		func(x, y mbf.Single) (mbf.Single, error) { return x.Add(y) },
		func(x, y mbf.Double) (mbf.Double, error) { return x.Add(y) },
	)
}

// Subtract implements the binary - operator.
func (vs *Values) Subtract(a, b Value) (Value, error) {
	return vs.floatBinary(a, b,
		func(x, y mbf.Single) (mbf.Single, error) { return x.Sub(y) },
		func(x, y mbf.Double) (mbf.Double, error) { return x.Sub(y) },
	)
}

// Multiply implements the binary * operator.
func (vs *Values) Multiply(a, b Value) (Value, error) {
	return vs.floatBinary(a, b,
		func(x, y mbf.Single) (mbf.Single, error) { return x.Mul(y) },
		func(x, y mbf.Double) (mbf.Double, error) { return x.Mul(y) },
	)
}

// Divide implements the floating-point / operator: even Integer operands
// produce a Single (or Double) result, since BASIC's / is never
// integer-truncating.
func (vs *Values) Divide(a, b Value) (Value, error) {
	sigil, na, nb, err := vs.promoteFloat(a, b)
	if err != nil {
		return Value{}, err
	}
	if sigil == '#' {
		r, err := vs.soft.WrapDouble(na.d.Div(nb.d))
		return NewDouble(r), err
	}
	r, err := vs.soft.WrapSingle(na.s.Div(nb.s))
	return NewSingle(r), err
}

// DivideInt implements the \ operator: both operands are rounded to
// Integer first, then divided with truncation toward zero. Division by
// zero is a hard error here, unlike float Divide's soft recovery.
func (vs *Values) DivideInt(a, b Value) (Value, error) {
	ia, err := vs.ToInteger(a, false)
	if err != nil {
		return Value{}, err
	}
	ib, err := vs.ToInteger(b, false)
	if err != nil {
		return Value{}, err
	}
	r, err := intop.DivInt(ia, ib)
	if err != nil {
		return Value{}, mapIntopErr(err)
	}
	return NewInteger(r), nil
}

// Mod implements the MOD operator: both operands rounded to Integer,
// remainder takes the dividend's sign (Go's % already matches).
func (vs *Values) Mod(a, b Value) (Value, error) {
	ia, err := vs.ToInteger(a, false)
	if err != nil {
		return Value{}, err
	}
	ib, err := vs.ToInteger(b, false)
	if err != nil {
		return Value{}, err
	}
	r, err := intop.Mod(ia, ib)
	if err != nil {
		return Value{}, mapIntopErr(err)
	}
	return NewInteger(r), nil
}

// Negate implements unary minus. Strings pass through unchanged; Integer
// operands widen to Single first, so negating -32768 yields Single 32768
// rather than overflowing.
func (vs *Values) Negate(v Value) (Value, error) {
	if v.IsString() {
		return v, nil
	}
	f, err := vs.ToFloat(v, true)
	if err != nil {
		return Value{}, err
	}
	if f.sigil == '#' {
		return NewDouble(f.d.Neg()), nil
	}
	return NewSingle(f.s.Neg()), nil
}

// Abs implements ABS. Strings pass through unchanged; Integers widen to
// Single exactly as Negate does.
func (vs *Values) Abs(v Value) (Value, error) {
	if v.IsString() {
		return v, nil
	}
	f, err := vs.ToFloat(v, true)
	if err != nil {
		return Value{}, err
	}
	if f.sigil == '#' {
		return NewDouble(f.d.Abs()), nil
	}
	return NewSingle(f.s.Abs()), nil
}

// Sgn implements SGN: -1, 0, or 1 as an Integer.
func (vs *Values) Sgn(v Value) (Value, error) {
	switch v.sigil {
	case '%':
		switch {
		case v.i < 0:
			return NewInteger(-1), nil
		case v.i > 0:
			return NewInteger(1), nil
		default:
			return NewInteger(0), nil
		}
	case '!':
		return NewInteger(intop.Int(v.s.Sign())), nil
	case '#':
		return NewInteger(intop.Int(v.d.Sign())), nil
	default:
		return Value{}, valueserr.New(valueserr.TypeMismatch, "")
	}
}

// Fix implements FIX: truncation toward zero, preserving v's numeric type.
func (vs *Values) Fix(v Value) (Value, error) {
	switch v.sigil {
	case '%':
		return v, nil
	case '!':
		return NewSingle(v.s.Trunc()), nil
	case '#':
		return NewDouble(v.d.Trunc()), nil
	default:
		return Value{}, valueserr.New(valueserr.TypeMismatch, "")
	}
}

// Int implements INT: round toward negative infinity, preserving v's
// numeric type. Unlike Fix, this is not truncation for negative values.
func (vs *Values) Int(v Value) (Value, error) {
	switch v.sigil {
	case '%':
		return v, nil
	case '!':
		return NewSingle(v.s.Floor()), nil
	case '#':
		return NewDouble(v.d.Floor()), nil
	default:
		return Value{}, valueserr.New(valueserr.TypeMismatch, "")
	}
}

// floatBinary is the shared +/-/* implementation: both operands
// always widen to a common float type (at least Single) before the
// operation runs, matching GW-BASIC's rule that Integer+Integer promotes
// unconditionally rather than only on overflow; floatOp32/floatOp64 runs
// under the soft-error handler.
func (vs *Values) floatBinary(
	a, b Value,
	floatOp32 func(x, y mbf.Single) (mbf.Single, error),
	floatOp64 func(x, y mbf.Double) (mbf.Double, error),
) (Value, error) {
	sigil, na, nb, err := vs.promoteFloat(a, b)
	if err != nil {
		return Value{}, err
	}
	if sigil == '#' {
		r, err := vs.soft.WrapDouble(floatOp64(na.d, nb.d))
		return NewDouble(r), err
	}
	r, err := vs.soft.WrapSingle(floatOp32(na.s, nb.s))
	return NewSingle(r), err
}

func mapIntopErr(err error) error {
	switch err {
	case intop.ErrOverflow:
		return valueserr.New(valueserr.Overflow, "")
	case intop.ErrDivByZero:
		return valueserr.New(valueserr.DivisionByZero, "")
	default:
		return err
	}
}
