package gwvalue

import (
	"github.com/dbasic/gwvalue/mbf"
	"github.com/dbasic/gwvalue/valueserr"
)

// transcendental1 is the shared shape of SQR/EXP/SIN/COS/TAN/ATN/LOG: v
// widens to a float (a Double argument keeps its precision only when
// double math is enabled), the host math function runs, and any resulting
// Inf/NaN recovers through the soft-error handler as Overflow.
func (vs *Values) transcendental1(v Value, single func(mbf.Single) (mbf.Single, error), double func(mbf.Double) (mbf.Double, error)) (Value, error) {
	f, err := vs.ToFloat(v, vs.doubleMath)
	if err != nil {
		return Value{}, err
	}
	if f.sigil == '#' {
		r, err := vs.soft.WrapDouble(double(f.d))
		return NewDouble(r), err
	}
	r, err := vs.soft.WrapSingle(single(f.s))
	return NewSingle(r), err
}

// Sqr implements SQR. A negative argument is Illegal Function Call, not
// Overflow: math.Sqrt(negative) is NaN, which bridgeSingle/bridgeDouble
// would otherwise report as a soft Overflow, so the sign is checked first.
func (vs *Values) Sqr(v Value) (Value, error) {
	neg, err := vs.isNegative(v)
	if err != nil {
		return Value{}, err
	}
	if neg {
		return Value{}, illegalFunctionCall()
	}
	return vs.transcendental1(v, mbf.Single.Sqrt, mbf.Double.Sqrt)
}

// Exp implements EXP.
func (vs *Values) Exp(v Value) (Value, error) {
	return vs.transcendental1(v, mbf.Single.Exp, mbf.Double.Exp)
}

// Sin implements SIN.
func (vs *Values) Sin(v Value) (Value, error) {
	return vs.transcendental1(v, mbf.Single.Sin, mbf.Double.Sin)
}

// Cos implements COS.
func (vs *Values) Cos(v Value) (Value, error) {
	return vs.transcendental1(v, mbf.Single.Cos, mbf.Double.Cos)
}

// Tan implements TAN.
func (vs *Values) Tan(v Value) (Value, error) {
	return vs.transcendental1(v, mbf.Single.Tan, mbf.Double.Tan)
}

// Atn implements ATN.
func (vs *Values) Atn(v Value) (Value, error) {
	return vs.transcendental1(v, mbf.Single.Atan, mbf.Double.Atan)
}

// Log implements LOG. A non-positive argument is Illegal Function Call.
func (vs *Values) Log(v Value) (Value, error) {
	z, err := vs.IsZero(v)
	if err != nil {
		return Value{}, err
	}
	neg, err := vs.isNegative(v)
	if err != nil {
		return Value{}, err
	}
	if z || neg {
		return Value{}, illegalFunctionCall()
	}
	return vs.transcendental1(v, mbf.Single.Log, mbf.Double.Log)
}

// Pow implements the ^ operator: Double host math when either operand is
// Double and double math is enabled, square-and-multiply in Single
// precision when the exponent is an Integer, host math in Single
// otherwise.
func (vs *Values) Pow(a, b Value) (Value, error) {
	if err := requireNumeric(a); err != nil {
		return Value{}, err
	}
	if err := requireNumeric(b); err != nil {
		return Value{}, err
	}
	if vs.doubleMath && (a.sigil == '#' || b.sigil == '#') {
		da, err := vs.ToDouble(a)
		if err != nil {
			return Value{}, err
		}
		db, err := vs.ToDouble(b)
		if err != nil {
			return Value{}, err
		}
		r, err := vs.soft.WrapDouble(da.Pow(db))
		return NewDouble(r), err
	}
	sa, err := vs.ToSingle(a)
	if err != nil {
		return Value{}, err
	}
	if b.sigil == '%' {
		r, err := vs.soft.WrapSingle(sa.PowInt(b.i.ToInt(false)))
		return NewSingle(r), err
	}
	sb, err := vs.ToSingle(b)
	if err != nil {
		return Value{}, err
	}
	r, err := vs.soft.WrapSingle(sa.Pow(sb))
	return NewSingle(r), err
}

func (vs *Values) isNegative(v Value) (bool, error) {
	switch v.sigil {
	case '%':
		return v.i < 0, nil
	case '!':
		return v.s.IsNegative(), nil
	case '#':
		return v.d.IsNegative(), nil
	default:
		return false, requireNumeric(v)
	}
}

func illegalFunctionCall() error {
	return valueserr.New(valueserr.IllegalFunctionCall, "")
}
