package gwvalue

import (
	"math"

	"github.com/dbasic/gwvalue/mbf"
	"github.com/dbasic/gwvalue/mbf/intop"
	"github.com/dbasic/gwvalue/softerr"
	"github.com/dbasic/gwvalue/strspace"
	"github.com/dbasic/gwvalue/valueserr"
)

// Values is the facade: the single collaborator an expression evaluator
// needs for every value operation. It owns no string bytes itself (that is
// Space's job) and holds only the double-math flag and the soft-error
// handler's paused/active state.
type Values struct {
	space      strspace.Space
	doubleMath bool
	soft       *softerr.Handler
}

// New returns a Values engine backed by space. report, if non-nil, is
// called with "Overflow" or "Division by Zero" whenever a float operation
// recovers from a soft condition while the handler is not paused.
// doubleMath selects whether transcendental/general Pow results default to
// Double precision when either operand is already Double.
func New(space strspace.Space, doubleMath bool, report func(string)) *Values {
	return &Values{space: space, doubleMath: doubleMath, soft: softerr.New(report)}
}

// Pause suspends or resumes soft-error reporting (OVERFLOW/DIVISION BY
// ZERO screen messages); substitution of the signed maximum still happens
// either way.
func (vs *Values) Pause(doPause bool) { vs.soft.Pause(doPause) }

func requireNumeric(v Value) error {
	if !v.IsNumeric() {
		return valueserr.New(valueserr.TypeMismatch, "")
	}
	return nil
}

func requireString(v Value) error {
	if !v.IsString() {
		return valueserr.New(valueserr.TypeMismatch, "")
	}
	return nil
}

// PassNumber type-guards v, failing with Type Mismatch unless it is one
// of the three numeric kinds.
func (vs *Values) PassNumber(v Value) (Value, error) {
	if err := requireNumeric(v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// PassString type-guards v, failing with Type Mismatch unless it is a
// string.
func (vs *Values) PassString(v Value) (Value, error) {
	if err := requireString(v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// ToInteger converts v to Integer via round-to-nearest then range-checks
// the result against -32768..32767. unsigned widens the accepted range to
// -32768..65535, values above 32767 keeping their 16-bit pattern.
func (vs *Values) ToInteger(v Value, unsigned bool) (intop.Int, error) {
	switch v.sigil {
	case '%':
		return v.i, nil
	case '!':
		return intFromFloat(v.s.Round().ToValue(), unsigned)
	case '#':
		return intFromFloat(v.d.Round().ToValue(), unsigned)
	default:
		return 0, valueserr.New(valueserr.TypeMismatch, "")
	}
}

func intFromFloat(f float64, unsigned bool) (intop.Int, error) {
	if f < -65536 || f > 65536 {
		return 0, valueserr.New(valueserr.Overflow, "")
	}
	n := int64(f)
	var iv intop.Int
	var err error
	switch {
	case unsigned && n >= -32768 && n < 0:
		// the unsigned view still admits the signed span, reinterpreting
		// negatives as their bit pattern (HEX$(-1) is "FFFF")
		iv = intop.Int(n)
	case unsigned:
		iv, err = intop.FromUnsigned(n)
	default:
		iv, err = intop.FromSigned(n)
	}
	if err != nil {
		return 0, valueserr.New(valueserr.Overflow, "")
	}
	return iv, nil
}

// ToSingle widens v to Single, preserving value exactly for Integer and
// Single inputs; Double is narrowed (lossy, rounds to Single precision).
// A Double too large for Single range is a soft Overflow, recovered via
// vs's handler exactly as a direct arithmetic overflow would be.
func (vs *Values) ToSingle(v Value) (mbf.Single, error) {
	switch v.sigil {
	case '%':
		s, err := mbf.SingleFromValue(float64(v.i.ToInt(false)))
		return vs.soft.WrapSingle(s, err)
	case '!':
		return v.s, nil
	case '#':
		s, err := mbf.SingleFromValue(v.d.ToValue())
		return vs.soft.WrapSingle(s, err)
	default:
		return 0, valueserr.New(valueserr.TypeMismatch, "")
	}
}

// ToDouble widens v to Double, exact for all three numeric inputs (Double
// has strictly more precision than Integer or Single).
func (vs *Values) ToDouble(v Value) (mbf.Double, error) {
	switch v.sigil {
	case '%':
		d, err := mbf.DoubleFromValue(float64(v.i.ToInt(false)))
		return vs.soft.WrapDouble(d, err)
	case '!':
		d, err := mbf.DoubleFromValue(v.s.ToValue())
		return vs.soft.WrapDouble(d, err)
	case '#':
		return v.d, nil
	default:
		return 0, valueserr.New(valueserr.TypeMismatch, "")
	}
}

// ToFloat widens v to a float: a Double stays Double only when
// allowDouble is set; everything else, Integer included, becomes Single.
func (vs *Values) ToFloat(v Value, allowDouble bool) (Value, error) {
	if v.sigil == '#' && allowDouble {
		return v, nil
	}
	s, err := vs.ToSingle(v)
	return NewSingle(s), err
}

// ToType converts v to the type named by sigil ('%', '!', '#', '$'),
// failing with Type Mismatch when a string/number boundary is crossed.
func (vs *Values) ToType(sigil byte, v Value) (Value, error) {
	switch sigil {
	case '%':
		i, err := vs.ToInteger(v, false)
		return NewInteger(i), err
	case '!':
		s, err := vs.ToSingle(v)
		return NewSingle(s), err
	case '#':
		d, err := vs.ToDouble(v)
		return NewDouble(d), err
	case '$':
		if err := requireString(v); err != nil {
			return Value{}, err
		}
		return v, nil
	default:
		return Value{}, valueserr.New(valueserr.Internal, "unknown sigil")
	}
}

// ToMostPrecise widens a and b to the higher-ranked of their two types
// (Double > Single > Integer) and returns both at that common type.
func (vs *Values) ToMostPrecise(a, b Value) (Value, Value, error) {
	if err := requireNumeric(a); err != nil {
		return Value{}, Value{}, err
	}
	if err := requireNumeric(b); err != nil {
		return Value{}, Value{}, err
	}
	target := rank(a.sigil)
	if r := rank(b.sigil); r > target {
		target = r
	}
	sigil := sigilForRank(target)
	na, err := vs.ToType(sigil, a)
	if err != nil {
		return Value{}, Value{}, err
	}
	nb, err := vs.ToType(sigil, b)
	if err != nil {
		return Value{}, Value{}, err
	}
	return na, nb, nil
}

// promoteFloat is ToMostPrecise's arithmetic-specific cousin: Integer
// operands always widen at least to Single, so Integer+Integer never
// overflows Integer range mid-computation.
func (vs *Values) promoteFloat(a, b Value) (byte, Value, Value, error) {
	if err := requireNumeric(a); err != nil {
		return 0, Value{}, Value{}, err
	}
	if err := requireNumeric(b); err != nil {
		return 0, Value{}, Value{}, err
	}
	target := rank(a.sigil)
	if r := rank(b.sigil); r > target {
		target = r
	}
	if target < rankSingle {
		target = rankSingle
	}
	sigil := sigilForRank(target)
	na, err := vs.ToType(sigil, a)
	if err != nil {
		return 0, Value{}, Value{}, err
	}
	nb, err := vs.ToType(sigil, b)
	if err != nil {
		return 0, Value{}, Value{}, err
	}
	return sigil, na, nb, nil
}

// FromBool returns the Integer BASIC uses for a boolean result: all bits
// set (-1) for true, 0 for false.
func FromBool(b bool) Value {
	if b {
		return NewInteger(-1)
	}
	return NewInteger(0)
}

// IsZero reports whether v, a numeric Value, is zero.
func (vs *Values) IsZero(v Value) (bool, error) {
	switch v.sigil {
	case '%':
		return v.i == 0, nil
	case '!':
		return v.s.IsZero(), nil
	case '#':
		return v.d.IsZero(), nil
	default:
		return false, valueserr.New(valueserr.TypeMismatch, "")
	}
}

// ToBool is the negation of IsZero.
func (vs *Values) ToBool(v Value) (bool, error) {
	z, err := vs.IsZero(v)
	return !z, err
}

// Round rounds v to the nearest whole number, ties to even, staying in
// float precision rather than converting to Integer.
func (vs *Values) Round(v Value) (Value, error) {
	f, err := vs.ToFloat(v, true)
	if err != nil {
		return Value{}, err
	}
	if f.sigil == '#' {
		return NewDouble(f.d.Round()), nil
	}
	return NewSingle(f.s.Round()), nil
}

// ToValue converts a numeric Value to the host's float64.
func (vs *Values) ToValue(v Value) (float64, error) {
	switch v.sigil {
	case '%':
		return float64(v.i.ToInt(false)), nil
	case '!':
		return v.s.ToValue(), nil
	case '#':
		return v.d.ToValue(), nil
	default:
		return 0, valueserr.New(valueserr.TypeMismatch, "")
	}
}

// FromValue rounds a host float64 into a Value of the type named by
// sigil. Overflow of a float target recovers through the soft-error
// handler; an Integer target out of range is a hard Overflow.
func (vs *Values) FromValue(f float64, sigil byte) (Value, error) {
	switch sigil {
	case '%':
		iv, err := intFromFloat(math.RoundToEven(f), false)
		return NewInteger(iv), err
	case '!':
		s, err := vs.soft.WrapSingle(mbf.SingleFromValue(f))
		return NewSingle(s), err
	case '#':
		d, err := vs.soft.WrapDouble(mbf.DoubleFromValue(f))
		return NewDouble(d), err
	default:
		return Value{}, valueserr.New(valueserr.Internal, "unknown sigil")
	}
}
