package gwvalue

import (
	"github.com/dbasic/gwvalue/mbf"
	"github.com/dbasic/gwvalue/mbf/intop"
	"github.com/dbasic/gwvalue/numfmt"
	"github.com/dbasic/gwvalue/numparse"
	"github.com/dbasic/gwvalue/valueserr"
)

// ParseNumber decodes one numeric literal into a Value.
// allowNonNum selects leniency exactly as numparse.Parse documents: false
// raises Syntax Error on anything malformed, true accepts the longest
// valid prefix and defaults to Integer 0.
func (vs *Values) ParseNumber(raw string, allowNonNum bool) (Value, error) {
	r, err := numparse.Parse(raw, allowNonNum)
	if err != nil {
		return Value{}, err
	}
	if r.Sigil == '%' {
		i, err := intop.FromSigned(r.Int)
		if err != nil {
			return Value{}, valueserr.New(valueserr.Overflow, "")
		}
		return NewInteger(i), nil
	}
	if r.Sigil == '#' {
		d, err := mbf.DoubleFromDecimal(r.Mantissa, r.Exp10)
		return NewDouble(d), overflowOrNil(err)
	}
	s, err := mbf.SingleFromDecimal(r.Mantissa, r.Exp10)
	return NewSingle(s), overflowOrNil(err)
}

func overflowOrNil(err error) error {
	switch err {
	case nil:
		return nil
	case mbf.ErrOverflow:
		return valueserr.New(valueserr.Overflow, "")
	default:
		return err
	}
}

// numeric adapts v (a numeric Value) to numfmt.Numeric. v must be Single
// or Double; Integer values are handled by the caller before formatting:
// Listing/Str/Write render them as plain decimal with no sigil, and
// FormatNumber widens them to Single first.
func (v Value) numeric() numfmt.Numeric {
	if v.sigil == '#' {
		return v.d
	}
	return v.s
}

// Listing renders v the way a program listing shows a numeric literal.
func (vs *Values) Listing(v Value) (string, error) {
	if v.sigil == '%' {
		return itoaInt(v.i), nil
	}
	if err := requireNumeric(v); err != nil {
		return "", err
	}
	return numfmt.Listing(v.numeric()), nil
}

// Str renders v the way STR$ does.
func (vs *Values) Str(v Value) (string, error) {
	if v.sigil == '%' {
		return signedSpace(v.i), nil
	}
	if err := requireNumeric(v); err != nil {
		return "", err
	}
	return numfmt.Str(v.numeric()), nil
}

// Write renders v the way the WRITE statement does.
func (vs *Values) Write(v Value) (string, error) {
	if v.sigil == '%' {
		return itoaInt(v.i), nil
	}
	if err := requireNumeric(v); err != nil {
		return "", err
	}
	return numfmt.Write(v.numeric()), nil
}

func itoaInt(i intop.Int) string {
	n := int(i)
	if n < 0 {
		return "-" + itoaUint(uint(-n))
	}
	return itoaUint(uint(n))
}

func signedSpace(i intop.Int) string {
	if i < 0 {
		return itoaInt(i)
	}
	return " " + itoaInt(i)
}

func itoaUint(n uint) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// FormatNumber renders v into a PRINT USING numeric field. tokens holds
// the field's literal characters (see numfmt.FormatNumber); digitsBefore
// and decimals count its digit positions around the radix point. Integer
// values widen to Single first, so -32768 formats without overflowing.
func (vs *Values) FormatNumber(v Value, tokens string, digitsBefore, decimals int) (string, error) {
	if err := requireNumeric(v); err != nil {
		return "", err
	}
	if v.sigil == '%' {
		f, err := vs.ToFloat(v, false)
		if err != nil {
			return "", err
		}
		v = f
	}
	return numfmt.FormatNumber(v.numeric(), tokens, digitsBefore, decimals)
}
