package gwvalue

import (
	"bytes"
	"strings"

	"github.com/dbasic/gwvalue/mbf"
	"github.com/dbasic/gwvalue/mbf/intop"
	"github.com/dbasic/gwvalue/strspace"
	"github.com/dbasic/gwvalue/valueserr"
)

// concat implements the binary + operator between two strings: a fresh
// byte sequence stored in vs.space, failing with String Too Long if the
// combined length exceeds strspace.MaxLen.
func (vs *Values) concat(a, b Value) (Value, error) {
	if err := requireString(a); err != nil {
		return Value{}, err
	}
	if err := requireString(b); err != nil {
		return Value{}, err
	}
	ab, err := vs.space.Copy(a.str)
	if err != nil {
		return Value{}, err
	}
	bb, err := vs.space.Copy(b.str)
	if err != nil {
		return Value{}, err
	}
	if len(ab)+len(bb) > strspace.MaxLen {
		return Value{}, valueserr.New(valueserr.StringTooLong, "")
	}
	joined := append(append([]byte{}, ab...), bb...)
	desc, err := vs.space.Store(joined)
	if err != nil {
		return Value{}, err
	}
	return NewString(desc), nil
}

// Length implements LEN on a string Value.
func (vs *Values) Length(v Value) (int, error) {
	if err := requireString(v); err != nil {
		return 0, err
	}
	return int(v.str.Length), nil
}

// Asc implements ASC: the byte code of a string's first character.
// Illegal Function Call on an empty string.
func (vs *Values) Asc(v Value) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	if len(b) == 0 {
		return Value{}, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	return NewInteger(intop.Int(b[0])), nil
}

// Chr implements CHR$: a one-byte string from an Integer 0..255, Illegal
// Function Call outside that range.
func (vs *Values) Chr(v Value) (Value, error) {
	i, err := vs.ToInteger(v, false)
	if err != nil {
		return Value{}, err
	}
	n := i.ToInt(false)
	if n < 0 || n > 255 {
		return Value{}, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	desc, err := vs.space.Store([]byte{byte(n)})
	if err != nil {
		return Value{}, err
	}
	return NewString(desc), nil
}

// Space implements SPACE$: n blank bytes.
func (vs *Values) Space(v Value) (Value, error) {
	i, err := vs.ToInteger(v, false)
	if err != nil {
		return Value{}, err
	}
	n := i.ToInt(false)
	if n < 0 || n > strspace.MaxLen {
		return Value{}, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	desc, err := vs.space.Store(bytes.Repeat([]byte{' '}, n))
	if err != nil {
		return Value{}, err
	}
	return NewString(desc), nil
}

// Instr implements INSTR(start, haystack, needle): the 1-based position
// of the first occurrence of needle in haystack at or after start, or 0
// if not found. An empty needle matches at start. start below 1 is
// Illegal Function Call; an empty haystack or a start past its end
// yields 0, and start has no other upper bound.
func (vs *Values) Instr(start Value, haystack, needle Value) (Value, error) {
	i, err := vs.ToInteger(start, false)
	if err != nil {
		return Value{}, err
	}
	pos := i.ToInt(false)
	if pos < 1 {
		return Value{}, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	hb, err := vs.bytesOf(haystack)
	if err != nil {
		return Value{}, err
	}
	nb, err := vs.bytesOf(needle)
	if err != nil {
		return Value{}, err
	}
	if len(hb) == 0 || pos > len(hb) {
		return NewInteger(0), nil
	}
	idx := bytes.Index(hb[pos-1:], nb)
	if idx < 0 {
		return NewInteger(0), nil
	}
	return NewInteger(intop.Int(pos + idx)), nil
}

// Left implements LEFT$: the first n bytes (fewer if the string is
// shorter). n outside 0..255 is Illegal Function Call.
func (vs *Values) Left(v, n Value) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	count, err := vs.clampedCount(n)
	if err != nil {
		return Value{}, err
	}
	if count > len(b) {
		count = len(b)
	}
	return vs.store(b[:count])
}

// Right implements RIGHT$: the last n bytes.
func (vs *Values) Right(v, n Value) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	count, err := vs.clampedCount(n)
	if err != nil {
		return Value{}, err
	}
	if count > len(b) {
		count = len(b)
	}
	return vs.store(b[len(b)-count:])
}

// Mid implements MID$(v, start, length) with 1-based start and an
// optional length, used only when hasLength is set; without it the rest
// of the string is returned, and a length outside 0..255 is Illegal
// Function Call. start beyond the string's end yields an empty string,
// matching LEFT$/RIGHT$'s leniency.
func (vs *Values) Mid(v, start Value, length Value, hasLength bool) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	si, err := vs.ToInteger(start, false)
	if err != nil {
		return Value{}, err
	}
	pos := si.ToInt(false)
	if pos < 1 || pos > 255 {
		return Value{}, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	if pos > len(b) {
		return vs.store(nil)
	}
	rest := b[pos-1:]
	if !hasLength {
		return vs.store(rest)
	}
	count, err := vs.clampedCount(length)
	if err != nil {
		return Value{}, err
	}
	if count > len(rest) {
		count = len(rest)
	}
	return vs.store(rest[:count])
}

// MKIDollar, MKSDollar, MKDDollar implement MKI$/MKS$/MKD$: the raw byte
// encoding of a numeric Value, for writing to a random-access file field.
func (vs *Values) MKIDollar(v Value) (Value, error) {
	i, err := vs.ToInteger(v, false)
	if err != nil {
		return Value{}, err
	}
	n := uint16(i)
	return vs.store([]byte{byte(n), byte(n >> 8)})
}

func (vs *Values) MKSDollar(v Value) (Value, error) {
	s, err := vs.ToSingle(v)
	if err != nil {
		return Value{}, err
	}
	return vs.store(s.ToBytes())
}

func (vs *Values) MKDDollar(v Value) (Value, error) {
	d, err := vs.ToDouble(v)
	if err != nil {
		return Value{}, err
	}
	return vs.store(d.ToBytes())
}

// CVI, CVS, CVD are MKI$/MKS$/MKD$'s inverses: decode a field's raw bytes
// back into a numeric Value.
func (vs *Values) CVI(v Value) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 2 {
		return Value{}, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	n := uint16(b[0]) | uint16(b[1])<<8
	return NewInteger(intop.Int(n)), nil
}

func (vs *Values) CVS(v Value) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 4 {
		return Value{}, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	s, err := mbf.SingleFromBytes(b[:4])
	if err != nil {
		return Value{}, err
	}
	return NewSingle(s), nil
}

func (vs *Values) CVD(v Value) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	if len(b) < 8 {
		return Value{}, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	d, err := mbf.DoubleFromBytes(b[:8])
	if err != nil {
		return Value{}, err
	}
	return NewDouble(d), nil
}

// OctDollar implements OCT$: the Integer's bit pattern in octal. The
// argument may be anywhere in -32768..65535.
func (vs *Values) OctDollar(v Value) (Value, error) {
	i, err := vs.ToInteger(v, true)
	if err != nil {
		return Value{}, err
	}
	return vs.store([]byte(i.ToOct()))
}

// HexDollar implements HEX$: the Integer's bit pattern in upper-case hex.
// The argument may be anywhere in -32768..65535.
func (vs *Values) HexDollar(v Value) (Value, error) {
	i, err := vs.ToInteger(v, true)
	if err != nil {
		return Value{}, err
	}
	return vs.store([]byte(i.ToHex()))
}

// UCase, LCase implement UCASE$/LCASE$.
func (vs *Values) UCase(v Value) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	return vs.store([]byte(strings.ToUpper(string(b))))
}

func (vs *Values) LCase(v Value) (Value, error) {
	b, err := vs.bytesOf(v)
	if err != nil {
		return Value{}, err
	}
	return vs.store([]byte(strings.ToLower(string(b))))
}

func (vs *Values) bytesOf(v Value) ([]byte, error) {
	if err := requireString(v); err != nil {
		return nil, err
	}
	return vs.space.Copy(v.str)
}

func (vs *Values) store(b []byte) (Value, error) {
	desc, err := vs.space.Store(b)
	if err != nil {
		return Value{}, err
	}
	return NewString(desc), nil
}

func (vs *Values) clampedCount(n Value) (int, error) {
	i, err := vs.ToInteger(n, false)
	if err != nil {
		return 0, err
	}
	c := i.ToInt(false)
	if c < 0 || c > strspace.MaxLen {
		return 0, valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	return c, nil
}
