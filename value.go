package gwvalue

import (
	"github.com/dbasic/gwvalue/mbf"
	"github.com/dbasic/gwvalue/mbf/intop"
	"github.com/dbasic/gwvalue/strspace"
	"github.com/dbasic/gwvalue/valueserr"
)

// Value is a tagged-variant value descriptor: exactly one of the four
// payload fields is meaningful, selected by sigil. The zero Value is not a
// valid descriptor of any kind; use the New* constructors.
type Value struct {
	sigil byte
	i     intop.Int
	s     mbf.Single
	d     mbf.Double
	str   strspace.Descriptor
}

// NewInteger wraps an Integer as a Value.
func NewInteger(i intop.Int) Value { return Value{sigil: '%', i: i} }

// NewSingle wraps a Single as a Value.
func NewSingle(s mbf.Single) Value { return Value{sigil: '!', s: s} }

// NewDouble wraps a Double as a Value.
func NewDouble(d mbf.Double) Value { return Value{sigil: '#', d: d} }

// NewString wraps a string descriptor as a Value. The bytes themselves
// live in whichever strspace.Space produced desc.
func NewString(desc strspace.Descriptor) Value { return Value{sigil: '$', str: desc} }

// Sigil returns the value's type tag: one of '%', '!', '#', '$'.
func (v Value) Sigil() byte { return v.sigil }

// IsString reports whether v holds a string descriptor.
func (v Value) IsString() bool { return v.sigil == '$' }

// IsNumeric reports whether v holds one of the three numeric kinds.
func (v Value) IsNumeric() bool { return v.sigil == '%' || v.sigil == '!' || v.sigil == '#' }

// Integer returns v's payload, valid only when v.Sigil() == '%'.
func (v Value) Integer() intop.Int { return v.i }

// Single returns v's payload, valid only when v.Sigil() == '!'.
func (v Value) Single() mbf.Single { return v.s }

// Double returns v's payload, valid only when v.Sigil() == '#'.
func (v Value) Double() mbf.Double { return v.d }

// StringDescriptor returns v's payload, valid only when v.Sigil() == '$'.
func (v Value) StringDescriptor() strspace.Descriptor { return v.str }

// Null returns the zero value of the type named by sigil: Integer 0,
// Single 0, Double 0, or an empty string descriptor.
func Null(sigil byte) (Value, error) {
	switch sigil {
	case '%':
		return NewInteger(0), nil
	case '!':
		return NewSingle(0), nil
	case '#':
		return NewDouble(0), nil
	case '$':
		return NewString(strspace.Descriptor{}), nil
	default:
		return Value{}, valueserr.New(valueserr.Internal, "unknown sigil")
	}
}

// FromBytes decodes a value from its internal byte representation; the
// buffer's size selects the type (2 Integer, 3 string descriptor, 4
// Single, 8 Double).
func FromBytes(buf []byte) (Value, error) {
	switch len(buf) {
	case 2:
		return NewInteger(intop.Int(uint16(buf[0]) | uint16(buf[1])<<8)), nil
	case 3:
		d, err := strspace.DescriptorFromBytes(buf)
		return NewString(d), err
	case 4:
		s, err := mbf.SingleFromBytes(buf)
		return NewSingle(s), err
	case 8:
		d, err := mbf.DoubleFromBytes(buf)
		return NewDouble(d), err
	default:
		return Value{}, valueserr.New(valueserr.Internal, "bad value size")
	}
}

// ToBytes returns a fresh copy of the value's internal byte
// representation (2, 3, 4 or 8 bytes per the type table).
func (v Value) ToBytes() []byte {
	switch v.sigil {
	case '%':
		n := uint16(v.i)
		return []byte{byte(n), byte(n >> 8)}
	case '!':
		return v.s.ToBytes()
	case '#':
		return v.d.ToBytes()
	case '$':
		return v.str.Bytes()
	default:
		return nil
	}
}

const (
	rankInteger = 0
	rankSingle  = 1
	rankDouble  = 2
)

func rank(sigil byte) int {
	switch sigil {
	case '%':
		return rankInteger
	case '!':
		return rankSingle
	case '#':
		return rankDouble
	default:
		return -1
	}
}

func sigilForRank(r int) byte {
	switch r {
	case rankInteger:
		return '%'
	case rankSingle:
		return '!'
	default:
		return '#'
	}
}
