package numfmt

import "strings"

// Numeric is satisfied by mbf.Single and mbf.Double. It is defined here
// rather than imported as a concrete type pair so that numfmt depends on
// mbf only through this narrow structural contract.
type Numeric interface {
	ToDecimal(digits int) (mantissa int64, exp10 int)
	IsNegative() bool
	NativeDigits() int
	ExpLetter() byte
	TypeSigil() byte
}

// Listing renders v the way a program listing shows a numeric literal:
// no leading space, trailing type sigil appended.
func Listing(v Numeric) string {
	return format(v, false, true)
}

// Str renders v the way STR$ and PRINT do: a leading space for
// non-negative values, no trailing sigil.
func Str(v Numeric) string {
	return format(v, true, false)
}

// Write renders v the way the WRITE statement does: no leading space, no
// trailing sigil.
func Write(v Numeric) string {
	return format(v, false, false)
}

func format(v Numeric, leadingSpace, typeSign bool) string {
	mantissa, exp10 := v.ToDecimal(0)
	if mantissa == 0 {
		s := "0"
		if typeSign {
			s += string(v.TypeSigil())
		}
		if leadingSpace {
			return " " + s
		}
		return s
	}
	sign := ""
	switch {
	case mantissa < 0:
		sign = "-"
		mantissa = -mantissa
	case leadingSpace:
		sign = " "
	}
	digits := v.NativeDigits()
	// trailing zeros drop out before the notation choice: 0.001 keeps a
	// one-digit string and stays decimal rather than flipping to 1E-03
	digitstr := getDigits(mantissa, digits, true)
	exp10 += digits - 1
	if exp10 > digits-1 || len(digitstr)-exp10 > digits+1 {
		return sign + scientificNotation(digitstr, exp10, v.ExpLetter(), 1, false)
	}
	ts := byte(0)
	if typeSign {
		ts = v.TypeSigil()
	}
	return sign + decimalNotation(digitstr, exp10, ts, false)
}

// getDigits renders the mantissa's magnitude as exactly `digits` decimal
// characters, zero-padded on the left and truncated on the right,
// optionally with trailing zeros removed.
func getDigits(mantissa int64, digits int, removeTrailing bool) string {
	if mantissa < 0 {
		mantissa = -mantissa
	}
	s := itoa(mantissa)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	} else {
		s = s[:digits]
	}
	if removeTrailing {
		return strings.TrimRight(s, "0")
	}
	return s
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// decimalNotation places the radix point exp10+1 digits from the left of
// digitstr, padding with zeros as needed. typeSign is 0 for none; a '#'
// sigil always survives, while '!' is dropped whenever the field forces a
// dot of its own.
func decimalNotation(digitstr string, exp10 int, typeSign byte, forceDot bool) string {
	point := exp10 + 1
	var s string
	switch {
	case point >= len(digitstr):
		s = digitstr + strings.Repeat("0", point-len(digitstr))
		if forceDot {
			s += "."
		}
	case point > 0:
		s = digitstr[:point] + "." + digitstr[point:]
	default:
		if forceDot {
			s = "0"
		}
		s += "." + strings.Repeat("0", -point) + digitstr
	}
	if typeSign == '#' || (typeSign == '!' && !forceDot) {
		s += string(typeSign)
	}
	return s
}

// scientificNotation renders digitstr with the radix point after
// digitsToDot digits, followed by the exponent letter, an explicit sign,
// and a two-digit zero-padded decimal exponent.
func scientificNotation(digitstr string, exp10 int, letter byte, digitsToDot int, forceDot bool) string {
	cut := digitsToDot
	if cut > len(digitstr) {
		cut = len(digitstr)
	}
	s := digitstr[:cut]
	if len(digitstr) > digitsToDot {
		s += "." + digitstr[digitsToDot:]
	} else if len(digitstr) == digitsToDot && forceDot {
		s += "."
	}
	exponent := exp10 - digitsToDot + 1
	sign := byte('+')
	if exponent < 0 {
		sign = '-'
		exponent = -exponent
	}
	return s + string(letter) + string(sign) + getDigits(int64(exponent), 2, false)
}
