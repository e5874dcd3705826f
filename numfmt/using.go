package numfmt

import (
	"strings"

	"github.com/dbasic/gwvalue/valueserr"
)

// FormatNumber renders v into a PRINT USING numeric field. tokens is the
// literal field as it appears in the format string (its length is the
// field width); digitsBefore and decimals count the digit positions
// before and after the radix point. A value whose sign and digits exceed
// the field is prefixed with '%' rather than trimmed.
//
// Recognised field characters: '#' digit, '.' radix point, leading or
// trailing '+' explicit sign, trailing '-' post-sign, '$' currency, '*'
// star fill, '^' scientific exponent marker.
func FormatNumber(v Numeric, tokens string, digitsBefore, decimals int) (string, error) {
	if digitsBefore+decimals > 24 {
		return "", valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	if tokens == "" {
		return "", valueserr.New(valueserr.IllegalFunctionCall, "")
	}
	hasDollar := strings.Contains(tokens, "$")
	forceDot := strings.Contains(tokens, ".")
	neg := v.IsNegative()
	valstr, postSign := "", ""
	switch {
	case tokens[0] == '+':
		if neg {
			valstr = "-"
		} else {
			valstr = "+"
		}
	case tokens[len(tokens)-1] == '+':
		if neg {
			postSign = "-"
		} else {
			postSign = "+"
		}
	case tokens[len(tokens)-1] == '-':
		if neg {
			postSign = "-"
		} else {
			postSign = " "
		}
	default:
		if neg {
			valstr = "-"
		}
		// with no explicit sign token, one digit position is given up to
		// the sign column
		if !hasDollar {
			digitsBefore--
			if digitsBefore < 0 {
				digitsBefore = 0
			}
		}
	}
	if hasDollar {
		valstr += "$"
	}
	if strings.Contains(tokens, "^") {
		valstr += formatFloatScientific(v, digitsBefore, decimals, forceDot)
	} else {
		valstr += formatFloatFixed(v, decimals, forceDot)
	}
	valstr += postSign
	if len(valstr) > len(tokens) {
		return "%" + valstr, nil
	}
	fill := " "
	if strings.Contains(tokens, "*") {
		fill = "*"
	}
	return strings.Repeat(fill, len(tokens)-len(valstr)) + valstr, nil
}

// formatFloatScientific renders the magnitude of v in exponent notation
// with digitsBefore digits before the dot and decimals after. Zero with
// no forced dot prints asymmetrically: "E+00" for Single, "0D+00" for
// Double.
func formatFloatScientific(v Numeric, digitsBefore, decimals int, forceDot bool) string {
	workDigits := digitsBefore + decimals
	if nd := v.NativeDigits(); workDigits > nd {
		workDigits = nd
	}
	mantissa, exp10 := v.ToDecimal(0)
	var digitstr string
	if mantissa == 0 {
		if !forceDot {
			if v.ExpLetter() == 'E' {
				return "E+00"
			}
			return "0D+00"
		}
		digitstr = strings.Repeat("0", digitsBefore+decimals)
		exp10 = 0
	} else {
		// asking for zero digits here rounds incorrectly; one digit is
		// the working minimum
		wd := workDigits
		if wd == 0 {
			wd = 1
		}
		mantissa, exp10 = v.ToDecimal(wd)
		digitstr = getDigits(mantissa, workDigits, true)
		if len(digitstr) < digitsBefore+decimals {
			digitstr += strings.Repeat("0", digitsBefore+decimals-len(digitstr))
		}
	}
	if workDigits == 0 {
		// a field with no digit positions is off by one in the exponent:
		// "#^^^^" on 1 prints E+01, not 1E+00
		exp10++
	}
	exp10 += digitsBefore + decimals - 1
	return scientificNotation(digitstr, exp10, v.ExpLetter(), digitsBefore, forceDot)
}

// formatFloatFixed renders the magnitude of v in fixed-point notation
// with exactly decimals fractional digits.
func formatFloatFixed(v Numeric, decimals int, forceDot bool) string {
	mantissa, exp10 := v.ToDecimal(0)
	if -exp10 > decimals {
		// reconvert at the precision the field can resolve; zero would
		// round incorrectly, so one digit is the working minimum here too
		nwork := v.NativeDigits() - (-exp10 - decimals)
		if nwork < 1 {
			nwork = 1
		}
		mantissa, exp10 = v.ToDecimal(nwork)
	}
	if mantissa < 0 {
		mantissa = -mantissa
	}
	digitstr := itoa(mantissa)
	nbefore := len(digitstr) + exp10
	if decimals+exp10 > 0 {
		digitstr += strings.Repeat("0", decimals+exp10)
	}
	return decimalNotation(digitstr, nbefore-1, 0, forceDot)
}
