package mbf

import "math/big"

// ToDecimal returns an integer mantissa of up to digits significant
// decimal digits (0 means the type's native digit count) and a decimal
// exponent such that value = mantissa * 10**exp10, rounded half-to-even
// within MBF precision. It is exact: conversion goes through math/big
// rather than the host's binary float, so results are identical on every
// platform.
func (s Single) ToDecimal(digits int) (mantissa int64, exp10 int) {
	if digits <= 0 {
		digits = singleDigits
	}
	sign, exp, mant := unpackSingle(s)
	m, e := toDecimalDigits(mant, exp-expBias-singleMantBits-1, digits)
	if sign {
		return -int64(m), e
	}
	return int64(m), e
}

// ToDecimal is Double's analogue of Single.ToDecimal, defaulting to 16
// significant digits.
func (d Double) ToDecimal(digits int) (mantissa int64, exp10 int) {
	if digits <= 0 {
		digits = doubleDigits
	}
	sign, exp, mant := unpackDouble(d)
	m, e := toDecimalDigits(mant, exp-expBias-doubleMantBits-1, digits)
	if sign {
		return -int64(m), e
	}
	return int64(m), e
}

// toDecimalDigits converts the exact binary value mant*2^binExp (mant >= 0)
// to `digits` decimal significant digits and a decimal exponent, rounding
// half-to-even, using exact rational arithmetic throughout.
func toDecimalDigits(mant uint64, binExp int, digits int) (uint64, int) {
	if mant == 0 {
		return 0, 0
	}
	num := new(big.Int).SetUint64(mant)
	den := big.NewInt(1)
	if binExp >= 0 {
		num.Lsh(num, uint(binExp))
	} else {
		den.Lsh(den, uint(-binExp))
	}
	// crude decimal-exponent estimate from bit lengths, refined below
	exp10 := (num.BitLen() - den.BitLen()) * 3 / 10
	exp10 -= digits - 1
	for {
		q, ok := scaleAndRound(num, den, exp10, digits)
		if ok {
			return q, exp10
		}
		nd := numDigitsU64(q)
		if nd > digits {
			exp10++
		} else {
			exp10--
		}
	}
}

// scaleAndRound computes round(num/den * 10**-exp10) and reports whether
// the result has exactly `digits` decimal digits.
func scaleAndRound(num, den *big.Int, exp10, digits int) (uint64, bool) {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if exp10 >= 0 {
		d.Mul(d, pow10(exp10))
	} else {
		n.Mul(n, pow10(-exp10))
	}
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	r2 := new(big.Int).Lsh(r, 1)
	if cmp := r2.CmpAbs(d); cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(1))
	}
	nd := numDigitsBig(q)
	return q.Uint64(), nd == digits && q.Sign() != 0
}

func numDigitsBig(n *big.Int) int {
	if n.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(n).String())
}

func numDigitsU64(n uint64) int {
	if n == 0 {
		return 1
	}
	c := 0
	for n != 0 {
		n /= 10
		c++
	}
	return c
}

var pow10Cache = map[int]*big.Int{}

func pow10(n int) *big.Int {
	if v, ok := pow10Cache[n]; ok {
		return v
	}
	v := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	pow10Cache[n] = v
	return v
}

// SingleFromDecimal constructs the Single closest to mantissa*10**exp10,
// rounding half-to-even, reporting ErrOverflow if the magnitude exceeds
// what a Single can hold. mantissa is a *big.Int rather than a fixed-width
// integer so that callers converting literals of arbitrary digit length
// (numparse) never need to pre-truncate before the binary rounding step.
func SingleFromDecimal(mantissa *big.Int, exp10 int) (Single, error) {
	sign, exp, mant := fromDecimalBinary(mantissa, exp10, singleMantBits)
	if exp > maxExp {
		return signedMaxSingle(sign), ErrOverflow
	}
	return packSingle(sign, exp, mant), nil
}

// DoubleFromDecimal is Double's analogue of SingleFromDecimal.
func DoubleFromDecimal(mantissa *big.Int, exp10 int) (Double, error) {
	sign, exp, mant := fromDecimalBinary(mantissa, exp10, doubleMantBits)
	if exp > maxExp {
		return signedMaxDouble(sign), ErrOverflow
	}
	return packDouble(sign, exp, mant), nil
}

// fromDecimalBinary converts the exact decimal value mantissa*10**exp10 to
// a normalized (sign, biased exponent, mant) triple with mantissaBits+1
// significant bits, rounding half-to-even.
func fromDecimalBinary(mantissa *big.Int, exp10 int, mantissaBits uint) (sign bool, exp int, mant uint64) {
	sign = mantissa.Sign() < 0
	num := new(big.Int).Abs(mantissa)
	den := big.NewInt(1)
	if exp10 >= 0 {
		num.Mul(num, pow10(exp10))
	} else {
		den.Mul(den, pow10(-exp10))
	}
	if num.Sign() == 0 {
		return sign, 0, 0
	}
	// binary exponent guess so that num<<shift / den has mantissaBits+2 bits
	shift := int(mantissaBits) + 2 - (num.BitLen() - den.BitLen())
	for {
		n := new(big.Int).Set(num)
		d := new(big.Int).Set(den)
		if shift >= 0 {
			n.Lsh(n, uint(shift))
		} else {
			d.Lsh(d, uint(-shift))
		}
		q, r := new(big.Int).QuoRem(n, d, new(big.Int))
		r2 := new(big.Int).Lsh(r, 1)
		if cmp := r2.CmpAbs(d); cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
			q.Add(q, big.NewInt(1))
		}
		bl := q.BitLen()
		switch {
		case bl > int(mantissaBits)+1:
			shift--
		case bl <= int(mantissaBits):
			shift++
		default:
			mant = q.Uint64()
			exp = -shift + expBias + int(mantissaBits) + 1
			return
		}
	}
}
