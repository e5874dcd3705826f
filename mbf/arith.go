package mbf

// Add returns a+b, rounded to nearest-even. On overflow it returns the
// signed maximum Single (sign of the true result) together with
// ErrOverflow; callers that don't care about soft-error reporting can use
// the returned value directly, since it is always the correct substitute.
func (a Single) Add(b Single) (Single, error) {
	asign, aexp, amant := unpackSingle(a)
	bsign, bexp, bmant := unpackSingle(b)
	sign, exp, mant := addCore(asign, aexp, amant, bsign, bexp, bmant, singleMantBits)
	if exp > maxExp {
		return signedMaxSingle(sign), ErrOverflow
	}
	return packSingle(sign, exp, mant), nil
}

// Sub returns a-b.
func (a Single) Sub(b Single) (Single, error) { return a.Add(b.Neg()) }

// Neg returns -a. Zero remains zero (MBF has no negative zero).
func (a Single) Neg() Single {
	if a.IsZero() {
		return a
	}
	return a ^ (1 << singleMantBits)
}

// Abs returns |a|.
func (a Single) Abs() Single {
	if a.IsZero() {
		return a
	}
	return a &^ (1 << singleMantBits)
}

// Mul returns a*b.
func (a Single) Mul(b Single) (Single, error) {
	if a.IsZero() || b.IsZero() {
		return 0, nil
	}
	asign, aexp, amant := unpackSingle(a)
	bsign, bexp, bmant := unpackSingle(b)
	sign := asign != bsign
	exp, mant := mulCore(aexp, amant, bexp, bmant, singleMantBits)
	if exp > maxExp {
		return signedMaxSingle(sign), ErrOverflow
	}
	if exp <= 0 {
		return 0, nil
	}
	return packSingle(sign, exp, mant), nil
}

// Div returns a/b. Division by zero returns the signed maximum (sign of
// a, BASIC convention for 1/0 etc.) and ErrDivByZero.
func (a Single) Div(b Single) (Single, error) {
	if b.IsZero() {
		return signedMaxSingle(a.IsNegative()), ErrDivByZero
	}
	if a.IsZero() {
		return 0, nil
	}
	asign, aexp, amant := unpackSingle(a)
	bsign, bexp, bmant := unpackSingle(b)
	sign := asign != bsign
	exp, mant := divCore(aexp, amant, bexp, bmant, singleMantBits)
	if exp > maxExp {
		return signedMaxSingle(sign), ErrOverflow
	}
	if exp <= 0 {
		return 0, nil
	}
	return packSingle(sign, exp, mant), nil
}

// Trunc rounds toward zero to an integral Single value.
func (a Single) Trunc() Single {
	sign, exp, mant := unpackSingle(a)
	if mant == 0 {
		return a
	}
	bexp := exp - expBias - singleMantBits - 1
	if bexp >= 0 {
		return a
	}
	intPart, fracZero, _, _ := truncMant(mant, uint(-bexp), singleMantBits)
	if fracZero {
		return a
	}
	e, m := packInt(intPart, singleMantBits)
	return packSingle(sign, e, m)
}

// Floor rounds toward negative infinity to an integral Single value.
func (a Single) Floor() Single {
	sign, exp, mant := unpackSingle(a)
	if mant == 0 {
		return a
	}
	bexp := exp - expBias - singleMantBits - 1
	if bexp >= 0 {
		return a
	}
	intPart, fracZero, _, _ := truncMant(mant, uint(-bexp), singleMantBits)
	if fracZero {
		return a
	}
	if sign {
		intPart++
	}
	e, m := packInt(intPart, singleMantBits)
	return packSingle(sign, e, m)
}

// Round rounds to the nearest integral Single value, ties to even.
func (a Single) Round() Single {
	sign, exp, mant := unpackSingle(a)
	if mant == 0 {
		return a
	}
	bexp := exp - expBias - singleMantBits - 1
	if bexp >= 0 {
		return a
	}
	intPart, fracZero, fracHalf, fracOverHalf := truncMant(mant, uint(-bexp), singleMantBits)
	if fracZero {
		return a
	}
	if fracOverHalf || (fracHalf && intPart&1 == 1) {
		intPart++
	}
	e, m := packInt(intPart, singleMantBits)
	return packSingle(sign, e, m)
}

// PowInt raises a to a non-negative or negative integer power by
// square-and-multiply, in Single precision throughout.
func (a Single) PowInt(n int) (Single, error) {
	if n == 0 {
		return packSingle(false, expBias+1, uint64(1)<<singleMantBits), nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := packSingle(false, expBias+1, uint64(1)<<singleMantBits) // 1.0
	base := a
	var err error
	for n > 0 {
		if n&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return result, err
			}
		}
		n >>= 1
		if n == 0 {
			break
		}
		if base, err = base.Mul(base); err != nil {
			return result, err
		}
	}
	if neg {
		return result.reciprocalErr()
	}
	return result, nil
}

func (a Single) reciprocalErr() (Single, error) {
	one := packSingle(false, expBias+1, uint64(1)<<singleMantBits)
	return one.Div(a)
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func (a Single) Cmp(b Single) int {
	if a.Eq(b) {
		return 0
	}
	if a.Gt(b) {
		return 1
	}
	return -1
}

// Eq reports bitwise equality of the MBF encoding, which is equality of
// value since MBF has a single canonical encoding per value.
func (a Single) Eq(b Single) bool { return a == b }

// Gt reports whether a > b.
func (a Single) Gt(b Single) bool {
	asign, aexp, amant := unpackSingle(a)
	bsign, bexp, bmant := unpackSingle(b)
	if amant == 0 && bmant == 0 {
		return false
	}
	if asign != bsign {
		return bsign // a is positive (or zero), b is negative: a > b
	}
	eqMag := aexp == bexp && amant == bmant
	gtMag := aexp > bexp || (aexp == bexp && amant > bmant)
	if asign {
		return !gtMag && !eqMag
	}
	return gtMag
}

// ---------------------------------------------------------------------
// Double mirrors every Single operation at 55+1 mantissa bits.

func (a Double) Add(b Double) (Double, error) {
	asign, aexp, amant := unpackDouble(a)
	bsign, bexp, bmant := unpackDouble(b)
	sign, exp, mant := addCore(asign, aexp, amant, bsign, bexp, bmant, doubleMantBits)
	if exp > maxExp {
		return signedMaxDouble(sign), ErrOverflow
	}
	return packDouble(sign, exp, mant), nil
}

func (a Double) Sub(b Double) (Double, error) { return a.Add(b.Neg()) }

func (a Double) Neg() Double {
	if a.IsZero() {
		return a
	}
	return a ^ (1 << doubleMantBits)
}

func (a Double) Abs() Double {
	if a.IsZero() {
		return a
	}
	return a &^ (1 << doubleMantBits)
}

func (a Double) Mul(b Double) (Double, error) {
	if a.IsZero() || b.IsZero() {
		return 0, nil
	}
	asign, aexp, amant := unpackDouble(a)
	bsign, bexp, bmant := unpackDouble(b)
	sign := asign != bsign
	exp, mant := mulCore(aexp, amant, bexp, bmant, doubleMantBits)
	if exp > maxExp {
		return signedMaxDouble(sign), ErrOverflow
	}
	if exp <= 0 {
		return 0, nil
	}
	return packDouble(sign, exp, mant), nil
}

func (a Double) Div(b Double) (Double, error) {
	if b.IsZero() {
		return signedMaxDouble(a.IsNegative()), ErrDivByZero
	}
	if a.IsZero() {
		return 0, nil
	}
	asign, aexp, amant := unpackDouble(a)
	bsign, bexp, bmant := unpackDouble(b)
	sign := asign != bsign
	exp, mant := divCore(aexp, amant, bexp, bmant, doubleMantBits)
	if exp > maxExp {
		return signedMaxDouble(sign), ErrOverflow
	}
	if exp <= 0 {
		return 0, nil
	}
	return packDouble(sign, exp, mant), nil
}

func (a Double) Trunc() Double {
	sign, exp, mant := unpackDouble(a)
	if mant == 0 {
		return a
	}
	bexp := exp - expBias - doubleMantBits - 1
	if bexp >= 0 {
		return a
	}
	intPart, fracZero, _, _ := truncMant(mant, uint(-bexp), doubleMantBits)
	if fracZero {
		return a
	}
	e, m := packInt(intPart, doubleMantBits)
	return packDouble(sign, e, m)
}

func (a Double) Floor() Double {
	sign, exp, mant := unpackDouble(a)
	if mant == 0 {
		return a
	}
	bexp := exp - expBias - doubleMantBits - 1
	if bexp >= 0 {
		return a
	}
	intPart, fracZero, _, _ := truncMant(mant, uint(-bexp), doubleMantBits)
	if fracZero {
		return a
	}
	if sign {
		intPart++
	}
	e, m := packInt(intPart, doubleMantBits)
	return packDouble(sign, e, m)
}

func (a Double) Round() Double {
	sign, exp, mant := unpackDouble(a)
	if mant == 0 {
		return a
	}
	bexp := exp - expBias - doubleMantBits - 1
	if bexp >= 0 {
		return a
	}
	intPart, fracZero, fracHalf, fracOverHalf := truncMant(mant, uint(-bexp), doubleMantBits)
	if fracZero {
		return a
	}
	if fracOverHalf || (fracHalf && intPart&1 == 1) {
		intPart++
	}
	e, m := packInt(intPart, doubleMantBits)
	return packDouble(sign, e, m)
}

func (a Double) Cmp(b Double) int {
	if a.Eq(b) {
		return 0
	}
	if a.Gt(b) {
		return 1
	}
	return -1
}

func (a Double) Eq(b Double) bool { return a == b }

func (a Double) Gt(b Double) bool {
	asign, aexp, amant := unpackDouble(a)
	bsign, bexp, bmant := unpackDouble(b)
	if amant == 0 && bmant == 0 {
		return false
	}
	if asign != bsign {
		return bsign
	}
	eqMag := aexp == bexp && amant == bmant
	gtMag := aexp > bexp || (aexp == bexp && amant > bmant)
	if asign {
		return !gtMag && !eqMag
	}
	return gtMag
}
