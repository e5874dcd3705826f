package mbf

import "math/bits"

// This file holds the shared fixed-width-mantissa arithmetic core used by
// both Single and Double. It operates on the unpacked (sign, biased
// exponent, mantissa) triples produced by unpackSingle/unpackDouble, with
// mantissaBits identifying which of the two formats is in play (23 or 55).
// Single and Double's Add/Sub/Mul/Div methods in arith.go are thin
// pack/unpack wrappers around these routines.

// roundShiftRight shifts n right by k bits (k >= 1), rounding the result to
// nearest, ties to even.
func roundShiftRight(n uint64, k uint) uint64 {
	if k == 0 {
		return n
	}
	if k >= 64 {
		return 0
	}
	half := uint64(1) << (k - 1)
	rem := n & (uint64(1)<<k - 1)
	q := n >> k
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}

// normalizeRound brings mant (with the given extra low-order sticky flag
// accounted for) to exactly mantissaBits+1 significant bits, rounding to
// nearest-even and adjusting exp for every bit shifted away or added.
func normalizeRound(exp int, mant uint64, mantissaBits uint, sticky bool) (int, uint64) {
	if mant == 0 {
		return 0, 0
	}
	for {
		hb := bits.Len64(mant) - 1
		switch {
		case hb > int(mantissaBits):
			drop := uint(hb - int(mantissaBits))
			lowMask := uint64(1)<<drop - 1
			rem := mant & lowMask
			dropSticky := sticky || rem&(lowMask>>1) != 0
			half := uint64(1) << (drop - 1)
			mant >>= drop
			exp += int(drop)
			if rem > half || (rem == half && (dropSticky || mant&1 == 1)) {
				mant++
			}
			sticky = false
			continue
		case hb < int(mantissaBits):
			mant <<= 1
			exp--
			continue
		}
		return exp, mant
	}
}

// addCore adds two same-format MBF numbers given as unpacked triples and
// returns the result's biased exponent and mantissa, normalized and rounded
// to nearest-even.
func addCore(aSign bool, aExp int, aMant uint64, bSign bool, bExp int, bMant uint64, mantissaBits uint) (sign bool, exp int, mant uint64) {
	if aMant == 0 {
		return bSign, bExp, bMant
	}
	if bMant == 0 {
		return aSign, aExp, aMant
	}
	if aExp < bExp || (aExp == bExp && aMant < bMant) {
		aSign, aExp, aMant, bSign, bExp, bMant = bSign, bExp, bMant, aSign, aExp, aMant
	}
	diff := uint(aExp - bExp)
	var sticky bool
	if diff > 0 {
		if diff >= 64 {
			sticky = bMant != 0
			bMant = 0
		} else {
			sticky = bMant&(uint64(1)<<diff-1) != 0
			bMant >>= diff
		}
	}
	if aSign == bSign {
		sum := aMant + bMant
		exp, mant = normalizeRound(aExp, sum, mantissaBits, sticky)
		return aSign, exp, mant
	}
	diffMant := aMant - bMant
	if diffMant == 0 {
		return false, 0, 0
	}
	exp, mant = normalizeRound(aExp, diffMant, mantissaBits, sticky)
	return aSign, exp, mant
}

func bitLen128(hi, lo uint64) int {
	if hi != 0 {
		return 64 + bits.Len64(hi)
	}
	return bits.Len64(lo)
}

// shiftRight128 shifts the 128-bit value (hi, lo) right by n bits
// (0 < n < 128), reporting whether any of the shifted-out bits were set.
func shiftRight128(hi, lo uint64, n uint) (res uint64, sticky bool) {
	switch {
	case n >= 128:
		return 0, hi != 0 || lo != 0
	case n == 0:
		return lo, false
	case n < 64:
		sticky = lo&(uint64(1)<<n-1) != 0
		res = (hi << (64 - n)) | (lo >> n)
		return
	default:
		m := n - 64
		sticky = lo != 0 || (m > 0 && hi&(uint64(1)<<m-1) != 0)
		res = hi >> m
		return
	}
}

// shiftRightRound128 shifts (hi, lo) right by n bits (n >= 1), rounding to
// nearest, ties to even.
func shiftRightRound128(hi, lo uint64, n uint) uint64 {
	res1, sticky1 := shiftRight128(hi, lo, n-1)
	roundBit := res1 & 1
	final := res1 >> 1
	if roundBit == 1 && (sticky1 || final&1 == 1) {
		final++
	}
	return final
}

// mulCore multiplies two mantissas (each mantissaBits+1 significant bits)
// and returns a result normalized to mantissaBits+1 bits together with its
// biased exponent, aExp+bExp-129-mantissaBits plus the normalizing shift.
func mulCore(aExp int, aMant uint64, bExp int, bMant uint64, mantissaBits uint) (exp int, mant uint64) {
	hi, lo := bits.Mul64(aMant, bMant)
	hb := bitLen128(hi, lo)
	shift := hb - int(mantissaBits+1)
	var m uint64
	if shift <= 0 {
		m = lo << uint(-shift)
	} else {
		m = shiftRightRound128(hi, lo, uint(shift))
		if bits.Len64(m)-1 > int(mantissaBits) {
			m >>= 1
			shift++
		}
	}
	exp = aExp + bExp - expBias - int(mantissaBits) - 1 + shift
	mant = m
	return
}

// divCore divides aMant/bMant (each mantissaBits+1 significant bits) to
// mantissaBits+1 bits of quotient precision, rounded to nearest-even.
func divCore(aExp int, aMant uint64, bExp int, bMant uint64, mantissaBits uint) (exp int, mant uint64) {
	shift := int(mantissaBits) + 2
	hi := aMant >> uint(64-shift)
	lo := aMant << uint(shift)
	q, r := bits.Div64(hi, lo, bMant)
	sticky := r != 0
	e0 := aExp - bExp - shift + expBias + int(mantissaBits) + 1
	return normalizeRound(e0, q, mantissaBits, sticky)
}

// packInt packs a plain non-negative integer magnitude n (no implicit
// leading-bit convention; n may have any number of significant bits) into
// a normalized (exp, mant) pair, rounding to nearest-even if n has more
// than mantissaBits+1 bits.
func packInt(n uint64, mantissaBits uint) (exp int, mant uint64) {
	if n == 0 {
		return 0, 0
	}
	hb := bits.Len64(n) - 1
	shift := int(mantissaBits) - hb
	if shift >= 0 {
		mant = n << uint(shift)
	} else {
		mant = roundShiftRight(n, uint(-shift))
		if bits.Len64(mant)-1 > int(mantissaBits) {
			mant >>= 1
			shift--
		}
	}
	exp = -shift + expBias + int(mantissaBits) + 1
	return
}

// truncMant splits a normalized mantissa representing value = mant *
// 2^-fracBits into its integer part and information about the discarded
// fraction (used by Trunc/Floor/Round).
func truncMant(mant uint64, fracBits, mantissaBits uint) (intPart uint64, fracZero, fracHalf, fracOverHalf bool) {
	if fracBits > mantissaBits+1 {
		return 0, false, false, false
	}
	if fracBits == mantissaBits+1 {
		top := uint64(1) << mantissaBits
		return 0, false, mant == top, mant > top
	}
	intPart = mant >> fracBits
	rem := mant & (uint64(1)<<fracBits - 1)
	half := uint64(1) << (fracBits - 1)
	return intPart, rem == 0, rem == half, rem > half
}
