package ryu

import (
	"math/bits"
	"strconv"

	"github.com/calebcase/floatdec/decimal"
	"github.com/calebcase/floatdec/ieee"
)

// Shortest returns the shortest decimal digits that read back as d, choosing
// the candidate nearest to d (ties to an even last digit).
//
// Zero yields empty digits. Infinities and NaN panic.
func Shortest(d ieee.Decomposed) decimal.Digits {
	switch d.Class {
	case ieee.Zero:
		return decimal.Digits{Negative: d.Negative, Exact: true}
	case ieee.Infinite, ieee.NaN:
		panic("ryu: " + d.Class.String() + " has no digits")
	}

	out := shortest(d)
	out.Negative = d.Negative

	return out
}

func shortest(d ieee.Decomposed) decimal.Digits {
	mant, exp := d.Significand, d.ULPExponent()

	// An exact integer: its neighbours are whole numbers too, so no
	// shorter string is admissible.
	if exp <= 0 && bits.TrailingZeros64(mant) >= -exp {
		mant >>= uint(-exp)

		return trim(mant, mant, mant, true, false)
	}

	ml, mc, mu, e2 := bounds(d)
	if e2 == 0 {
		return trim(ml, mc, mu, true, false)
	}

	// 10^q is the smallest power of ten above 2^-e2.
	q := mulByLog2Log10(-e2) + 1

	dl, _, dl0 := mulPow10(ml, e2, q)
	dc, _, dc0 := mulPow10(mc, e2, q)
	du, e2, du0 := mulPow10(mu, e2, q)
	if e2 >= 0 {
		panic("ryu: not enough significant bits after mulPow10")
	}

	if q > 55 {
		// Large positive powers of ten are truncated in the table.
		dl0, dc0, du0 = false, false, false
	}
	if q < 0 && q >= -24 {
		// Division by a small power of ten may still be exact.
		if divisibleByPower5(ml, -q) {
			dl0 = true
		}
		if divisibleByPower5(mc, -q) {
			dc0 = true
		}
		if divisibleByPower5(mu, -q) {
			du0 = true
		}
	}

	// Split off the binary fraction.
	extra := uint(-e2)
	extraMask := uint64(1)<<extra - 1
	half := uint64(1) << (extra - 1)

	dl, fracl := dl>>extra, dl&extraMask
	dc, fracc := dc>>extra, dc&extraMask
	du, fracu := du>>extra, du&extraMask

	// The upper bound is admissible when it was truncated, or when it is
	// exact and the significand is even (ties parse to even).
	uok := !du0 || fracu > 0
	if du0 && fracu == 0 {
		uok = mant&1 == 0
	}
	if !uok {
		du--
	}

	var cup bool
	if dc0 {
		cup = fracc > half || (fracc == half && dc&1 == 1)
	} else {
		cup = fracc>>(extra-1) == 1
	}

	// The lower bound is admissible only when exact and even.
	lok := dl0 && fracl == 0 && mant&1 == 0
	if !lok {
		dl++
	}

	out := trim(dl, dc, du, dc0 && fracc == 0, cup)
	out.Exponent -= q

	return out
}

// trim removes trailing digits from central while the interval
// [lower, upper] still holds a number with that many fewer digits, then
// rounds central to the kept digits.
//
// c0 reports whether central is exact; cup whether it should round up if no
// digit is trimmed.
func trim(lower, central, upper uint64, c0, cup bool) decimal.Digits {
	trimmed := 0
	bumped := false
	var next uint64

	for upper > 0 {
		l := lower / 10
		if lower%10 != 0 {
			l++
		}
		c, cdigit := central/10, central%10
		u := upper / 10

		if l > u {
			break
		}

		// central sits just below l: the closest admissible value at this
		// length is l itself.
		if l == c+1 && c < u {
			// The digits no longer describe central, so the result is
			// inexact even if every dropped digit was zero.
			c++
			cdigit = 0
			cup = false
			bumped = true
		}

		// c0 holds only while every digit dropped below next is zero;
		// next is the most significant dropped digit and decides rounding.
		trimmed++
		c0 = c0 && next == 0
		next = cdigit
		lower, central, upper = l, c, u
	}

	if trimmed > 0 {
		cup = next > 5 ||
			(next == 5 && !c0) ||
			(next == 5 && c0 && central&1 == 1)
	}

	up := central < upper && cup
	if up {
		central++
	}

	digits := strconv.AppendUint(make([]byte, 0, 20), central, 10)

	out := decimal.Digits{
		Digits:    digits,
		Exponent:  len(digits) + trimmed,
		Exact:     c0 && next == 0 && !up && !bumped,
		RoundedUp: up,
	}

	return out.Trim()
}

// bounds returns the interval of values that round to d as (l, c, u)*2^e2.
func bounds(d ieee.Decomposed) (lower, central, upper uint64, e2 int) {
	mant, exp := d.Significand, d.ULPExponent()

	if d.IsPowerOfTwoBoundary() {
		// The gap below is half the gap above.
		return 4*mant - 1, 4 * mant, 4*mant + 2, exp - 2
	}

	return 2*mant - 1, 2 * mant, 2*mant + 1, exp - 1
}

// mulPow10 returns m*2^e2*10^q as resM*2^resE with resM typically 63 or 64
// bits wide, and whether the truncated bits were all zero.
func mulPow10(m uint64, e2, q int) (resM uint64, resE int, exact bool) {
	if q == 0 {
		return m << 8, e2 - 8, true
	}

	if q < pow10MinExp || pow10MaxExp < q {
		panic("ryu: power of ten out of range")
	}

	pow := pow10Table[q-pow10MinExp]
	if q < 0 {
		// Inverse powers of ten must be rounded up.
		pow[0]++
	}

	e2 += mulByLog10Log2(q) - 127 + 119

	l1, l0 := bits.Mul64(m, pow[0])
	h1, h0 := bits.Mul64(m, pow[1])
	mid, carry := bits.Add64(l1, h0, 0)
	h1 += carry

	return h1<<9 | mid>>55, e2, mid<<9 == 0 && l0 == 0
}

func divisibleByPower5(m uint64, k int) bool {
	if m == 0 {
		return true
	}

	for i := 0; i < k; i++ {
		if m%5 != 0 {
			return false
		}
		m /= 5
	}

	return true
}

// mulByLog2Log10 returns ⌊x*log10(2)⌋ for -1600 <= x <= 1600.
func mulByLog2Log10(x int) int {
	// log(2)/log(10) ≈ 78913 / 2^18
	return (x * 78913) >> 18
}

// mulByLog10Log2 returns ⌊x*log2(10)⌋ for -500 <= x <= 500.
func mulByLog10Log2(x int) int {
	// log(10)/log(2) ≈ 108853 / 2^15
	return (x * 108853) >> 15
}
