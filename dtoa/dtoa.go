package dtoa

import (
	"math/bits"

	"github.com/calebcase/floatdec/decimal"
	"github.com/calebcase/floatdec/ieee"
	"github.com/calebcase/floatdec/integer"
)

// Shortest returns the shortest decimal digits that read back as d, choosing
// the candidate nearest to d (ties to an even last digit).
//
// Zero yields empty digits. Infinities and NaN panic; callers format those
// themselves.
func Shortest(d ieee.Decomposed) decimal.Digits {
	switch d.Class {
	case ieee.Zero:
		return decimal.Digits{Negative: d.Negative, Exact: true}
	case ieee.Infinite, ieee.NaN:
		panic("dtoa: " + d.Class.String() + " has no digits")
	}

	p := newProblem(d)

	var out decimal.Digits
	if p.fits64() {
		out = p.generate64()
	} else {
		out = p.generateBig()
	}

	out.Negative = d.Negative

	return out
}

// problem is value = B/S * 10^k with margins M+ (above) and M- (below), each
// kept as factors 2^x * 5^y (times the significand for B).
type problem struct {
	f uint64

	b2, s2, mp2, mm2 int
	b5, s5, m5       int

	k int

	// inclusive is true when the margins themselves read back as the
	// value: an even significand wins the tie when parsing.
	inclusive bool

	// lowerMarginHalved is true for normal powers of two: the next smaller
	// value is half as far away as the next larger one.
	lowerMarginHalved bool
}

func newProblem(d ieee.Decomposed) *problem {
	p := &problem{
		f:                 d.Significand,
		inclusive:         d.Significand&1 == 0,
		lowerMarginHalved: d.IsPowerOfTwoBoundary(),
	}

	e := d.ULPExponent()

	// Scale everything by 2^(1+extra) so both half-gaps are integral:
	//
	//  B = f * 2^(e+1+extra)   S = 2^(1+extra)
	//  M+ = 2^(e+extra)        M- = 2^e
	extra := 0
	if p.lowerMarginHalved {
		extra = 1
	}

	p.b2 = e + 1 + extra
	p.s2 = 1 + extra
	p.mp2 = e + extra
	p.mm2 = e

	// Leading bit exponent. The value lies below 2^(lead+1), and so does
	// the upper margin, so 10^k with k = ⌈(lead+1)*log10(2)⌉ bounds it. k
	// is at most one too large.
	lead := e + bits.Len64(p.f) - 1
	p.k = ceilLog10Pow2(lead + 1)

	if p.k >= 0 {
		p.s5 += p.k
		p.s2 += p.k
	} else {
		p.b5 -= p.k
		p.m5 -= p.k
		p.b2 -= p.k
		p.mp2 -= p.k
		p.mm2 -= p.k
	}

	c := min(p.b2, p.s2, p.mp2, p.mm2)
	p.b2 -= c
	p.s2 -= c
	p.mp2 -= c
	p.mm2 -= c

	return p
}

// fits64 reports whether 10*S (and so every quantity in the loop) fits in 63
// bits.
func (p *problem) fits64() bool {
	if p.s5 >= 28 || p.b5 >= 28 {
		return false
	}

	return bits.Len64(integer.SmallPow5(p.s5))+p.s2 <= 59
}

func (p *problem) low(c int) bool {
	return c < 0 || (p.inclusive && c == 0)
}

func (p *problem) high(c int) bool {
	return c > 0 || (p.inclusive && c == 0)
}

// last resolves the final digit q given the low/high tests and the sign of
// 2R - S.
func last(q int, low, high bool, half int) (digit int, up bool) {
	switch {
	case low && high:
		up = half > 0 || (half == 0 && q&1 == 1)
	case high:
		up = true
	}

	if up {
		q++
	}

	return q, up
}

func (p *problem) generate64() decimal.Digits {
	s := integer.SmallPow5(p.s5) << uint(p.s2)
	b := p.f * integer.SmallPow5(p.b5) << uint(p.b2)
	mp := integer.SmallPow5(p.m5) << uint(p.mp2)
	mm := integer.SmallPow5(p.m5) << uint(p.mm2)

	out := decimal.Digits{Digits: make([]byte, 0, 20), Exponent: p.k}

	for {
		b *= 10
		mp *= 10
		mm *= 10

		q := int(b / s)
		b %= s

		low := p.low(cmp64(b, mm))
		high := p.high(cmp64(b+mp, s))

		if len(out.Digits) == 0 && q == 0 && !high {
			// k was one too large.
			out.Exponent--
			continue
		}

		if !low && !high {
			out.Digits = append(out.Digits, byte('0'+q))
			continue
		}

		q, out.RoundedUp = last(q, low, high, cmp64(2*b, s))
		out.Digits = append(out.Digits, byte('0'+q))
		out.Exact = b == 0 && !out.RoundedUp

		return out.Trim()
	}
}

func (p *problem) generateBig() decimal.Digits {
	s := integer.Pow5Lsh(p.s5, uint(p.s2))
	b := integer.FromUint64(p.f).Mul(integer.Pow5Lsh(p.b5, uint(p.b2)))
	mp := integer.Pow5Lsh(p.m5, uint(p.mp2))
	mm := mp
	if p.mm2 != p.mp2 {
		mm = integer.Pow5Lsh(p.m5, uint(p.mm2))
	}

	// Shift everything by the divisor's normalization so quotient digits
	// can be estimated from the top word.
	s, shift := s.Normalize()
	b = b.Lsh(shift)
	mp = mp.Lsh(shift)
	mm = mm.Lsh(shift)

	out := decimal.Digits{Digits: make([]byte, 0, 20), Exponent: p.k}

	for {
		var q int
		q, b = b.MulSmall(10).QuoRemDigit(s)
		mp = mp.MulSmall(10)
		mm = mm.MulSmall(10)

		low := p.low(b.Cmp(mm))
		high := p.high(b.Add(mp).Cmp(s))

		if len(out.Digits) == 0 && q == 0 && !high {
			// k was one too large.
			out.Exponent--
			continue
		}

		if !low && !high {
			out.Digits = append(out.Digits, byte('0'+q))
			continue
		}

		q, out.RoundedUp = last(q, low, high, b.Lsh(1).Cmp(s))
		out.Digits = append(out.Digits, byte('0'+q))
		out.Exact = b.IsZero() && !out.RoundedUp

		return out.Trim()
	}
}

func cmp64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// ceilLog10Pow2 returns ⌈x*log10(2)⌉ for -1600 <= x <= 1600.
func ceilLog10Pow2(x int) int {
	// log10(2) ≈ 78913 / 2^18
	return -((-x * 78913) >> 18)
}
