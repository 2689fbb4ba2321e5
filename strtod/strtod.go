package strtod

import (
	"math"
	"math/bits"

	"github.com/calebcase/floatdec/ieee"
	"github.com/calebcase/floatdec/integer"
)

// Decimal exponent limits (for 0.D * 10^Exponent) beyond which the result is
// certainly infinite or zero.
const (
	maxDecimalExponent = 310
	minDecimalExponent = -325
)

// Options controls a conversion.
type Options struct {
	// Hint requests an accurate Rounding record. Without it the exact fast
	// paths may report Direction Unknown.
	Hint bool
}

// Direction tells where the exact value lies relative to the rounded result,
// by magnitude.
type Direction uint8

// Directions.
const (
	Exact Direction = iota
	Below
	Above
	Unknown
)

func (d Direction) String() string {
	switch d {
	case Exact:
		return "exact"
	case Below:
		return "below"
	case Above:
		return "above"
	}

	return "unknown"
}

// Rounding records how a conversion rounded. Round and Sticky are the first
// discarded bit and the or of all the bits after it.
type Rounding struct {
	Round     bool
	Sticky    bool
	Direction Direction
}

// rounded builds the record for a result with the exact value on side dir.
// tie reports that the exact value was halfway between two doubles.
func rounded(dir Direction, tie bool) Rounding {
	switch dir {
	case Above:
		return Rounding{Round: tie, Sticky: !tie, Direction: Above}
	case Below:
		return Rounding{Round: true, Sticky: !tie, Direction: Below}
	}

	return Rounding{Direction: dir}
}

var small10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

var big10 = [...]float64{1e16, 1e32, 1e64, 1e128, 1e256}

var tiny10 = [...]float64{1e-16, 1e-32, 1e-64, 1e-128, 1e-256}

// Parse converts text to the nearest double. Text with a 0x or 0X prefix
// (after the sign) is read as a hexadecimal float.
func Parse(text string, opts Options) (float64, Rounding, error) {
	if HasHexPrefix(TrimSpace(text)) {
		return ParseHex(text)
	}

	lit, err := Scan(text)
	if err != nil {
		return 0, Rounding{}, err
	}

	v, r := Convert(lit, opts)

	return v, r, nil
}

// Convert returns the double nearest to lit (ties to even). Overflow yields
// an infinity and underflow a zero, both signed.
func Convert(lit Literal, opts Options) (float64, Rounding) {
	switch lit.Kind {
	case NaN:
		return math.NaN(), Rounding{}
	case Infinity:
		return signed(math.Inf(1), lit.Negative), Rounding{}
	}

	if lit.IsZero() {
		return signed(0, lit.Negative), Rounding{}
	}

	if lit.Exponent > maxDecimalExponent {
		return signed(math.Inf(1), lit.Negative), rounded(Below, false)
	}

	if lit.Exponent < minDecimalExponent {
		return signed(0, lit.Negative), rounded(Above, false)
	}

	v, r := convert(lit.Digits, lit.Exponent, opts)

	return signed(v, lit.Negative), r
}

func signed(v float64, negative bool) float64 {
	if negative {
		return -v
	}

	return v
}

func convert(digits []byte, decExp int, opts Options) (float64, Rounding) {
	n := len(digits)
	kDigits := min(n, 16)

	var lValue uint64
	for _, c := range digits[:kDigits] {
		lValue = lValue*10 + uint64(c-'0')
	}

	dValue := float64(lValue)
	exp := decExp - kDigits

	if n <= 15 {
		if v, r, ok := fast(lValue, dValue, n, exp, opts); ok {
			return v, r
		}
	}

	return correct(digits, decExp, estimate(dValue, exp))
}

// fast handles values whose digits are exact in a double and whose power of
// ten is exact too, so a single IEEE operation rounds correctly.
func fast(lValue uint64, dValue float64, n, exp int, opts Options) (float64, Rounding, bool) {
	switch {
	case exp == 0:
		return dValue, Rounding{}, true
	case exp > 0 && exp <= 22:
		v := dValue * small10[exp]
		if exactProduct(lValue, exp) {
			return v, Rounding{}, true
		}
		if !opts.Hint {
			return v, Rounding{Direction: Unknown}, true
		}
	case exp > 22 && exp <= 22+15-n:
		// Move some of the power into the digits, which stay exact.
		slop := 15 - n
		v := dValue * small10[slop] * small10[exp-slop]
		if exactProduct(lValue, exp) {
			return v, Rounding{}, true
		}
		if !opts.Hint {
			return v, Rounding{Direction: Unknown}, true
		}
	case exp < 0 && exp >= -22:
		v := dValue / small10[-exp]
		if lValue%integer.SmallPow5(-exp) == 0 {
			return v, Rounding{}, true
		}
		if !opts.Hint {
			return v, Rounding{Direction: Unknown}, true
		}
	}

	return 0, Rounding{}, false
}

// exactProduct reports whether lValue*10^exp is exactly representable: the
// 5-part must fit in the significand.
func exactProduct(lValue uint64, exp int) bool {
	if exp >= 28 {
		return false
	}

	hi, lo := bits.Mul64(lValue, integer.SmallPow5(exp))

	return hi == 0 && lo < 1<<53
}

// estimate returns a double close to dValue*10^exp, finite and non-zero.
func estimate(dValue float64, exp int) float64 {
	v := dValue

	switch {
	case exp > 0:
		v *= 0x1p-64
		v *= small10[exp&15]
		for j, e := 0, exp>>4; e != 0; j, e = j+1, e>>1 {
			if e&1 != 0 {
				v *= big10[j]
			}
		}
		v *= 0x1p64
	case exp < 0:
		exp = -exp
		v *= 0x1p64
		v /= small10[exp&15]
		for j, e := 0, exp>>4; e != 0; j, e = j+1, e>>1 {
			if e&1 != 0 {
				v *= tiny10[j]
			}
		}
		v *= 0x1p-64
	}

	switch {
	case math.IsInf(v, 1):
		v = math.MaxFloat64
	case v == 0:
		v = math.Float64frombits(1)
	}

	return v
}

// correct walks v one ULP at a time toward D = 0.digits * 10^decExp until it
// is the nearest double.
func correct(digits []byte, decExp int, v float64) (float64, Rounding) {
	d2 := decExp - len(digits)
	d5 := d2
	bigD := integer.FromDigits(digits)

	for {
		dec := ieee.Decompose64(v)
		m := dec.Significand
		boundary := dec.IsPowerOfTwoBoundary()

		// B = m * 2^b2, H = 2^hb2 is the half gap below the candidate.
		b2 := dec.ULPExponent()
		hb2 := b2 - 1
		if boundary {
			hb2--
		}

		c2 := min(b2, d2, hb2)
		c5 := min(0, d5)

		bigB := integer.FromUint64(m).Mul(integer.Pow5Lsh(-c5, uint(b2-c2)))
		scaledD := bigD.Mul(integer.Pow5Lsh(d5-c5, uint(d2-c2)))
		bigH := integer.Pow5Lsh(-c5, uint(hb2-c2))

		var diff integer.Unsigned
		var toward Direction

		switch bigB.Cmp(scaledD) {
		case 0:
			return v, Rounding{}
		case 1:
			diff = bigB.Sub(scaledD)
			toward = Below
		default:
			diff = scaledD.Sub(bigB)
			toward = Above
			if boundary {
				// The gap above is twice the gap below.
				bigH = bigH.Lsh(1)
			}
		}

		switch diff.Cmp(bigH) {
		case -1:
			return v, rounded(toward, false)
		case 0:
			if m&1 == 0 {
				return v, rounded(toward, true)
			}

			return step(v, toward), rounded(opposite(toward), true)
		}

		v = step(v, toward)
		switch {
		case v == 0:
			return v, rounded(Above, false)
		case math.IsInf(v, 1):
			return v, rounded(Below, false)
		}
	}
}

// step moves positive v one ULP in direction dir.
func step(v float64, dir Direction) float64 {
	b := math.Float64bits(v)
	if dir == Above {
		b++
	} else {
		b--
	}

	return math.Float64frombits(b)
}

func opposite(d Direction) Direction {
	switch d {
	case Below:
		return Above
	case Above:
		return Below
	}

	return d
}
