package strtod

import (
	"math"
	"math/bits"

	"github.com/calebcase/floatdec/ieee"
)

// maxHexDigits is the number of significant hex digits packed into the
// significand; later non-zero digits only set the sticky bit.
const maxHexDigits = 15

// maxBinaryExponent saturates the binary exponent. Anything this far out is
// infinite or zero whatever the digits.
const maxBinaryExponent = 1 << 20

// roundUp is round to nearest even indexed by lsb<<2 | round<<1 | sticky.
var roundUp = [8]bool{
	false, false, false, true,
	false, false, true, true,
}

// ParseHex parses a hexadecimal float:
//
//  [+-] 0(x|X) hexdigits [. hexdigits] (p|P) [+-] digits [f|F|d|D]
//
// The binary exponent is required. Surrounding white space is ignored.
func ParseHex(text string) (float64, Rounding, error) {
	s := TrimSpace(text)

	i := 0
	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	if i+1 >= len(s) || s[i] != '0' || (s[i+1] != 'x' && s[i+1] != 'X') {
		return 0, Rounding{}, formatError(text, "missing 0x prefix")
	}
	i += 2

	var (
		mant     uint64
		packed   int
		exp      int
		sticky   bool
		sawDigit bool
		sawDot   bool
	)

scan:
	for ; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if sawDot {
				return 0, Rounding{}, formatError(text, "multiple points")
			}
			sawDot = true
			continue
		}

		h, ok := unhex(c)
		if !ok {
			break scan
		}
		sawDigit = true

		switch {
		case packed == 0 && h == 0:
			if sawDot {
				exp -= 4
			}
		case packed < maxHexDigits:
			mant = mant<<4 | uint64(h)
			packed++
			if sawDot {
				exp -= 4
			}
		default:
			sticky = sticky || h != 0
			if !sawDot {
				exp += 4
			}
		}
	}

	if !sawDigit {
		return 0, Rounding{}, formatError(text, "no hex digits")
	}

	if i >= len(s) || (s[i] != 'p' && s[i] != 'P') {
		return 0, Rounding{}, formatError(text, "missing binary exponent")
	}
	i++

	expNegative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		expNegative = s[i] == '-'
		i++
	}

	// Digit positions shift the exponent by at most 4 per byte, so p only
	// saturates beyond what they can cancel.
	limit := maxBinaryExponent + 4*len(s)

	start := i
	p := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if p < limit {
			p = p*10 + int(s[i]-'0')
		}
	}

	if i == start {
		return 0, Rounding{}, formatError(text, "missing exponent digits")
	}

	if i < len(s) && isTypeSuffix(s[i]) {
		i++
	}

	if i != len(s) {
		return 0, Rounding{}, formatError(text, "unexpected character "+quoteByte(s[i]))
	}

	p = min(p, limit)
	if expNegative {
		p = -p
	}
	exp = min(max(exp+p, -maxBinaryExponent), maxBinaryExponent)

	v, r := assemble(mant, exp, sticky)

	return signed(v, negative), r, nil
}

// assemble rounds (mant + sticky fraction) * 2^exp to a double.
func assemble(mant uint64, exp int, sticky bool) (float64, Rounding) {
	if mant == 0 {
		return 0, Rounding{}
	}

	f := ieee.Float64
	lead := exp + bits.Len64(mant) - 1

	if lead > f.MaxExponent() {
		return math.Inf(1), rounded(Below, false)
	}

	lsb := max(lead-int(f.MantBits), f.MinULPExponent())
	shift := lsb - exp

	var round bool
	switch {
	case shift <= 0:
		mant <<= uint(-shift)
	case shift > 64:
		sticky = sticky || mant != 0
		mant = 0
	default:
		round = mant>>uint(shift-1)&1 == 1
		sticky = sticky || mant&(1<<uint(shift-1)-1) != 0
		mant >>= uint(shift)
	}

	up := roundUp[int(mant&1)<<2|b2i(round)<<1|b2i(sticky)]
	if up {
		mant++
		if mant == 1<<(f.MantBits+1) {
			mant >>= 1
			lsb++
		}
	}

	r := Rounding{Round: round, Sticky: sticky}
	switch {
	case !round && !sticky:
		r.Direction = Exact
	case up:
		r.Direction = Below
	default:
		r.Direction = Above
	}

	if mant == 0 {
		return 0, r
	}

	biased := 0
	if mant >= f.HiddenBit() {
		biased = lsb + int(f.MantBits) + f.Bias
	}

	if biased > 2*f.Bias {
		return math.Inf(1), rounded(Below, false)
	}

	return math.Float64frombits(uint64(biased)<<f.MantBits | mant&(f.HiddenBit()-1)), r
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}
