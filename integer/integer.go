package integer

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Unsigned is a non-negative integer stored as little-endian 32-bit words.
//
// The zero value is the number 0. Operations never modify their receiver or
// arguments; they return a fresh value instead.
type Unsigned struct {
	words []uint32
}

// FromUint64 returns v as an Unsigned.
func FromUint64(v uint64) Unsigned {
	switch {
	case v == 0:
		return Unsigned{}
	case v>>32 == 0:
		return Unsigned{words: []uint32{uint32(v)}}
	}

	return Unsigned{words: []uint32{uint32(v), uint32(v >> 32)}}
}

// FromDigits parses ASCII decimal digits. Any byte outside '0'..'9' panics.
func FromDigits(digits []byte) Unsigned {
	u := Unsigned{words: make([]uint32, 0, len(digits)/9+1)}

	// Nine digits always fit in a word.
	for len(digits) > 0 {
		n := len(digits)
		if n > 9 {
			n = 9
		}

		var chunk, scale uint32 = 0, 1
		for _, c := range digits[:n] {
			if c < '0' || c > '9' {
				panic(fmt.Sprintf("integer: invalid digit %q", c))
			}

			chunk = chunk*10 + uint32(c-'0')
			scale *= 10
		}

		u = u.MulAddSmall(scale, chunk)
		digits = digits[n:]
	}

	return u
}

func (u Unsigned) norm() Unsigned {
	n := len(u.words)
	for n > 0 && u.words[n-1] == 0 {
		n--
	}
	u.words = u.words[:n]

	return u
}

// IsZero reports whether u == 0.
func (u Unsigned) IsZero() bool {
	return len(u.words) == 0
}

// BitLen returns the number of bits needed to represent u.
func (u Unsigned) BitLen() int {
	n := len(u.words)
	if n == 0 {
		return 0
	}

	return (n-1)*32 + bits.Len32(u.words[n-1])
}

// Uint64 returns the low 64 bits of u and whether u fit entirely.
func (u Unsigned) Uint64() (v uint64, ok bool) {
	switch len(u.words) {
	case 0:
		return 0, true
	case 1:
		return uint64(u.words[0]), true
	case 2:
		return uint64(u.words[1])<<32 | uint64(u.words[0]), true
	}

	return uint64(u.words[1])<<32 | uint64(u.words[0]), false
}

// MulSmall returns u * m.
func (u Unsigned) MulSmall(m uint32) Unsigned {
	return u.mulAddSmall(m, 0)
}

// MulAddSmall returns u * m + a.
func (u Unsigned) MulAddSmall(m, a uint32) Unsigned {
	return u.mulAddSmall(m, a)
}

func (u Unsigned) mulAddSmall(m, a uint32) Unsigned {
	out := make([]uint32, len(u.words)+1)

	carry := uint64(a)
	for i, w := range u.words {
		p := uint64(w)*uint64(m) + carry
		out[i] = uint32(p)
		carry = p >> 32
	}
	out[len(u.words)] = uint32(carry)

	return Unsigned{words: out}.norm()
}

// Mul returns u * v.
func (u Unsigned) Mul(v Unsigned) Unsigned {
	if u.IsZero() || v.IsZero() {
		return Unsigned{}
	}

	out := make([]uint32, len(u.words)+len(v.words))

	for i, a := range u.words {
		if a == 0 {
			continue
		}

		var carry uint64
		for j, b := range v.words {
			p := uint64(a)*uint64(b) + uint64(out[i+j]) + carry
			out[i+j] = uint32(p)
			carry = p >> 32
		}
		out[i+len(v.words)] = uint32(carry)
	}

	return Unsigned{words: out}.norm()
}

// Lsh returns u << n.
func (u Unsigned) Lsh(n uint) Unsigned {
	if u.IsZero() {
		return u
	}

	ws, bs := int(n/32), n%32

	out := make([]uint32, len(u.words)+ws+1)
	if bs == 0 {
		copy(out[ws:], u.words)
	} else {
		var carry uint32
		for i, w := range u.words {
			out[ws+i] = w<<bs | carry
			carry = w >> (32 - bs)
		}
		out[ws+len(u.words)] = carry
	}

	return Unsigned{words: out}.norm()
}

// Normalize shifts u left until the high bit of its top word is set. It
// returns the shifted value and the shift applied. Zero is returned unchanged.
func (u Unsigned) Normalize() (Unsigned, uint) {
	if u.IsZero() {
		return u, 0
	}

	shift := uint(bits.LeadingZeros32(u.words[len(u.words)-1]))

	return u.Lsh(shift), shift
}

// Cmp returns -1, 0 or +1 when u is less than, equal to or greater than v.
func (u Unsigned) Cmp(v Unsigned) int {
	switch {
	case len(u.words) < len(v.words):
		return -1
	case len(u.words) > len(v.words):
		return 1
	}

	for i := len(u.words) - 1; i >= 0; i-- {
		switch {
		case u.words[i] < v.words[i]:
			return -1
		case u.words[i] > v.words[i]:
			return 1
		}
	}

	return 0
}

// Add returns u + v.
func (u Unsigned) Add(v Unsigned) Unsigned {
	if len(u.words) < len(v.words) {
		u, v = v, u
	}

	out := make([]uint32, len(u.words)+1)

	var carry uint64
	for i, w := range u.words {
		s := uint64(w) + carry
		if i < len(v.words) {
			s += uint64(v.words[i])
		}
		out[i] = uint32(s)
		carry = s >> 32
	}
	out[len(u.words)] = uint32(carry)

	return Unsigned{words: out}.norm()
}

// Sub returns u - v. It panics if v > u.
func (u Unsigned) Sub(v Unsigned) Unsigned {
	if u.Cmp(v) < 0 {
		panic("integer: subtraction would underflow")
	}

	out := make([]uint32, len(u.words))

	var borrow uint32
	for i, w := range u.words {
		var b uint32
		if i < len(v.words) {
			b = v.words[i]
		}

		out[i], borrow = bits.Sub32(w, b, borrow)
	}

	return Unsigned{words: out}.norm()
}

// QuoRemDigit returns the single decimal digit q = ⌊u/s⌋ and the remainder
// u - q*s. The divisor should be normalized (see Normalize) for the estimate
// to be tight; u must be less than 10*s.
//
// The digit is estimated from the leading words and then corrected. A digit
// that does not fit in 0..9 means the caller broke the u < 10*s contract and
// panics.
func (u Unsigned) QuoRemDigit(s Unsigned) (digit int, rem Unsigned) {
	if s.IsZero() {
		panic("integer: division by zero")
	}

	q := u.estimateQuo(s)
	if q > 10 {
		panic(fmt.Sprintf("integer: quotient digit out of range: %d", q))
	}

	prod := s.MulSmall(uint32(q))
	for prod.Cmp(u) > 0 {
		q--
		prod = prod.Sub(s)
	}

	rem = u.Sub(prod)
	for rem.Cmp(s) >= 0 {
		q++
		rem = rem.Sub(s)
	}

	if q > 9 {
		panic(fmt.Sprintf("integer: quotient digit out of range: %d", q))
	}

	return int(q), rem
}

// estimateQuo approximates ⌊u/s⌋ from the top 32 bits of s and the
// corresponding bits of u. The result is never more than a couple too large.
func (u Unsigned) estimateQuo(s Unsigned) uint64 {
	n := len(s.words)
	switch {
	case len(u.words) < n:
		return 0
	case len(u.words) > n+1:
		panic("integer: dividend too large for a single digit")
	}

	// The top two words of s, aligned so the divisor word is 32 bits wide.
	shift := uint(bits.LeadingZeros32(s.words[n-1]))

	sTop := uint64(s.words[n-1]) << shift
	if n >= 2 {
		sTop |= uint64(s.words[n-2]) >> (32 - shift)
	}

	// u < 10*s so u has at most one more word than s.
	var uTop uint64
	for i := len(u.words) - 1; i >= n-1; i-- {
		uTop = uTop<<32 | uint64(u.words[i])
	}
	uTop <<= shift
	if n >= 2 && shift > 0 {
		uTop |= uint64(u.words[n-2]) >> (32 - shift)
	}

	return uTop / sTop
}

// Big returns u as a *big.Int.
func (u Unsigned) Big() *big.Int {
	b := new(big.Int)
	for i := len(u.words) - 1; i >= 0; i-- {
		b.Lsh(b, 32)
		b.Or(b, big.NewInt(int64(u.words[i])))
	}

	return b
}

// String returns u in base 10.
func (u Unsigned) String() string {
	return u.Big().String()
}
