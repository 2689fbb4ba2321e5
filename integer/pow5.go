package integer

import (
	"fmt"
	"sync"
)

// smallPow5 holds 5^0 through 5^27, the powers that fit in a uint64.
var smallPow5 = func() (t [28]uint64) {
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 5
	}

	return t
}()

// SmallPow5 returns 5^p for 0 <= p < 28.
func SmallPow5(p int) uint64 {
	return smallPow5[p]
}

// maxPow5 bounds the cache. Conversions of float64 need well under 1500.
const maxPow5 = 4096

type pow5Cache struct {
	mu    sync.Mutex
	table []Unsigned
}

var pow5s = &pow5Cache{}

// Pow5 returns 5^p. Large powers are computed once and shared.
func Pow5(p int) Unsigned {
	if p < 0 || p >= maxPow5 {
		panic(fmt.Sprintf("integer: power of five out of range: %d", p))
	}

	if p < len(smallPow5) {
		return FromUint64(smallPow5[p])
	}

	pow5s.mu.Lock()
	defer pow5s.mu.Unlock()

	return pow5s.get(p)
}

// Pow5Lsh returns 5^p5 * 2^p2.
func Pow5Lsh(p5 int, p2 uint) Unsigned {
	return Pow5(p5).Lsh(p2)
}

// get must be called with mu held.
func (c *pow5Cache) get(p int) Unsigned {
	if p < len(smallPow5) {
		return FromUint64(smallPow5[p])
	}

	if p < len(c.table) && !c.table[p].IsZero() {
		return c.table[p]
	}

	// 5^p = 5^⌊p/2⌋ * 5^⌈p/2⌉
	lo := p / 2
	v := c.get(lo).Mul(c.get(p - lo))

	if p >= len(c.table) {
		grown := make([]Unsigned, p+1)
		copy(grown, c.table)
		c.table = grown
	}
	c.table[p] = v

	return v
}
