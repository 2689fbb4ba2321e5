package ryu

import (
	"fmt"
	"math/big"
)

// Range of the power of ten table. float64 formatting needs roughly
// [-292, 325].
const (
	pow10MinExp = -348
	pow10MaxExp = 347
)

// pow10Table holds 128-bit significands {lo, hi} of 10^q, normalized so the
// top bit is set and rounded down:
//
//  10^q ≈ (hi*2^64 + lo) * 2^(⌊q*log2(10)⌋ - 127)
//
// Entries for 0 <= q <= 55 are exact.
var pow10Table = buildPow10Table()

func buildPow10Table() [][2]uint64 {
	t := make([][2]uint64, pow10MaxExp-pow10MinExp+1)

	ten := big.NewInt(10)
	mask := new(big.Int).SetUint64(^uint64(0))

	for q := pow10MinExp; q <= pow10MaxExp; q++ {
		p := new(big.Int).Exp(ten, big.NewInt(int64(abs(q))), nil)

		var m *big.Int
		if q >= 0 {
			m = p
			if n := m.BitLen(); n > 128 {
				m.Rsh(m, uint(n-128))
			} else {
				m.Lsh(m, uint(128-n))
			}
		} else {
			// 2^(b+127) / 10^-q lies strictly between 2^127 and 2^128.
			m = new(big.Int).Lsh(big.NewInt(1), uint(p.BitLen()+127))
			m.Quo(m, p)
		}

		if m.BitLen() != 128 {
			panic(fmt.Sprintf("ryu: bad table entry for 10^%d", q))
		}

		lo := new(big.Int).And(m, mask).Uint64()
		hi := new(big.Int).Rsh(m, 64).Uint64()

		t[q-pow10MinExp] = [2]uint64{lo, hi}
	}

	return t
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
