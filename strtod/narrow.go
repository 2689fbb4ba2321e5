package strtod

import (
	"math"

	"github.com/calebcase/floatdec/ieee"
)

// Narrow converts a correctly rounded double to float32 without double
// rounding. A double sitting exactly halfway between two float32 values is
// first moved one double ULP toward the exact value described by r.
func Narrow(v float64, r Rounding) float32 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return float32(v)
	}

	if r.Direction != Above && r.Direction != Below {
		return float32(v)
	}

	if !halfway32(ieee.Decompose64(v)) {
		return float32(v)
	}

	b := math.Float64bits(v)
	if r.Direction == Above {
		b++
	} else {
		b--
	}

	return float32(math.Float64frombits(b))
}

// halfway32 reports whether d is a midpoint of the float32 grid, including
// the subnormal grid and the midpoint above the largest finite float32.
func halfway32(d ieee.Decomposed) bool {
	if d.Class != ieee.Normal || d.Exponent > ieee.Float32.MaxExponent() {
		return false
	}

	// z is the position in the double significand of the bit worth half a
	// float32 ULP.
	z := int(ieee.Float64.MantBits - ieee.Float32.Precision())
	if d.Exponent < ieee.Float32.MinExponent() {
		z = ieee.Float32.MinULPExponent() - 1 - d.ULPExponent()
	}

	if z < 0 || z > int(ieee.Float64.MantBits) {
		return false
	}

	mask := uint64(1)<<(z+1) - 1

	return d.Significand&mask == 1<<z
}
