package ieee

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Format describes an IEEE-754 binary interchange format.
type Format struct {
	MantBits uint // stored significand bits, excluding the hidden bit
	ExpBits  uint
	Bias     int
}

// Binary interchange formats.
var (
	Float64 = &Format{MantBits: 52, ExpBits: 11, Bias: 1023}
	Float32 = &Format{MantBits: 23, ExpBits: 8, Bias: 127}
)

// Precision is the significand width including the hidden bit.
func (f *Format) Precision() uint {
	return f.MantBits + 1
}

// MinExponent is the unbiased exponent of the smallest normal value.
func (f *Format) MinExponent() int {
	return 1 - f.Bias
}

// MaxExponent is the unbiased exponent of the largest finite value.
func (f *Format) MaxExponent() int {
	return f.Bias
}

// MinULPExponent is the exponent of the smallest subnormal value.
func (f *Format) MinULPExponent() int {
	return f.MinExponent() - int(f.MantBits)
}

// HiddenBit is the implicit leading significand bit of normal values.
func (f *Format) HiddenBit() uint64 {
	return 1 << f.MantBits
}

func (f *Format) expMask() uint64 {
	return 1<<f.ExpBits - 1
}

// Class classifies a floating point value.
type Class uint8

// Classes.
const (
	Zero Class = iota
	Subnormal
	Normal
	Infinite
	NaN
)

var classNames = [...]string{
	Zero:      "zero",
	Subnormal: "subnormal",
	Normal:    "normal",
	Infinite:  "infinite",
	NaN:       "nan",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}

	return "unknown"
}

// Finite reports whether the class is zero, subnormal or normal.
func (c Class) Finite() bool {
	return c <= Normal
}

// Decomposed is a floating point value split into its parts.
//
// For finite values:
//
//  value = (-1)^Negative * Significand * 2^(Exponent - MantBits)
//
// Subnormals carry the minimum normal exponent and no hidden bit.
type Decomposed struct {
	Negative    bool
	Exponent    int
	Significand uint64
	Class       Class
	Format      *Format
}

// ULPExponent returns the exponent of the lowest significand bit.
func (d Decomposed) ULPExponent() int {
	return d.Exponent - int(d.Format.MantBits)
}

// IsPowerOfTwoBoundary reports whether d is a normal power of two above the
// smallest normal value. The gap to the next smaller value is then half the
// gap to the next larger one.
func (d Decomposed) IsPowerOfTwoBoundary() bool {
	return d.Class == Normal &&
		d.Significand == d.Format.HiddenBit() &&
		d.Exponent > d.Format.MinExponent()
}

// FromBits decomposes the raw bits of a value in the given format.
func FromBits(b uint64, f *Format) Decomposed {
	d := Decomposed{Format: f}

	d.Negative = b>>(f.MantBits+f.ExpBits)&1 == 1
	biased := int(b >> f.MantBits & f.expMask())
	mant := b & (f.HiddenBit() - 1)

	switch {
	case biased == int(f.expMask()) && mant != 0:
		d.Class = NaN
		d.Significand = mant
	case biased == int(f.expMask()):
		d.Class = Infinite
	case biased == 0 && mant == 0:
		d.Class = Zero
		d.Exponent = f.MinExponent()
	case biased == 0:
		d.Class = Subnormal
		d.Exponent = f.MinExponent()
		d.Significand = mant
	default:
		d.Class = Normal
		d.Exponent = biased - f.Bias
		d.Significand = mant | f.HiddenBit()
	}

	return d
}

// Decompose64 decomposes a float64.
func Decompose64(v float64) Decomposed {
	return FromBits(math.Float64bits(v), Float64)
}

// Decompose32 decomposes a float32.
func Decompose32(v float32) Decomposed {
	return FromBits(uint64(math.Float32bits(v)), Float32)
}

// Decompose decomposes either float width, selected by the size of F.
func Decompose[F constraints.Float](v F) Decomposed {
	if unsafe.Sizeof(v) == 4 {
		return Decompose32(float32(v))
	}

	return Decompose64(float64(v))
}

// Bits reassembles d into raw bits of its format. Significands outside the
// format's range panic.
func (d Decomposed) Bits() uint64 {
	f := d.Format

	var b uint64
	switch d.Class {
	case Zero:
	case NaN:
		mant := d.Significand & (f.HiddenBit() - 1)
		if mant == 0 {
			mant = f.HiddenBit() >> 1
		}
		b = f.expMask()<<f.MantBits | mant
	case Infinite:
		b = f.expMask() << f.MantBits
	case Subnormal:
		if d.Significand >= f.HiddenBit() {
			panic("ieee: subnormal significand too large")
		}
		b = d.Significand
	case Normal:
		if d.Significand>>f.MantBits != 1 {
			panic("ieee: normal significand not normalized")
		}
		b = uint64(d.Exponent+f.Bias)<<f.MantBits | d.Significand&(f.HiddenBit()-1)
	}

	if d.Negative {
		b |= 1 << (f.MantBits + f.ExpBits)
	}

	return b
}

// Float64 reassembles a Float64-format value.
func (d Decomposed) Float64() float64 {
	return math.Float64frombits(d.Bits())
}

// Float32 reassembles a Float32-format value.
func (d Decomposed) Float32() float32 {
	return math.Float32frombits(uint32(d.Bits()))
}
