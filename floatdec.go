package floatdec

import (
	"math"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/floatdec/decimal"
	"github.com/calebcase/floatdec/dtoa"
	"github.com/calebcase/floatdec/ieee"
	"github.com/calebcase/floatdec/ryu"
	"github.com/calebcase/floatdec/strtod"
)

// Error is the error class for this package. Parse failures are in the
// strtod class and are wrapped again here.
var Error = errs.Class("floatdec")

// FormatError reports text that is not a number.
type FormatError = strtod.FormatError

// FormatDouble returns the shortest text that parses back to v.
func FormatDouble(v float64) string {
	return string(AppendDouble(make([]byte, 0, 24), v))
}

// FormatFloat returns the shortest text that parses back to v.
func FormatFloat(v float32) string {
	return string(AppendFloat(make([]byte, 0, 16), v))
}

// AppendDouble appends the text form of v to dst.
func AppendDouble(dst []byte, v float64) []byte {
	return appendFloat(dst, v)
}

// AppendFloat appends the text form of v to dst.
func AppendFloat(dst []byte, v float32) []byte {
	return appendFloat(dst, v)
}

func appendFloat[F constraints.Float](dst []byte, v F) []byte {
	d := ieee.Decompose(v)

	switch d.Class {
	case ieee.NaN:
		return append(dst, "NaN"...)
	case ieee.Infinite:
		if d.Negative {
			return append(dst, "-Infinity"...)
		}
		return append(dst, "Infinity"...)
	}

	return ryu.Shortest(d).AppendText(dst)
}

// FormatDigits returns the text form of already generated digits.
func FormatDigits(d decimal.Digits) string {
	return d.Text()
}

// DoubleDigits returns the shortest digits of a finite v.
func DoubleDigits(v float64) decimal.Digits {
	return shortest(v, ryu.Shortest)
}

// FloatDigits returns the shortest digits of a finite v.
func FloatDigits(v float32) decimal.Digits {
	return shortest(v, ryu.Shortest)
}

// ExactDoubleDigits is DoubleDigits computed with exact big integer
// arithmetic.
func ExactDoubleDigits(v float64) decimal.Digits {
	return shortest(v, dtoa.Shortest)
}

// ExactFloatDigits is FloatDigits computed with exact big integer
// arithmetic.
func ExactFloatDigits(v float32) decimal.Digits {
	return shortest(v, dtoa.Shortest)
}

func shortest[F constraints.Float](v F, gen func(ieee.Decomposed) decimal.Digits) decimal.Digits {
	return gen(ieee.Decompose(v))
}

// ParseDouble returns the double nearest to the decimal or hexadecimal text.
// Out of range values become signed infinities or zeros.
func ParseDouble(text string) (float64, error) {
	v, _, err := strtod.Parse(text, strtod.Options{})
	if err != nil {
		return 0, Error.Wrap(err)
	}

	return v, nil
}

// ParseFloat returns the float32 nearest to the decimal or hexadecimal text.
// The value is rounded once, directly from the text.
func ParseFloat(text string) (float32, error) {
	v, r, err := strtod.Parse(text, strtod.Options{Hint: true})
	if err != nil {
		return 0, Error.Wrap(err)
	}

	if math.IsNaN(v) {
		return float32(math.NaN()), nil
	}

	return strtod.Narrow(v, r), nil
}
