package decimal

import (
	"bytes"
	"strconv"
)

// Digits is a decimal significand with a base 10 exponent.
//
// Digits holds ASCII digits, most significant first, without leading or
// trailing zeros. An empty Digits is zero.
type Digits struct {
	Digits   []byte
	Exponent int
	Negative bool

	// Exact is true when the digits equal the binary value they were
	// generated from.
	Exact bool

	// RoundedUp is true when the last digit was rounded away from the
	// truncated value.
	RoundedUp bool
}

// Len returns the number of significant digits.
func (d Digits) Len() int {
	return len(d.Digits)
}

// IsZero reports whether d has no significant digits.
func (d Digits) IsZero() bool {
	return len(d.Digits) == 0
}

// LeadingExponent returns the power of ten of the first digit, i.e. the
// exponent in d.ddd × 10^e notation.
func (d Digits) LeadingExponent() int {
	return d.Exponent - 1
}

// Equal reports whether d and o denote the same decimal number. The Exact and
// RoundedUp flags are ignored.
func (d Digits) Equal(o Digits) bool {
	return d.Negative == o.Negative &&
		d.Exponent == o.Exponent &&
		bytes.Equal(d.Digits, o.Digits)
}

// String renders d as 0.ddd e exponent, for debugging.
func (d Digits) String() string {
	buf := make([]byte, 0, len(d.Digits)+8)
	if d.Negative {
		buf = append(buf, '-')
	}
	buf = append(buf, '0', '.')
	if len(d.Digits) == 0 {
		buf = append(buf, '0')
	}
	buf = append(buf, d.Digits...)
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(d.Exponent), 10)

	return string(buf)
}

// Trim drops leading and trailing zero digits, adjusting the exponent for
// leading ones.
func (d Digits) Trim() Digits {
	for len(d.Digits) > 0 && d.Digits[0] == '0' {
		d.Digits = d.Digits[1:]
		d.Exponent--
	}

	for len(d.Digits) > 0 && d.Digits[len(d.Digits)-1] == '0' {
		d.Digits = d.Digits[:len(d.Digits)-1]
	}

	if len(d.Digits) == 0 {
		d.Exponent = 0
	}

	return d
}
