package decimal

import "strconv"

// Fixed notation is used for leading exponents in [minFixed, maxFixed).
const (
	minFixed = -3
	maxFixed = 7
)

// Text returns the canonical text form of d.
func (d Digits) Text() string {
	return string(d.AppendText(make([]byte, 0, len(d.Digits)+8)))
}

// AppendText appends the canonical text form of d to dst.
func (d Digits) AppendText(dst []byte) []byte {
	if d.Negative {
		dst = append(dst, '-')
	}

	if len(d.Digits) == 0 {
		return append(dst, '0', '.', '0')
	}

	if e := d.LeadingExponent(); e < minFixed || e >= maxFixed {
		return d.appendScientific(dst, e)
	}

	return d.appendFixed(dst)
}

func (d Digits) appendScientific(dst []byte, e int) []byte {
	dst = append(dst, d.Digits[0], '.')
	if len(d.Digits) == 1 {
		dst = append(dst, '0')
	} else {
		dst = append(dst, d.Digits[1:]...)
	}

	dst = append(dst, 'E')

	return strconv.AppendInt(dst, int64(e), 10)
}

func (d Digits) appendFixed(dst []byte) []byte {
	n := len(d.Digits)

	switch {
	case d.Exponent <= 0:
		dst = append(dst, '0', '.')
		for i := d.Exponent; i < 0; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, d.Digits...)
	case n <= d.Exponent:
		dst = append(dst, d.Digits...)
		for i := n; i < d.Exponent; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, '.', '0')
	default:
		dst = append(dst, d.Digits[:d.Exponent]...)
		dst = append(dst, '.')
		dst = append(dst, d.Digits[d.Exponent:]...)
	}

	return dst
}
