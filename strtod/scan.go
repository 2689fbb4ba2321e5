package strtod

import "strings"

// MaxDigits is the number of significant digits kept from a decimal literal.
// Beyond it a single '1' digit stands in for the discarded non-zero tail,
// which is enough to break any rounding tie in the right direction.
const MaxDigits = 1100

// maxExponentValue saturates written exponents so they cannot overflow.
const maxExponentValue = 1 << 30

// Kind distinguishes finite literals from the special words.
type Kind uint8

// Literal kinds.
const (
	Finite Kind = iota
	Infinity
	NaN
)

// Literal is a scanned decimal number:
//
//  value = (-1)^Negative * 0.Digits * 10^Exponent
//
// Digits holds no leading or trailing zeros; empty Digits is zero.
type Literal struct {
	Kind     Kind
	Negative bool
	Digits   []byte
	Exponent int
}

// IsZero reports whether l is a finite zero.
func (l Literal) IsZero() bool {
	return l.Kind == Finite && len(l.Digits) == 0
}

// TrimSpace removes leading and trailing ASCII control and space characters.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r <= ' '
	})
}

// HasHexPrefix reports whether s, after an optional sign, starts with 0x or
// 0X.
func HasHexPrefix(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Scan parses the decimal grammar:
//
//  [+-] ( NaN | Infinity | digits [. digits] [(e|E) [+-] digits] [f|F|d|D] )
//
// Surrounding white space is ignored. At least one digit is required in the
// significand and in a present exponent.
func Scan(text string) (lit Literal, err error) {
	s := TrimSpace(text)
	if s == "" {
		return lit, formatError(text, "empty string")
	}

	i := 0
	switch s[0] {
	case '-':
		lit.Negative = true
		i++
	case '+':
		i++
	}

	switch s[i:] {
	case "NaN":
		lit.Kind = NaN
		return lit, nil
	case "Infinity":
		lit.Kind = Infinity
		return lit, nil
	}

	var (
		sawDigit  bool
		sawDot    bool
		truncated bool
		digits    = make([]byte, 0, 20)
	)

scan:
	for ; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '.':
			if sawDot {
				return lit, formatError(text, "multiple points")
			}
			sawDot = true
		case c >= '0' && c <= '9':
			sawDigit = true

			if c == '0' && len(digits) == 0 {
				if sawDot {
					lit.Exponent--
				}
				continue
			}

			if !sawDot {
				lit.Exponent++
			}

			switch {
			case len(digits) < MaxDigits:
				digits = append(digits, c)
			case c != '0':
				truncated = true
			}
		default:
			break scan
		}
	}

	if !sawDigit {
		return lit, formatError(text, "no digits")
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++

		neg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			neg = s[i] == '-'
			i++
		}

		// Each digit position moves Exponent by at most one, so exp only
		// saturates beyond what they can cancel.
		limit := maxExponentValue + len(s)

		start := i
		exp := 0
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			if exp < limit {
				exp = exp*10 + int(s[i]-'0')
			}
		}

		if i == start {
			return lit, formatError(text, "missing exponent digits")
		}

		exp = min(exp, limit)
		if neg {
			exp = -exp
		}
		lit.Exponent = min(max(lit.Exponent+exp, -maxExponentValue), maxExponentValue)
	}

	if i < len(s) && isTypeSuffix(s[i]) {
		i++
	}

	if i != len(s) {
		return lit, formatError(text, "unexpected character "+quoteByte(s[i]))
	}

	if truncated {
		digits = append(digits, '1')
	} else {
		for len(digits) > 0 && digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
		}
	}

	if len(digits) == 0 {
		lit.Exponent = 0
	}
	lit.Digits = digits

	return lit, nil
}

func isTypeSuffix(c byte) bool {
	switch c {
	case 'f', 'F', 'd', 'D':
		return true
	}

	return false
}

func quoteByte(c byte) string {
	return "'" + string(rune(c)) + "'"
}
