package validator

import (
	"strings"
	"unicode"
)

// IsValidCreditCardNumber reports whether s passes the Luhn checksum.
// Whitespace and hyphens are ignored; any other non-digit fails, as does an
// input without digits.
func IsValidCreditCardNumber(s string) bool {
	digits := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
