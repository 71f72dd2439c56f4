package validator

import (
	"strings"

	"github.com/google/uuid"
)

// IsValidEmail reports whether s looks like local@domain.tld, with a TLD of
// at least two letters. s is not trimmed.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhoneNumber accepts 7 to 15 digits, spaces, dots, hyphens and
// parentheses with an optional leading '+'.
func IsValidPhoneNumber(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}

// IsValidURL accepts http, https and ftp URLs whose host has at least one dot.
func IsValidURL(s string) bool {
	return urlRegex.MatchString(strings.TrimSpace(s))
}

// IsValidPostalCode accepts 5 to 10 digits.
func IsValidPostalCode(s string) bool {
	return postalCodeRegex.MatchString(strings.TrimSpace(s))
}

// IsValidUUID reports whether the trimmed s is a UUID in canonical
// 8-4-4-4-12 form. Braced, URN and compact forms are rejected.
func IsValidUUID(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 36 {
		return false
	}
	return uuid.Validate(s) == nil
}
