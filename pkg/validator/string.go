package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// IsValidString reports whether s has any non-whitespace content.
func IsValidString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MatchesPattern reports whether the whole of s matches pattern.
// An empty or invalid pattern never matches.
func MatchesPattern(s, pattern string) bool {
	if pattern == "" {
		return false
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// IsAlpha reports whether s is non-blank and made of ASCII letters only.
func IsAlpha(s string) bool {
	return IsValidString(s) && allRunes(s, isASCIILetter)
}

// IsAlphaNumeric reports whether s is non-blank and made of ASCII letters and
// digits only.
func IsAlphaNumeric(s string) bool {
	return IsValidString(s) && allRunes(s, func(r rune) bool {
		return isASCIILetter(r) || isASCIIDigit(r)
	})
}

// HasMinimumLength reports whether s is non-blank and at least min runes long.
// Surrounding whitespace counts towards the length.
func HasMinimumLength(s string, min int) bool {
	return IsValidString(s) && utf8.RuneCountInString(s) >= min
}

// HasMaximumLength reports whether s is non-blank and at most max runes long.
func HasMaximumLength(s string, max int) bool {
	return IsValidString(s) && utf8.RuneCountInString(s) <= max
}

// ContainsOnly reports whether s is non-blank and every rune of s, whitespace
// included, appears in allowed.
func ContainsOnly(s, allowed string) bool {
	return IsValidString(s) && allRunes(s, func(r rune) bool {
		return strings.ContainsRune(allowed, r)
	})
}

func allRunes(s string, ok func(rune) bool) bool {
	for _, r := range s {
		if !ok(r) {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
