package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// IsValidInteger reports whether the trimmed s is a base-10 integer that fits
// in 32 bits, with an optional sign.
func IsValidInteger(s string) bool {
	_, ok, err := parseInteger(s)
	return ok && err == nil
}

// IsValidDouble reports whether the trimmed s is a decimal number in plain or
// exponent notation. Commas, hex floats, Inf and NaN are rejected.
func IsValidDouble(s string) bool {
	s = strings.TrimSpace(s)
	if !decimalRegex.MatchString(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsWithinRange reports whether min <= v <= max.
func IsWithinRange[T Numeric](v, min, max T) bool {
	return v >= min && v <= max
}

// IsPositiveInteger reports whether s is an integer greater than zero.
func IsPositiveInteger(s string) (bool, error) {
	return compareInteger(s, func(n int) bool { return n > 0 })
}

// IsPositiveIntegerOrZero reports whether s is an integer greater than or
// equal to zero.
func IsPositiveIntegerOrZero(s string) (bool, error) {
	return compareInteger(s, func(n int) bool { return n >= 0 })
}

// IsIntegerGreaterThan reports whether s is an integer greater than target.
func IsIntegerGreaterThan(s string, target int) (bool, error) {
	return compareInteger(s, func(n int) bool { return n > target })
}

// IsIntegerGreaterEqualThan reports whether s is an integer greater than or
// equal to target.
func IsIntegerGreaterEqualThan(s string, target int) (bool, error) {
	return compareInteger(s, func(n int) bool { return n >= target })
}

// IsIntegerLessThan reports whether s is an integer less than target.
func IsIntegerLessThan(s string, target int) (bool, error) {
	return compareInteger(s, func(n int) bool { return n < target })
}

// IsIntegerLessEqualThan reports whether s is an integer less than or equal
// to target.
func IsIntegerLessEqualThan(s string, target int) (bool, error) {
	return compareInteger(s, func(n int) bool { return n <= target })
}

// compareInteger returns (false, nil) for blank input and an ErrNotInteger
// wrapped error for anything that does not parse.
func compareInteger(s string, cmp func(int) bool) (bool, error) {
	n, ok, err := parseInteger(s)
	if !ok || err != nil {
		return false, err
	}
	return cmp(n), nil
}

// parseInteger reports ok=false for blank input.
func parseInteger(s string) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %w", ErrNotInteger, err)
	}
	return int(n), true, nil
}
