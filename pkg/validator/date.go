package validator

import (
	"strings"
	"time"

	"github.com/dmitrymomot/inputkit/pkg/datefmt"
)

// IsValidDate reports whether the trimmed s is a real date written in the
// given pattern, e.g. "20/12/2024" for "dd/MM/yyyy". Parsing is strict: day 32
// or 30 February fail instead of rolling over.
func IsValidDate(s, pattern string) bool {
	_, ok := parseDate(s, pattern)
	return ok
}

// IsDateWithinRange reports whether s falls between start and end inclusive.
// All three must be valid dates in pattern.
func IsDateWithinRange(s, pattern, start, end string) bool {
	d, ok := parseDate(s, pattern)
	if !ok {
		return false
	}
	from, ok := parseDate(start, pattern)
	if !ok {
		return false
	}
	to, ok := parseDate(end, pattern)
	if !ok {
		return false
	}
	return !d.Before(from) && !d.After(to)
}

func parseDate(s, pattern string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := datefmt.Parse(s, pattern)
	return t, err == nil
}
