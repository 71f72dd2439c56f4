package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// checkWeekday walks value along chunks the way time.Parse does and verifies
// that any day name agrees with t. time.Parse reads day names but ignores them.
// Only called after time.Parse accepted value, so every chunk is present.
func checkWeekday(value string, chunks []chunk, t time.Time) error {
	hasName := false
	for _, c := range chunks {
		if c.letter == 'E' {
			hasName = true
			break
		}
	}
	if !hasName {
		return nil
	}

	rest := value
	for _, c := range chunks {
		if !c.token {
			rest = skipLiteral(rest, c.text)
			continue
		}

		switch unpadded(c.text) {
		case "2006":
			rest = rest[min(4, len(rest)):]
		case "06":
			rest = rest[min(2, len(rest)):]
		case "2", "1":
			n := 1
			if len(rest) > 1 && isDigit(rest[1]) {
				n = 2
			}
			rest = rest[min(n, len(rest)):]
		case "Jan":
			_, name := lookupName(rest, shortMonths)
			rest = rest[len(name):]
		case "January":
			_, name := lookupName(rest, longMonths)
			rest = rest[len(name):]
		case "Mon", "Monday":
			table := shortDays
			if c.text == "Monday" {
				table = longDays
			}
			day, name := lookupName(rest, table)
			if day != int(t.Weekday()) {
				return fmt.Errorf("%w: %s is not a %s", ErrInvalidDate, t.Format(time.DateOnly), name)
			}
			rest = rest[len(name):]
		}
	}
	return nil
}

// skipLiteral drops literal from the front of value. A run of spaces matches
// any run of spaces, as in time.Parse.
func skipLiteral(value, literal string) string {
	for len(literal) > 0 {
		if literal[0] == ' ' {
			literal = strings.TrimLeft(literal, " ")
			value = strings.TrimLeft(value, " ")
			continue
		}
		if len(value) == 0 {
			return value
		}
		value = value[1:]
		literal = literal[1:]
	}
	return value
}

var (
	shortMonths, longMonths = names(12, func(i int) string { return time.Month(i + 1).String() })
	shortDays, longDays     = names(7, func(i int) string { return time.Weekday(i).String() })
)

func names(n int, name func(int) string) (short, long []string) {
	for i := range n {
		long = append(long, name(i))
		short = append(short, name(i)[:3])
	}
	return short, long
}

// lookupName finds one of names at the front of value, ignoring case, and
// returns its index with the text it matched.
func lookupName(value string, names []string) (int, string) {
	for i, n := range names {
		if len(value) >= len(n) && strings.EqualFold(value[:len(n)], n) {
			return i, value[:len(n)]
		}
	}
	return -1, ""
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
