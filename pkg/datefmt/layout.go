package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// sample is formatted with every translated layout to detect literals that Go
// would read as reference tokens. Each of its components differs from the
// matching reference value so any stray token changes the output.
var sample = time.Date(2009, time.November, 10, 9, 8, 7, 654321000, time.FixedZone("CET", 3600))

// MinYear and MaxYear bound the years Format accepts. Go renders other years
// with a sign or more than four digits, which no pattern can read back.
const (
	MinYear = 0
	MaxYear = 9999
)

type chunk struct {
	text   string
	token  bool
	letter rune
}

// Layout converts a pattern such as "dd/MM/yyyy" to the Go layout "02/01/2006".
func Layout(pattern string) (string, error) {
	chunks, err := compile(pattern)
	if err != nil {
		return "", err
	}
	return layoutOf(pattern, chunks, false)
}

// MustLayout is like Layout but panics if the pattern is unsupported.
// Intended for package-level layouts built from constant patterns.
func MustLayout(pattern string) string {
	layout, err := Layout(pattern)
	if err != nil {
		panic(err)
	}
	return layout
}

// Format renders t according to pattern. Years outside MinYear..MaxYear are
// rejected with ErrYearOutOfRange.
func Format(t time.Time, pattern string) (string, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}
	if y := t.Year(); y < MinYear || y > MaxYear {
		return "", fmt.Errorf("%w: %d", ErrYearOutOfRange, y)
	}
	return t.Format(layout), nil
}

// Parse strictly parses value according to pattern. The returned time is in UTC.
//
// Numeric days and months accept one or two digits whatever the pattern width,
// so "1/1/2024" matches "dd/MM/yyyy". A day name must agree with the date.
func Parse(value, pattern string) (time.Time, error) {
	chunks, err := compile(pattern)
	if err != nil {
		return time.Time{}, err
	}
	layout, err := layoutOf(pattern, chunks, true)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	if err := checkWeekday(value, chunks, t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func compile(pattern string) ([]chunk, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, ErrEmptyPattern
	}
	return tokenize(pattern)
}

// layoutOf joins chunks into a Go layout. The parse layout drops zero padding
// from days and months since Go then reads one or two digits.
func layoutOf(pattern string, chunks []chunk, parse bool) (string, error) {
	var layout, expected strings.Builder
	for _, c := range chunks {
		if c.token {
			text := c.text
			if parse {
				text = unpadded(text)
			}
			layout.WriteString(text)
			expected.WriteString(sample.Format(text))
			continue
		}
		if strings.ContainsAny(c.text, "0123456789_") {
			return "", fmt.Errorf("%w: digit or underscore in literal %q", ErrUnsupportedPattern, c.text)
		}
		layout.WriteString(c.text)
		expected.WriteString(c.text)
	}

	// A literal must survive formatting unchanged, both on its own and next
	// to the tokens around it.
	if sample.Format(layout.String()) != expected.String() {
		return "", fmt.Errorf("%w: %q contains text that clashes with a layout token", ErrUnsupportedPattern, pattern)
	}

	return layout.String(), nil
}

func unpadded(token string) string {
	switch token {
	case "02":
		return "2"
	case "01":
		return "1"
	}
	return token
}

func tokenize(pattern string) ([]chunk, error) {
	var (
		chunks  []chunk
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			chunks = append(chunks, chunk{text: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			// '' outside a quoted section is an escaped quote
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}

			i++
			closed := false
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						literal.WriteRune('\'')
						i += 2
						continue
					}
					closed = true
					i++
					break
				}
				literal.WriteRune(runes[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrUnsupportedPattern, pattern)
			}

		case isPatternLetter(r):
			n := 1
			for i+n < len(runes) && runes[i+n] == r {
				n++
			}

			token, ok := translate(r, n)
			if !ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrUnsupportedPattern, strings.Repeat(string(r), n), pattern)
			}

			flush()
			chunks = append(chunks, chunk{text: token, token: true, letter: r})
			i += n

		default:
			literal.WriteRune(r)
			i++
		}
	}
	flush()

	return chunks, nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func translate(letter rune, count int) (string, bool) {
	switch letter {
	case 'y':
		if count == 2 {
			return "06", true
		}
		return "2006", true
	case 'M':
		switch count {
		case 1:
			return "1", true
		case 2:
			return "01", true
		case 3:
			return "Jan", true
		default:
			return "January", true
		}
	case 'd':
		switch count {
		case 1:
			return "2", true
		case 2:
			return "02", true
		}
	case 'E':
		if count <= 3 {
			return "Mon", true
		}
		return "Monday", true
	}
	return "", false
}
