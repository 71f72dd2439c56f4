package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/inputkit/pkg/datefmt"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern  string
		expected string
	}{
		{pattern: "dd/MM/yyyy", expected: "02/01/2006"},
		{pattern: "MM-dd-yyyy", expected: "01-02-2006"},
		{pattern: "yyyy-MM-dd", expected: "2006-01-02"},
		{pattern: "d/M/yy", expected: "2/1/06"},
		{pattern: "y", expected: "2006"},
		{pattern: "yyy", expected: "2006"},
		{pattern: "d MMMM yyyy", expected: "2 January 2006"},
		{pattern: "EEE, d MMM yy", expected: "Mon, 2 Jan 06"},
		{pattern: "EEEE", expected: "Monday"},
		{pattern: "'le' d MMMM", expected: "le 2 January"},
		{pattern: "dd''MM", expected: "02'01"},
		{pattern: "'it''s' yyyy", expected: "it's 2006"},
		{pattern: "dd.MM.yyyy", expected: "02.01.2006"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			layout, err := datefmt.Layout(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, layout)
		})
	}
}

func TestLayout_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		err     error
	}{
		{name: "empty", pattern: "", err: datefmt.ErrEmptyPattern},
		{name: "blank", pattern: "   ", err: datefmt.ErrEmptyPattern},
		{name: "time letters", pattern: "dd/MM/yyyy HH:mm", err: datefmt.ErrUnsupportedPattern},
		{name: "three d", pattern: "ddd", err: datefmt.ErrUnsupportedPattern},
		{name: "unterminated quote", pattern: "dd 'de MMMM", err: datefmt.ErrUnsupportedPattern},
		{name: "digit literal", pattern: "dd/MM/'1'yyyy", err: datefmt.ErrUnsupportedPattern},
		{name: "underscore literal", pattern: "dd_MM", err: datefmt.ErrUnsupportedPattern},
		{name: "month name literal", pattern: "'Jan' dd", err: datefmt.ErrUnsupportedPattern},
		{name: "weekday literal", pattern: "'Mon' d", err: datefmt.ErrUnsupportedPattern},
		{name: "zone literal", pattern: "dd 'MST'", err: datefmt.ErrUnsupportedPattern},
		{name: "meridiem literal", pattern: "dd 'PM'", err: datefmt.ErrUnsupportedPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := datefmt.Layout(tt.pattern)
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, layout)
		})
	}
}

func TestMustLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "02/01/2006", datefmt.MustLayout("dd/MM/yyyy"))
	assert.Panics(t, func() { datefmt.MustLayout("HH:mm") })
}

func TestFormat(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, time.December, 20, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		pattern  string
		expected string
	}{
		{pattern: "dd/MM/yyyy", expected: "20/12/2024"},
		{pattern: "EEEE d MMMM yyyy", expected: "Friday 20 December 2024"},
		{pattern: "EEE d MMM yy", expected: "Fri 20 Dec 24"},
		{pattern: "d/M/y", expected: "20/12/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			s, err := datefmt.Format(d, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}

	t.Run("single digit fields", func(t *testing.T) {
		s, err := datefmt.Format(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), "d/M/yyyy")
		require.NoError(t, err)
		assert.Equal(t, "5/3/2025", s)
	})

	t.Run("unsupported pattern", func(t *testing.T) {
		_, err := datefmt.Format(d, "hh:mm")
		assert.ErrorIs(t, err, datefmt.ErrUnsupportedPattern)
	})

	years := []struct {
		name string
		year int
		err  bool
	}{
		{name: "year zero", year: 0},
		{name: "max year", year: datefmt.MaxYear},
		{name: "five digit year", year: 10000, err: true},
		{name: "negative year", year: -1, err: true},
	}

	for _, tt := range years {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datefmt.Format(time.Date(tt.year, time.January, 1, 0, 0, 0, 0, time.UTC), "dd/MM/yyyy")
			if tt.err {
				assert.ErrorIs(t, err, datefmt.ErrYearOutOfRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		got, err := datefmt.Parse("20/12/2024", "dd/MM/yyyy")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("month name", func(t *testing.T) {
		got, err := datefmt.Parse("14 July 1789", "d MMMM yyyy")
		require.NoError(t, err)
		assert.Equal(t, time.Date(1789, time.July, 14, 0, 0, 0, 0, time.UTC), got)
	})

	unpadded := []struct {
		name     string
		value    string
		pattern  string
		expected time.Time
	}{
		{name: "single digit day and month", value: "1/1/2024", pattern: "dd/MM/yyyy", expected: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "single digit day", value: "1/01/2024", pattern: "dd/MM/yyyy", expected: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "padded day for d", value: "05.3.2025", pattern: "d.M.yyyy", expected: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range unpadded {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datefmt.Parse(tt.value, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	weekdays := []struct {
		name    string
		value   string
		pattern string
		valid   bool
	}{
		{name: "matching short name", value: "Fri 20/12/2024", pattern: "EEE dd/MM/yyyy", valid: true},
		{name: "wrong short name", value: "Tue 20/12/2024", pattern: "EEE dd/MM/yyyy"},
		{name: "lower case name", value: "fri 20/12/2024", pattern: "EEE dd/MM/yyyy", valid: true},
		{name: "matching long name", value: "Friday, 20 December 2024", pattern: "EEEE, d MMMM yyyy", valid: true},
		{name: "wrong long name", value: "Monday, 20 December 2024", pattern: "EEEE, d MMMM yyyy"},
		{name: "name after date", value: "1 Jan 24 Mon", pattern: "d MMM yy EEE", valid: true},
		{name: "wrong name after date", value: "1 Jan 24 Sun", pattern: "d MMM yy EEE"},
		{name: "extra spaces", value: "Fri   20/12/2024", pattern: "EEE dd/MM/yyyy", valid: true},
	}

	for _, tt := range weekdays {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datefmt.Parse(tt.value, tt.pattern)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, datefmt.ErrInvalidDate)
		})
	}

	invalid := []struct {
		name  string
		value string
	}{
		{name: "day 32", value: "32/01/2023"},
		{name: "30 february", value: "30/02/2024"},
		{name: "month 13", value: "01/13/2024"},
		{name: "trailing text", value: "20/12/2024 extra"},
		{name: "wrong separator", value: "20-12-2024"},
		{name: "two digit year", value: "20/12/24"},
		{name: "empty", value: ""},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datefmt.Parse(tt.value, "dd/MM/yyyy")
			assert.ErrorIs(t, err, datefmt.ErrInvalidDate)
		})
	}

	t.Run("unsupported pattern", func(t *testing.T) {
		_, err := datefmt.Parse("20/12/2024", "dd/MM/yyyy G")
		assert.ErrorIs(t, err, datefmt.ErrUnsupportedPattern)
		assert.NotErrorIs(t, err, datefmt.ErrInvalidDate)
	})
}

func TestFormatParse_RoundTrip(t *testing.T) {
	patterns := []string{"dd/MM/yyyy", "MM-dd-yyyy", "yyyy-MM-dd", "d MMMM yyyy", "EEEE, d MMM yyyy", "d.M.y"}

	rapid.Check(t, func(t *rapid.T) {
		day := rapid.IntRange(0, 365*300).Draw(t, "day")
		pattern := rapid.SampledFrom(patterns).Draw(t, "pattern")
		d := time.Date(1850, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)

		s, err := datefmt.Format(d, pattern)
		if err != nil {
			t.Fatalf("format %q: %v", pattern, err)
		}
		got, err := datefmt.Parse(s, pattern)
		if err != nil {
			t.Fatalf("parse %q with %q: %v", s, pattern, err)
		}
		if !got.Equal(d) {
			t.Fatalf("round trip of %s via %q gave %s", d, pattern, got)
		}
	})
}
