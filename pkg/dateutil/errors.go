package dateutil

import "errors"

var (
	// ErrInvalidHoliday is returned when a holiday rule does not name a day
	// that exists in every year.
	ErrInvalidHoliday = errors.New("invalid holiday")

	// ErrParsingHolidays is returned when a holiday definition cannot be decoded.
	ErrParsingHolidays = errors.New("failed to parse holidays")

	// ErrInvalidTimezone is returned when the configured timezone cannot be loaded.
	ErrInvalidTimezone = errors.New("invalid timezone")
)
