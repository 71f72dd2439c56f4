package datefmt

import "errors"

var (
	// ErrEmptyPattern is returned when the pattern is empty or blank.
	ErrEmptyPattern = errors.New("empty date pattern")

	// ErrUnsupportedPattern is returned when the pattern contains a letter,
	// literal or quote sequence that cannot be expressed as a Go layout.
	ErrUnsupportedPattern = errors.New("unsupported date pattern")

	// ErrInvalidDate is returned when a value does not match the pattern.
	ErrInvalidDate = errors.New("invalid date")

	// ErrYearOutOfRange is returned by Format for years outside MinYear..MaxYear.
	ErrYearOutOfRange = errors.New("year out of range")
)
