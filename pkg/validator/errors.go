package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotInteger is wrapped by the integer comparators when their input
	// is not a base-10 integer.
	ErrNotInteger = errors.New("not an integer")
)
