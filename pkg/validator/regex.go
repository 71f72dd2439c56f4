package validator

import "regexp"

var (
	emailRegex      = regexp.MustCompile(`^[\w._%+-]+@[\w.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex      = regexp.MustCompile(`^\+?[0-9 .()-]{7,15}$`)
	urlRegex        = regexp.MustCompile(`^(https?|ftp)://[\w.-]+(?:\.[\w.-]+)+[/\w\d#?&=.-]*$`)
	postalCodeRegex = regexp.MustCompile(`^[0-9]{5,10}$`)

	// decimalRegex admits plain decimal notation only: no hex floats, no
	// Inf or NaN, no digit grouping.
	decimalRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)
