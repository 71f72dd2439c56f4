package formatter

import "regexp"

var nonDigitRegex = regexp.MustCompile(`\D`)
