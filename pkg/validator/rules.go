package validator

import (
	"fmt"
	"maps"
)

func newRule(field, key, message string, check func() bool, values map[string]any) Rule {
	tv := map[string]any{"field": field}
	maps.Copy(tv, values)
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: tv,
		},
	}
}

// Required fails when value is blank.
func Required(field, value string) Rule {
	return newRule(field, "validation.required", "field is required",
		func() bool { return IsValidString(value) }, nil)
}

func Integer(field, value string) Rule {
	return newRule(field, "validation.integer", "must be an integer",
		func() bool { return IsValidInteger(value) }, nil)
}

func Double(field, value string) Rule {
	return newRule(field, "validation.double", "must be a number",
		func() bool { return IsValidDouble(value) }, nil)
}

func Alpha(field, value string) Rule {
	return newRule(field, "validation.alpha", "must contain only letters",
		func() bool { return IsAlpha(value) }, nil)
}

func AlphaNumeric(field, value string) Rule {
	return newRule(field, "validation.alphanumeric", "must contain only letters and digits",
		func() bool { return IsAlphaNumeric(value) }, nil)
}

func MinLength(field, value string, min int) Rule {
	return newRule(field, "validation.min_length", fmt.Sprintf("must be at least %d characters long", min),
		func() bool { return HasMinimumLength(value, min) }, map[string]any{"min": min})
}

func MaxLength(field, value string, max int) Rule {
	return newRule(field, "validation.max_length", fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return HasMaximumLength(value, max) }, map[string]any{"max": max})
}

// OnlyChars fails when value holds a character outside allowed.
func OnlyChars(field, value, allowed string) Rule {
	return newRule(field, "validation.only_chars", fmt.Sprintf("must contain only the characters %q", allowed),
		func() bool { return ContainsOnly(value, allowed) }, map[string]any{"allowed": allowed})
}

// Pattern fails unless the whole of value matches pattern.
func Pattern(field, value, pattern string) Rule {
	return newRule(field, "validation.pattern", "has an invalid format",
		func() bool { return MatchesPattern(value, pattern) }, map[string]any{"pattern": pattern})
}

func Email(field, value string) Rule {
	return newRule(field, "validation.email", "must be a valid email address",
		func() bool { return IsValidEmail(value) }, nil)
}

func Phone(field, value string) Rule {
	return newRule(field, "validation.phone", "must be a valid phone number",
		func() bool { return IsValidPhoneNumber(value) }, nil)
}

func URL(field, value string) Rule {
	return newRule(field, "validation.url", "must be a valid URL",
		func() bool { return IsValidURL(value) }, nil)
}

func PostalCode(field, value string) Rule {
	return newRule(field, "validation.postal_code", "must be a valid postal code",
		func() bool { return IsValidPostalCode(value) }, nil)
}

func CreditCard(field, value string) Rule {
	return newRule(field, "validation.credit_card", "invalid credit card number",
		func() bool { return IsValidCreditCardNumber(value) }, nil)
}

func UUID(field, value string) Rule {
	return newRule(field, "validation.uuid", "must be a valid UUID",
		func() bool { return IsValidUUID(value) }, nil)
}

// Date fails unless value is a real date written in pattern.
func Date(field, value, pattern string) Rule {
	return newRule(field, "validation.date", fmt.Sprintf("must be a valid date in format %s", pattern),
		func() bool { return IsValidDate(value, pattern) }, map[string]any{"format": pattern})
}

// DateInRange fails unless value is a date in pattern between start and end
// inclusive.
func DateInRange(field, value, pattern, start, end string) Rule {
	return newRule(field, "validation.date_range", fmt.Sprintf("must be a date between %s and %s", start, end),
		func() bool { return IsDateWithinRange(value, pattern, start, end) },
		map[string]any{"format": pattern, "start": start, "end": end})
}

// The integer comparison rules fail on blank and on malformed input alike.

func IntegerGreaterThan(field, value string, target int) Rule {
	return newRule(field, "validation.integer_gt", fmt.Sprintf("must be an integer greater than %d", target),
		func() bool { return passed(IsIntegerGreaterThan(value, target)) }, map[string]any{"target": target})
}

func IntegerLessThan(field, value string, target int) Rule {
	return newRule(field, "validation.integer_lt", fmt.Sprintf("must be an integer less than %d", target),
		func() bool { return passed(IsIntegerLessThan(value, target)) }, map[string]any{"target": target})
}

func PositiveInteger(field, value string) Rule {
	return newRule(field, "validation.positive_integer", "must be a positive integer",
		func() bool { return passed(IsPositiveInteger(value)) }, nil)
}

func passed(ok bool, err error) bool {
	return ok && err == nil
}
