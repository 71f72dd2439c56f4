package validator

import (
	"errors"
	"strings"
)

// Numeric is the constraint accepted by IsWithinRange.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError describes one failed rule. TranslationKey and
// TranslationValues let callers render the message in their own language.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every failed rule of an Apply call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, len(ve))
	for i, e := range ve {
		parts[i] = e.String()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed as a match, so errors.Is works on the
// aggregate without unpacking it.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(e ValidationError) {
	*ve = append(*ve, e)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve.ByField(field) {
		messages = append(messages, e.Message)
	}
	return messages
}

// ByField returns the errors recorded for field.
func (ve ValidationErrors) ByField(field string) ValidationErrors {
	var out ValidationErrors
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Fields lists the failing fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]struct{}, len(ve))
	for _, e := range ve {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		fields = append(fields, e.Field)
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failing ones,
// or nil when all pass. A rule without a Check always fails.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, r := range rules {
		if r.Check == nil || !r.Check() {
			failed.Add(r.Error)
		}
	}
	if failed.IsEmpty() {
		return nil
	}
	return failed
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
