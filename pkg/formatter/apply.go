package formatter

// Apply runs s through each transform in order.
func Apply(s string, transforms ...func(string) string) string {
	for _, transform := range transforms {
		s = transform(s)
	}
	return s
}

// Compose bundles transforms into a single reusable formatting step.
//
//	normalizeName := formatter.Compose(formatter.RemoveAccents, formatter.CapitalizeWords)
//	normalizeName("  élodie  DURAND ") // "Elodie Durand"
func Compose(transforms ...func(string) string) func(string) string {
	return func(s string) string {
		return Apply(s, transforms...)
	}
}
