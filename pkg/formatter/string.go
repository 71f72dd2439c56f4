package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ellipsis is appended by TruncateText.
const Ellipsis = "..."

// combiningDiacritics is the Combining Diacritical Marks block. Other
// nonspacing marks (Indic viramas, vowel signs) are part of the spelling and
// are kept.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// ToUpperCase trims surrounding whitespace and converts to uppercase using
// full case mapping, so "straße" becomes "STRASSE".
func ToUpperCase(s string) string {
	// Casers are stateful, one per call.
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

// ToLowerCase trims surrounding whitespace and converts to lowercase.
func ToLowerCase(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// CapitalizeWords uppercases the first letter of every word and lowercases the
// rest. Words are separated by runs of whitespace and rejoined with a single
// space.
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// Initials returns the uppercased first letter of every word, without separators.
func Initials(s string) string {
	var b strings.Builder
	for _, w := range strings.Fields(s) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// RemoveAccents strips combining diacritical marks (U+0300 to U+036F) while
// keeping the base letters: "Chaîne de caractères" becomes
// "Chaine de caracteres". Scripts whose marks carry meaning, such as
// Devanagari, are left intact.
func RemoveAccents(s string) string {
	if s == "" {
		return ""
	}

	// transform.Chain keeps state, so every call gets its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// FormatEmail trims and lowercases an e-mail address. It does not validate it.
func FormatEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TruncateText shortens s to exactly maxLen runes, the last three being
// Ellipsis. Strings of at most maxLen runes are returned unchanged.
// When maxLen is smaller than the ellipsis only its first maxLen runes are
// returned, and a non-positive maxLen yields "" for any longer input.
func TruncateText(s string, maxLen int) string {
	rs := []rune(s)
	if len(rs) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}

	keep := maxLen - utf8.RuneCountInString(Ellipsis)
	if keep < 0 {
		return Ellipsis[:maxLen]
	}
	return string(rs[:keep]) + Ellipsis
}
