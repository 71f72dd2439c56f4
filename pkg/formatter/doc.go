// Package formatter turns raw user input into display-ready strings: case
// conversion, word capitalisation, initials, accent stripping, e-mail
// normalisation, truncation, credit-card masking and amount/price rendering.
//
// The string helpers are plain functions. Empty input always yields an empty
// result, never a panic:
//
//	formatter.CapitalizeWords("bruce wayne Gotham city") // "Bruce Wayne Gotham City"
//	formatter.Initials("Bruce Wayne")                    // "BW"
//	formatter.RemoveAccents("Chaîne de caractères")      // "Chaine de caracteres"
//	formatter.MaskCreditCard("4539 1488 0343 6467")      // "**** **** **** 6467"
//
// Amounts are rendered with exactly two fractional digits. The decimal
// separator is an explicit setting of a Formatter rather than something taken
// from the host locale. The package-level FormatAmount and FormatPrice use
// Default, whose separator is ".":
//
//	formatter.FormatAmount(123.789) // "123.79"
//
//	fr := formatter.New(formatter.WithDecimalSeparator(","))
//	fr.FormatPrice(2000, "€") // "2000,00 €"
//
// The separator can also come from the FORMAT_DECIMAL_SEPARATOR environment
// variable through LoadConfig and NewFromConfig.
//
// Lengths are counted in runes, so truncation never splits a multi-byte
// character. Accent stripping uses golang.org/x/text: the input is decomposed
// (NFD), nonspacing marks are dropped and the result is recomposed (NFC).
//
// Apply and Compose chain helpers into reusable pipelines. Every function is
// stateless and safe for concurrent use.
package formatter
