// Package datefmt translates the familiar `dd/MM/yyyy` date pattern language
// into Go reference layouts and uses them to format and strictly parse dates.
//
// Only date components are supported: years (y, yy, yyyy), months (M, MM,
// MMM, MMMM), days of month (d, dd) and day names (E..EEE, EEEE). Any other
// letter makes the pattern unsupported. Characters that are not letters are
// copied verbatim, and text between single quotes is a literal ('' is a
// literal quote).
//
// Go layouts cannot escape reference tokens, so literals that Go would read as
// part of a layout (digits, underscores, "Jan", "Mon", "MST", "PM", ...) are
// rejected with ErrUnsupportedPattern instead of silently producing a wrong
// layout.
//
// # Usage
//
//	layout, err := datefmt.Layout("dd/MM/yyyy") // "02/01/2006"
//
//	s, err := datefmt.Format(time.Now(), "EEEE d MMMM yyyy")
//
//	t, err := datefmt.Parse("32/01/2023", "dd/MM/yyyy") // error: day out of range
//
// Parsing is strict: out-of-range components never roll over and trailing
// text is an error. Days and months may be written with one or two digits
// whatever the pattern width, and a day name must match the date it precedes.
// Format only renders years 0 through 9999, the range yyyy can read back.
package datefmt
