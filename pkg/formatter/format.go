package formatter

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/config"
)

// cardMask replaces every group of a card number but the last one.
const cardMask = "**** **** **** "

// Option configures a Formatter.
type Option func(*Formatter)

// WithDecimalSeparator sets the decimal separator used for amounts.
// An empty separator is ignored.
func WithDecimalSeparator(sep string) Option {
	return func(f *Formatter) {
		if sep != "" {
			f.decimalSeparator = sep
		}
	}
}

// Formatter renders amounts and prices with a fixed decimal separator.
// The zero value is not usable; create one with New.
type Formatter struct {
	decimalSeparator string
}

// New returns a Formatter. Without options the decimal separator is ".".
func New(opts ...Option) *Formatter {
	f := &Formatter{decimalSeparator: "."}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Default is used by the package-level FormatAmount and FormatPrice.
var Default = New()

// Config holds environment driven formatter settings.
type Config struct {
	DecimalSeparator string `env:"FORMAT_DECIMAL_SEPARATOR" envDefault:"."`
}

// LoadConfig reads Config from the environment (and .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig returns a Formatter using the separator from cfg.
func NewFromConfig(cfg Config) *Formatter {
	return New(WithDecimalSeparator(cfg.DecimalSeparator))
}

// DecimalSeparator returns the separator used between units and cents.
func (f *Formatter) DecimalSeparator() string {
	return f.decimalSeparator
}

// FormatAmount renders amount with exactly two fractional digits and no
// thousands grouping: 123456789.123 becomes "123456789.12". Rounding is half
// up on the shortest decimal form of amount, so 2.675 becomes "2.68".
func (f *Formatter) FormatAmount(amount float64) string {
	s := roundCents(amount)
	if f.decimalSeparator == "." {
		return s
	}
	return strings.Replace(s, ".", f.decimalSeparator, 1)
}

// roundCents rounds the shortest decimal representation of v half away from
// zero to two fractional digits.
func roundCents(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	units, frac, _ := strings.Cut(s, ".")
	frac += "000"
	digits := []byte(units + frac[:2])

	if frac[2] >= '5' {
		i := len(digits) - 1
		for ; i >= 0 && digits[i] == '9'; i-- {
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		} else {
			digits[i]++
		}
	}

	n := len(digits)
	return sign + string(digits[:n-2]) + "." + string(digits[n-2:])
}

// FormatPrice renders amount like FormatAmount followed by a space and the
// currency label, verbatim.
func (f *Formatter) FormatPrice(amount float64, currency string) string {
	return f.FormatAmount(amount) + " " + currency
}

// FormatAmount renders amount with two fractional digits using Default.
func FormatAmount(amount float64) string {
	return Default.FormatAmount(amount)
}

// FormatPrice renders amount and currency label using Default.
func FormatPrice(amount float64, currency string) string {
	return Default.FormatPrice(amount, currency)
}

// MaskCreditCard keeps only the last four digits of a card number:
// "4539 1488 0343 6467" becomes "**** **** **** 6467". Inputs with fewer than
// four digits yield "".
func MaskCreditCard(s string) string {
	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) < 4 {
		return ""
	}
	return cardMask + digits[len(digits)-4:]
}
