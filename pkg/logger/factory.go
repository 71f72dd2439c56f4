package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/inputkit/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*options)

type options struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets output format.
// Panics for invalid formats: a misconfigured logger should stop startup.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(o *options) { o.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(o *options) { o.format = FormatJSON }
}

// WithOutput sets custom output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithHandlerOptions overrides the slog handler options, including the level.
// Nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(o *options) {
		if opts != nil {
			o.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		if len(attrs) > 0 {
			o.attrs = append(o.attrs, attrs...)
		}
	}
}

// New creates a configured slog.Logger. Defaults: JSON, INFO, stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := o.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: o.level}
	}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(handler)
}

// SetAsDefault installs l as the process-wide default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Config holds environment driven logger settings.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	Format Format     `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment (and .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a logger from cfg. Extra options are applied last.
// Panics if cfg.Format is not a known format.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	base := []Option{WithLevel(cfg.Level), WithFormat(cfg.Format)}
	return New(append(base, opts...)...)
}
