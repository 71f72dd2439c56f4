package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// handlers drop.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the name of the package or subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Holiday groups a holiday rule under "holiday".
func Holiday(name string, month time.Month, day int) slog.Attr {
	return slog.Group("holiday",
		slog.String("name", name),
		slog.Int("month", int(month)),
		slog.Int("day", day),
	)
}
