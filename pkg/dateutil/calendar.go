package dateutil

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	cal "github.com/rickar/cal/v2"

	"github.com/dmitrymomot/inputkit/pkg/config"
	"github.com/dmitrymomot/inputkit/pkg/logger"
)

// Option configures a Calendar.
type Option func(*options)

type options struct {
	holidays []Holiday
	now      func() time.Time
	loc      *time.Location
	logger   *slog.Logger
}

// WithHolidays replaces the holiday set. Calling it with no holidays yields a
// calendar where only weekends are non-working days.
func WithHolidays(holidays ...Holiday) Option {
	return func(o *options) {
		o.holidays = slices.Clone(holidays)
	}
}

// WithClock sets the source of the current time. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLocation sets the location used to turn the current time into today's date.
// Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithLogger sets the logger used to report rejected holiday rules. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Calendar answers date questions against a fixed holiday set and clock.
// It is immutable and safe for concurrent use.
type Calendar struct {
	holidays []Holiday
	business *cal.BusinessCalendar
	now      func() time.Time
	loc      *time.Location
}

// New builds a Calendar. Without options it uses FrenchHolidays, time.Now and
// time.Local. Holiday rules that fail Validate are skipped with a warning.
func New(opts ...Option) *Calendar {
	o := &options{
		holidays: FrenchHolidays,
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	c := &Calendar{
		business: cal.NewBusinessCalendar(),
		now:      o.now,
		loc:      o.loc,
	}

	log := o.logger.With(logger.Component("dateutil"))
	for _, h := range o.holidays {
		if err := h.Validate(); err != nil {
			log.Warn("skipping holiday rule",
				logger.Holiday(h.Name, h.Month, h.Day),
				logger.Error(err),
			)
			continue
		}
		c.holidays = append(c.holidays, h)
		c.business.AddHoliday(h.toCal())
	}

	return c
}

// Config holds environment driven calendar settings.
type Config struct {
	// Timezone is an IANA zone name. "Local" uses the host zone, "" means UTC.
	Timezone string `env:"DATEUTIL_TIMEZONE" envDefault:"Local"`
}

// LoadConfig reads Config from the environment (and .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Calendar located in cfg.Timezone. Extra options are
// applied after the location, so WithLocation still wins.
func NewFromConfig(cfg Config, opts ...Option) (*Calendar, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Join(ErrInvalidTimezone, err)
	}
	return New(append([]Option{WithLocation(loc)}, opts...)...), nil
}

// Holidays returns a copy of the active holiday set.
func (c *Calendar) Holidays() []Holiday {
	return slices.Clone(c.holidays)
}

// Today returns the current date in the calendar's location.
func (c *Calendar) Today() civil.Date {
	return civil.DateOf(c.now().In(c.loc))
}

// IsFutureDate reports whether d is strictly after today.
func (c *Calendar) IsFutureDate(d civil.Date) bool {
	return d.IsValid() && d.After(c.Today())
}

// IsPastDate reports whether d is strictly before today.
func (c *Calendar) IsPastDate(d civil.Date) bool {
	return d.IsValid() && d.Before(c.Today())
}

// CalculateAge returns the number of whole years between birth and today.
// A birth date in the future yields a negative or zero age.
func (c *Calendar) CalculateAge(birth civil.Date) int {
	if !birth.IsValid() {
		return 0
	}
	return MonthsBetween(birth, c.Today()) / 12
}

// IsHoliday reports whether d falls on one of the calendar's holidays.
func (c *Calendar) IsHoliday(d civil.Date) bool {
	_, ok := c.HolidayName(d)
	return ok
}

// HolidayName returns the name of the holiday falling on d.
func (c *Calendar) HolidayName(d civil.Date) (string, bool) {
	if !d.IsValid() {
		return "", false
	}
	actual, _, h := c.business.IsHoliday(d.In(c.loc))
	if !actual || h == nil {
		return "", false
	}
	return h.Name, true
}

// IsWorkingDay reports whether d is neither a weekend day nor a holiday.
func (c *Calendar) IsWorkingDay(d civil.Date) bool {
	return d.IsValid() && !IsWeekend(d) && !c.IsHoliday(d)
}

// CountWorkingDays counts working days in the closed interval [start, end].
func (c *Calendar) CountWorkingDays(start, end civil.Date) int {
	if !start.IsValid() || !end.IsValid() {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// NextDayOfWeek returns the first date strictly after today that falls on
// weekday. An out-of-range weekday yields the zero Date.
func (c *Calendar) NextDayOfWeek(weekday time.Weekday) civil.Date {
	if weekday < time.Sunday || weekday > time.Saturday {
		return civil.Date{}
	}

	today := c.Today()
	delta := (int(weekday) - int(Weekday(today)) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return today.AddDays(delta)
}
