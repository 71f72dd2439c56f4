package dateutil

import (
	"errors"
	"fmt"
	"time"

	cal "github.com/rickar/cal/v2"
	"gopkg.in/yaml.v3"
)

// Holiday is a public holiday that falls on the same month and day every year.
type Holiday struct {
	Name  string     `yaml:"name"`
	Month time.Month `yaml:"month"`
	Day   int        `yaml:"day"`
}

// FrenchHolidays are the fixed-date French public holidays.
var FrenchHolidays = []Holiday{
	{Name: "Jour de l'an", Month: time.January, Day: 1},
	{Name: "Fête du Travail", Month: time.May, Day: 1},
	{Name: "Victoire 1945", Month: time.May, Day: 8},
	{Name: "Fête nationale", Month: time.July, Day: 14},
	{Name: "Assomption", Month: time.August, Day: 15},
	{Name: "Toussaint", Month: time.November, Day: 1},
	{Name: "Armistice 1918", Month: time.November, Day: 11},
	{Name: "Noël", Month: time.December, Day: 25},
}

// Validate reports whether the holiday names a day that exists in every year.
// 29 February is rejected because it would drift to 1 March in common years.
func (h Holiday) Validate() error {
	if h.Month < time.January || h.Month > time.December {
		return fmt.Errorf("%w: %q has month %d", ErrInvalidHoliday, h.Name, int(h.Month))
	}
	// 2001 is a common year, so February has 28 days.
	last := time.Date(2001, h.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if h.Day < 1 || h.Day > last {
		return fmt.Errorf("%w: %q has day %d in %s", ErrInvalidHoliday, h.Name, h.Day, h.Month)
	}
	return nil
}

func (h Holiday) String() string {
	return fmt.Sprintf("%s (%02d-%02d)", h.Name, int(h.Month), h.Day)
}

func (h Holiday) toCal() *cal.Holiday {
	return &cal.Holiday{
		Name:  h.Name,
		Type:  cal.ObservancePublic,
		Month: h.Month,
		Day:   h.Day,
		Func:  cal.CalcDayOfMonth,
	}
}

// ParseHolidays decodes a YAML list of holidays and validates every entry.
//
//	- name: Jour de l'an
//	  month: 1
//	  day: 1
//	- name: Noël
//	  month: 12
//	  day: 25
func ParseHolidays(data []byte) ([]Holiday, error) {
	var holidays []Holiday
	if err := yaml.Unmarshal(data, &holidays); err != nil {
		return nil, errors.Join(ErrParsingHolidays, err)
	}

	var errs []error
	for _, h := range holidays {
		if err := h.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrParsingHolidays}, errs...)...)
	}

	return holidays, nil
}
