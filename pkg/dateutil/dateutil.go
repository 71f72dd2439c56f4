package dateutil

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/dmitrymomot/inputkit/pkg/datefmt"
)

// defaultCalendar backs the package-level functions.
var defaultCalendar = New()

// Default returns the calendar used by the package-level functions.
func Default() *Calendar {
	return defaultCalendar
}

// IsFutureDate reports whether d is strictly after today.
func IsFutureDate(d civil.Date) bool {
	return defaultCalendar.IsFutureDate(d)
}

// IsPastDate reports whether d is strictly before today.
func IsPastDate(d civil.Date) bool {
	return defaultCalendar.IsPastDate(d)
}

// CalculateAge returns the number of whole years between birth and today.
func CalculateAge(birth civil.Date) int {
	return defaultCalendar.CalculateAge(birth)
}

// IsHoliday reports whether d is one of the French fixed-date public holidays.
func IsHoliday(d civil.Date) bool {
	return defaultCalendar.IsHoliday(d)
}

// IsWorkingDay reports whether d is neither a weekend day nor a holiday.
func IsWorkingDay(d civil.Date) bool {
	return defaultCalendar.IsWorkingDay(d)
}

// CountWorkingDays counts working days in the closed interval [start, end].
func CountWorkingDays(start, end civil.Date) int {
	return defaultCalendar.CountWorkingDays(start, end)
}

// NextDayOfWeek returns the first date strictly after today that falls on weekday.
func NextDayOfWeek(weekday time.Weekday) civil.Date {
	return defaultCalendar.NextDayOfWeek(weekday)
}

// Weekday returns the day of the week of d.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func IsWeekend(d civil.Date) bool {
	if !d.IsValid() {
		return false
	}
	wd := Weekday(d)
	return wd == time.Saturday || wd == time.Sunday
}

// PeriodsOverlap reports whether [start1, end1] and [start2, end2] share at least one day.
func PeriodsOverlap(start1, end1, start2, end2 civil.Date) bool {
	return Range{Start: start1, End: end1}.Overlaps(Range{Start: start2, End: end2})
}

// GenerateRecurringDates returns start, start+step, start+2*step, ... up to and
// including end. It returns nil when step is not positive, a bound is invalid
// or start is after end.
func GenerateRecurringDates(start, end civil.Date, stepDays int) []civil.Date {
	if !start.IsValid() || !end.IsValid() || stepDays <= 0 {
		return nil
	}

	var dates []civil.Date
	for d := start; !d.After(end); d = d.AddDays(stepDays) {
		dates = append(dates, d)
	}
	return dates
}

// LastDayOfMonth returns the last day of d's month.
func LastDayOfMonth(d civil.Date) civil.Date {
	if !d.IsValid() {
		return civil.Date{}
	}
	return civil.Date{Year: d.Year, Month: d.Month, Day: daysIn(d.Month, d.Year)}
}

// IsLeapYear applies the Gregorian leap year rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysBetween returns end minus start in days. It is negative when end is
// before start.
func DaysBetween(start, end civil.Date) int {
	if !start.IsValid() || !end.IsValid() {
		return 0
	}
	return end.DaysSince(start)
}

// MonthsBetween returns the number of whole months from start to end,
// truncated toward zero. 31 January to 29 February is 0 months, 31 January to
// 1 March is 1 month.
func MonthsBetween(start, end civil.Date) int {
	if !start.IsValid() || !end.IsValid() {
		return 0
	}

	months := (end.Year*12 + int(end.Month)) - (start.Year*12 + int(start.Month))
	days := end.Day - start.Day
	switch {
	case months > 0 && days < 0:
		months--
	case months < 0 && days > 0:
		months++
	}
	return months
}

// FormatDate renders d with a pattern such as "dd/MM/yyyy". It yields "" for
// an invalid date, a year outside 0..9999 or a pattern datefmt rejects.
func FormatDate(d civil.Date, pattern string) string {
	if !d.IsValid() || pattern == "" {
		return ""
	}
	s, err := datefmt.Format(d.In(time.UTC), pattern)
	if err != nil {
		return ""
	}
	return s
}

// IsBirthday reports whether check falls on the anniversary of birth.
// Years are ignored, so a 29 February birthday only matches leap years.
func IsBirthday(birth, check civil.Date) bool {
	if !birth.IsValid() || !check.IsValid() {
		return false
	}
	return birth.Month == check.Month && birth.Day == check.Day
}

// MostRecentDate returns the latest valid date in dates, or the zero Date if
// there is none. Invalid entries are skipped.
func MostRecentDate(dates []civil.Date) civil.Date {
	var latest civil.Date
	for _, d := range dates {
		if d.IsValid() && (!latest.IsValid() || d.After(latest)) {
			latest = d
		}
	}
	return latest
}

// OldestDate returns the earliest valid date in dates, or the zero Date if
// there is none. Invalid entries are skipped.
func OldestDate(dates []civil.Date) civil.Date {
	var oldest civil.Date
	for _, d := range dates {
		if d.IsValid() && (!oldest.IsValid() || d.Before(oldest)) {
			oldest = d
		}
	}
	return oldest
}

// IsDateInRange reports whether start <= d <= end.
func IsDateInRange(d, start, end civil.Date) bool {
	return Range{Start: start, End: end}.Contains(d)
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
