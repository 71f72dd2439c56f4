// Package dateutil provides calendar predicates and date arithmetic over
// civil (timezone-free) dates: future/past checks, age, weekends, holidays,
// working days, recurring dates, month ends, day and month differences and
// simple min/max reductions.
//
// Dates are represented by cloud.google.com/go/civil.Date. The zero Date is
// not a valid calendar date and is treated as "no date": predicates return
// false, counters return 0 and date-returning functions return the zero Date.
//
// # Calendar
//
// A Calendar bundles the holiday set, the clock and the location used to
// decide what "today" is. Holiday matching is delegated to
// github.com/rickar/cal/v2. The package-level functions use a default
// calendar with the French fixed-date public holidays, time.Now and
// time.Local:
//
//	if dateutil.IsWorkingDay(civil.Date{Year: 2024, Month: time.December, Day: 26}) {
//	    // Thursday, not a holiday
//	}
//
// Custom calendars take any set of (month, day) holidays:
//
//	holidays, err := dateutil.ParseHolidays(yamlBytes)
//	if err != nil {
//	    return err
//	}
//	c := dateutil.New(
//	    dateutil.WithHolidays(holidays...),
//	    dateutil.WithLocation(paris),
//	)
//	n := c.CountWorkingDays(start, end)
//
// Holidays are fixed (month, day) pairs that repeat every year. Moving
// holidays such as Easter Monday are not supported.
//
// All functions are pure apart from reading the calendar's clock, and a
// Calendar is immutable once built, so everything here is safe for concurrent
// use.
package dateutil
