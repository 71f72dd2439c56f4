package dateutil

import "cloud.google.com/go/civil"

// Range is a closed interval of dates. A Range whose Start is after its End
// is empty.
type Range struct {
	Start civil.Date
	End   civil.Date
}

// Valid reports whether both ends are valid dates.
func (r Range) Valid() bool {
	return r.Start.IsValid() && r.End.IsValid()
}

// Contains reports whether d lies within the range, both ends included.
func (r Range) Contains(d civil.Date) bool {
	if !r.Valid() || !d.IsValid() {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether the two ranges share at least one day.
func (r Range) Overlaps(other Range) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Days returns the number of days in the range, 0 for an empty or invalid range.
func (r Range) Days() int {
	if !r.Valid() || r.Start.After(r.End) {
		return 0
	}
	return r.End.DaysSince(r.Start) + 1
}
