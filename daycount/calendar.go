package daycount

import "time"

// =============================================================================
// CALENDAR UTILITIES
// =============================================================================

// LastDayOfMonth returns the day number of the last day of the given month.
// Computed as day 1 of the following month minus one day, so December rolls
// into the next year and February follows the leap-year rule.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}

// IsLeapYear reports whether February of year has 29 days.
func IsLeapYear(year int) bool {
	return LastDayOfMonth(year, time.February) == 29
}

// IsLastDayOfFebruary reports whether d is 28 February in a common year or
// 29 February in a leap year.
func IsLastDayOfFebruary(d Date) bool {
	if d.Month() != time.February {
		return false
	}
	return d.Day() == LastDayOfMonth(d.Year(), time.February)
}

// IsFeb29Between reports whether a 29 February falls in (start, end]:
// strictly after start and on or before end. Every year from start's year
// to end's year is checked, so multi-year periods are handled.
func IsFeb29Between(start, end Date) bool {
	for year := start.Year(); year <= end.Year(); year++ {
		if !IsLeapYear(year) {
			continue
		}
		feb29 := Date{t: time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC)}
		if feb29.After(start) && !feb29.After(end) {
			return true
		}
	}
	return false
}
