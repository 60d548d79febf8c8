package daycount

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar day abstraction (backed by time.Time at midnight UTC)
// =============================================================================

// DateLayout is the ISO-8601 calendar date layout used for text encoding.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is an immutable calendar day. The zero value is 0001-01-01.
//
// All Gregorian logic (leap years, month lengths) is delegated to the time
// package; Date only pins the value to midnight UTC so that day differences
// are exact.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components. Out-of-range components
// (month 13, 31 February, 29 February in a common year) are rejected rather
// than normalised.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, &InvalidDateError{Year: year, Month: int(month), Day: day}
	}
	return Date{t: t}, nil
}

// MustDate is NewDate for literals; it panics on an invalid date.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) Time() time.Time   { return d.t }
func (d Date) IsZero() bool      { return d.t.IsZero() }

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	default:
		return 0
	}
}

// Sub returns the signed number of whole days from other to d.
func (d Date) Sub(other Date) int {
	return int((d.t.Unix() - other.t.Unix()) / secondsPerDay)
}

// AddDays returns the date n calendar days later (earlier when n < 0).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalText encodes the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD date.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
