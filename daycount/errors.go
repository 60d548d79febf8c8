/*
errors.go - Error types for the day count package

PURPOSE:
  Conventions themselves never fail: every convention is total over valid
  dates. Errors only come from building inputs (dates, schedules) and from
  resolving a convention by code.

ERROR CATEGORIES:
  1. Date errors - Invalid calendar components or unparsable text
  2. Lookup errors - Unknown convention code, missing termination date
  3. Schedule errors - Date lists that cannot form accrual periods

USAGE:
  if errors.Is(err, daycount.ErrUnknownConvention) {
      ...
  }
*/
package daycount

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when year/month/day do not name a real
	// calendar day, or when date text cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownConvention is returned when a code matches no convention.
	ErrUnknownConvention = errors.New("unknown day count convention")

	// ErrTerminationDateRequired is returned when 30E/360 (ISDA) is looked up
	// without a termination date.
	ErrTerminationDateRequired = errors.New("termination date required")

	// ErrScheduleTooShort is returned when fewer than two dates are supplied.
	ErrScheduleTooShort = errors.New("schedule needs at least two dates")

	// ErrUnsortedSchedule is returned when schedule dates are not strictly
	// ascending.
	ErrUnsortedSchedule = errors.New("schedule dates must be strictly ascending")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidDateError records the rejected components.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %04d-%02d-%02d", e.Year, e.Month, e.Day)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

// UnknownConventionError records the code that failed to resolve.
type UnknownConventionError struct {
	Code string
}

func (e *UnknownConventionError) Error() string {
	return fmt.Sprintf("unknown day count convention %q", e.Code)
}

func (e *UnknownConventionError) Unwrap() error {
	return ErrUnknownConvention
}
