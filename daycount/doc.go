/*
Package daycount computes day count fractions (year fractions) between two
calendar dates.

PURPOSE:
  A day count convention maps a (start, end) date pair to the fraction of a
  year used to scale an interest rate into accrued interest. This package
  implements a fixed catalog of conventions as pure functions over Date
  values. There is no I/O and no shared mutable state; every convention is
  safe for concurrent use.

SUPPORTED CONVENTIONS:
  Actual/360             Actual360
  Actual/360 (inc)       Actual360Inc
  Actual/364             Actual364
  Actual/365 (Fixed)     Actual365Fixed
  Actual/365 (A)         Actual365A
  Actual/366             Actual366
  Actual/366 (inc)       Actual366Inc
  Actual/365.25          Actual36525
  Actual/365.25 (inc)    Actual36525Inc
  NL/365                 NL365
  1/1                    OneOne
  30/360                 Thirty360
  30E/360                ThirtyE360
  30E/360 (ISDA)         ThirtyE360ISDA (needs a termination date)
  30E+/360 (ISDA)        ThirtyEPlus360ISDA

TYPE-TAGGED FRACTIONS:
  DayCountFraction returns a Fraction[C] where C is the convention type.
  Fractions from different conventions are different Go types and cannot be
  compared without calling Value():

    a := daycount.Actual360{}.DayCountFraction(start, end)
    b := daycount.NL365{}.DayCountFraction(start, end)
    // a.Equal(b)               does not compile
    a.Value() == b.Value()   // explicit

RUNTIME SELECTION:
  When the convention comes from configuration, use Lookup to get a
  Convention and call YearFraction:

    conv, err := daycount.Lookup("30E/360 (ISDA)",
        daycount.WithTerminationDate(daycount.MustDate(2029, time.February, 28)))

DATES:
  Date is a calendar day backed by time.Time. NewDate rejects impossible
  dates (31 February); conventions never fail once they have valid dates.
  End dates before start dates are allowed and give signed fractions.

SEE ALSO:
  - calendar.go: Month-end and leap-day helpers
  - schedule.go: Applying a convention across accrual periods
  - convention.go: Codes, aliases and Lookup
*/
package daycount
