package daycount

import "time"

// =============================================================================
// 30/360 FAMILY - Every month counts 30 days, every year 360
// =============================================================================
//
// Each convention adjusts the day-of-month of the start (D1) and end (D2)
// dates, then evaluates
//
//	(360*(Y2-Y1) + 30*(M2-M1) + (D2-D1)) / 360
//
// The numerator is signed; an end before the start gives a negative fraction.

func ymd(d Date) (year, month, day int) {
	return d.Year(), int(d.Month()), d.Day()
}

func thirty360Fraction(y1, m1, d1, y2, m2, d2 int) float64 {
	numerator := 360*(y2-y1) + 30*(m2-m1) + (d2 - d1)
	return float64(numerator) / 360
}

// Thirty360 is 30/360 (bond basis):
//  1. If D1 is 31, change D1 to 30.
//  2. If D2 is 31 and D1 is 30 or 31, change D2 to 30.
type Thirty360 struct{}

func (Thirty360) DayCountFraction(start, end Date) Fraction[Thirty360] {
	y1, m1, d1 := ymd(start)
	y2, m2, d2 := ymd(end)

	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	return NewFraction[Thirty360](thirty360Fraction(y1, m1, d1, y2, m2, d2))
}

func (c Thirty360) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Thirty360) Code() Code     { return CodeThirty360 }
func (Thirty360) String() string { return "30/360" }

// ThirtyE360 is 30E/360 (Eurobond basis):
//  1. If D1 is 31, change D1 to 30.
//  2. If D2 is 31, change D2 to 30.
type ThirtyE360 struct{}

func (ThirtyE360) DayCountFraction(start, end Date) Fraction[ThirtyE360] {
	y1, m1, d1 := ymd(start)
	y2, m2, d2 := ymd(end)

	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 {
		d2 = 30
	}
	return NewFraction[ThirtyE360](thirty360Fraction(y1, m1, d1, y2, m2, d2))
}

func (c ThirtyE360) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (ThirtyE360) Code() Code     { return CodeThirtyE360 }
func (ThirtyE360) String() string { return "30E/360" }

// ThirtyE360ISDA is 30E/360 (ISDA). It carries the termination date of the
// contract, fixed at construction:
//  1. If D1 is the last day of its month, change D1 to 30.
//  2. If the end date is the last day of February, and it is not the
//     termination date or D2 is 31, change D2 to 30.
//
// A February period end that is also the final termination date keeps its
// actual day number.
type ThirtyE360ISDA struct {
	terminationDate Date
}

// NewThirtyE360ISDA returns a 30E/360 (ISDA) counter for a contract that
// terminates on terminationDate.
func NewThirtyE360ISDA(terminationDate Date) ThirtyE360ISDA {
	return ThirtyE360ISDA{terminationDate: terminationDate}
}

// TerminationDate returns the contract termination date.
func (c ThirtyE360ISDA) TerminationDate() Date { return c.terminationDate }

func (c ThirtyE360ISDA) DayCountFraction(start, end Date) Fraction[ThirtyE360ISDA] {
	y1, m1, d1 := ymd(start)
	y2, m2, d2 := ymd(end)

	if d1 == LastDayOfMonth(y1, time.Month(m1)) {
		d1 = 30
	}
	if IsLastDayOfFebruary(end) && (!end.Equal(c.terminationDate) || d2 == 31) {
		d2 = 30
	}
	return NewFraction[ThirtyE360ISDA](thirty360Fraction(y1, m1, d1, y2, m2, d2))
}

func (c ThirtyE360ISDA) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (ThirtyE360ISDA) Code() Code     { return CodeThirtyE360ISDA }
func (ThirtyE360ISDA) String() string { return "30E/360 (ISDA)" }

// ThirtyEPlus360ISDA is 30E+/360 (ISDA):
//  1. If D1 is 31, change D1 to 30.
//  2. If D2 is 31, change D2 to 1 and move M2 one month forward.
//
// M2 may reach 13; Y2 is left alone since only M2-M1 enters the formula.
type ThirtyEPlus360ISDA struct{}

func (ThirtyEPlus360ISDA) DayCountFraction(start, end Date) Fraction[ThirtyEPlus360ISDA] {
	y1, m1, d1 := ymd(start)
	y2, m2, d2 := ymd(end)

	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 {
		d2 = 1
		m2++
	}
	return NewFraction[ThirtyEPlus360ISDA](thirty360Fraction(y1, m1, d1, y2, m2, d2))
}

func (c ThirtyEPlus360ISDA) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (ThirtyEPlus360ISDA) Code() Code     { return CodeThirtyEPlus360ISDA }
func (ThirtyEPlus360ISDA) String() string { return "30E+/360 (ISDA)" }
