package daycount

import "github.com/shopspring/decimal"

// =============================================================================
// PERIOD - One accrual period of a schedule
// =============================================================================

// Period is an accrual period from Start to End.
type Period struct {
	Start Date
	End   Date
}

// Days returns the actual number of days in the period.
func (p Period) Days() int {
	return p.End.Sub(p.Start)
}

// Contains returns true if d is within [Start, End].
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// SCHEDULE - A convention applied across consecutive periods
// =============================================================================

// PeriodsFromDates turns an ordered list of schedule dates into consecutive
// periods: dates[0]→dates[1], dates[1]→dates[2], and so on.
func PeriodsFromDates(dates []Date) ([]Period, error) {
	if len(dates) < 2 {
		return nil, ErrScheduleTooShort
	}
	periods := make([]Period, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, ErrUnsortedSchedule
		}
		periods = append(periods, Period{Start: dates[i-1], End: dates[i]})
	}
	return periods, nil
}

// YearFractions returns the fraction of each period under c.
func YearFractions(c Convention, periods []Period) []float64 {
	out := make([]float64, len(periods))
	for i, p := range periods {
		out[i] = c.YearFraction(p.Start, p.End)
	}
	return out
}

// Total sums the period fractions under c. The sum is accumulated in
// decimal so that long schedules do not drift.
func Total(c Convention, periods []Period) decimal.Decimal {
	total := decimal.Zero
	for _, f := range YearFractions(c, periods) {
		total = total.Add(decimal.NewFromFloat(f))
	}
	return total
}
