package daycount

// =============================================================================
// ACTUAL/x CONVENTIONS - Actual day count over a fixed denominator
// =============================================================================

// actualDays is the signed number of calendar days in [start, end).
func actualDays(start, end Date) float64 {
	return float64(end.Sub(start))
}

// Actual360 is Actual/360: days / 360.
type Actual360 struct{}

func (Actual360) DayCountFraction(start, end Date) Fraction[Actual360] {
	return NewFraction[Actual360](actualDays(start, end) / 360)
}

func (c Actual360) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual360) Code() Code     { return CodeActual360 }
func (Actual360) String() string { return "Actual/360" }

// Actual360Inc is Actual/360 (inc): the end date is counted, (days + 1) / 360.
type Actual360Inc struct{}

func (Actual360Inc) DayCountFraction(start, end Date) Fraction[Actual360Inc] {
	return NewFraction[Actual360Inc]((actualDays(start, end) + 1) / 360)
}

func (c Actual360Inc) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual360Inc) Code() Code     { return CodeActual360Inc }
func (Actual360Inc) String() string { return "Actual/360 (inc)" }

// Actual364 is Actual/364: days / 364.
type Actual364 struct{}

func (Actual364) DayCountFraction(start, end Date) Fraction[Actual364] {
	return NewFraction[Actual364](actualDays(start, end) / 364)
}

func (c Actual364) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual364) Code() Code     { return CodeActual364 }
func (Actual364) String() string { return "Actual/364" }

// Actual365Fixed is Actual/365 (Fixed): days / 365 regardless of leap years.
type Actual365Fixed struct{}

func (Actual365Fixed) DayCountFraction(start, end Date) Fraction[Actual365Fixed] {
	return NewFraction[Actual365Fixed](actualDays(start, end) / 365)
}

func (c Actual365Fixed) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual365Fixed) Code() Code     { return CodeActual365Fixed }
func (Actual365Fixed) String() string { return "Actual/365 (Fixed)" }

// Actual365A is Actual/365 (A). The denominator is 366 when a 29 February
// falls in (start, end], otherwise 365.
type Actual365A struct{}

func (Actual365A) DayCountFraction(start, end Date) Fraction[Actual365A] {
	denominator := 365.0
	if IsFeb29Between(start, end) {
		denominator = 366
	}
	return NewFraction[Actual365A](actualDays(start, end) / denominator)
}

func (c Actual365A) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual365A) Code() Code     { return CodeActual365A }
func (Actual365A) String() string { return "Actual/365 (A)" }

// Actual366 is Actual/366: days / 366.
type Actual366 struct{}

func (Actual366) DayCountFraction(start, end Date) Fraction[Actual366] {
	return NewFraction[Actual366](actualDays(start, end) / 366)
}

func (c Actual366) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual366) Code() Code     { return CodeActual366 }
func (Actual366) String() string { return "Actual/366" }

// Actual366Inc is Actual/366 (inc): (days + 1) / 366.
type Actual366Inc struct{}

func (Actual366Inc) DayCountFraction(start, end Date) Fraction[Actual366Inc] {
	return NewFraction[Actual366Inc]((actualDays(start, end) + 1) / 366)
}

func (c Actual366Inc) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual366Inc) Code() Code     { return CodeActual366Inc }
func (Actual366Inc) String() string { return "Actual/366 (inc)" }

// Actual36525 is Actual/365.25: days / 365.25.
type Actual36525 struct{}

func (Actual36525) DayCountFraction(start, end Date) Fraction[Actual36525] {
	return NewFraction[Actual36525](actualDays(start, end) / 365.25)
}

func (c Actual36525) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual36525) Code() Code     { return CodeActual36525 }
func (Actual36525) String() string { return "Actual/365.25" }

// Actual36525Inc is Actual/365.25 (inc): (days + 1) / 365.25.
type Actual36525Inc struct{}

func (Actual36525Inc) DayCountFraction(start, end Date) Fraction[Actual36525Inc] {
	return NewFraction[Actual36525Inc]((actualDays(start, end) + 1) / 365.25)
}

func (c Actual36525Inc) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (Actual36525Inc) Code() Code     { return CodeActual36525Inc }
func (Actual36525Inc) String() string { return "Actual/365.25 (inc)" }

// NL365 is NL/365 ("no leap"): a 29 February inside (start, end] is not
// counted, (days - 1) / 365, otherwise days / 365.
type NL365 struct{}

func (NL365) DayCountFraction(start, end Date) Fraction[NL365] {
	days := actualDays(start, end)
	if IsFeb29Between(start, end) {
		days--
	}
	return NewFraction[NL365](days / 365)
}

func (c NL365) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (NL365) Code() Code     { return CodeNL365 }
func (NL365) String() string { return "NL/365" }

// OneOne is 1/1: the fraction is always 1, whatever the dates.
type OneOne struct{}

func (OneOne) DayCountFraction(_, _ Date) Fraction[OneOne] {
	return NewFraction[OneOne](1)
}

func (c OneOne) YearFraction(start, end Date) float64 {
	return c.DayCountFraction(start, end).Value()
}

func (OneOne) Code() Code     { return CodeOneOne }
func (OneOne) String() string { return "1/1" }
