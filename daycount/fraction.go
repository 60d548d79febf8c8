package daycount

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// FRACTION - Year fraction tagged with the convention that produced it
// =============================================================================

// Fraction is a day count fraction produced by convention C.
//
// The convention is part of the type: a Fraction[Actual360] cannot be
// compared with a Fraction[NL365], neither with Equal nor with ==. To compare
// across conventions, extract Value first.
type Fraction[C Convention] struct {
	value float64
}

// NewFraction wraps a raw value as a fraction of convention C.
func NewFraction[C Convention](value float64) Fraction[C] {
	return Fraction[C]{value: value}
}

// Value returns the raw fraction exactly as it was stored.
func (f Fraction[C]) Value() float64 { return f.value }

// Equal reports whether two fractions of the same convention are equal.
func (f Fraction[C]) Equal(other Fraction[C]) bool { return f.value == other.value }

// Decimal returns the fraction as a decimal, for fixed-precision rendering.
func (f Fraction[C]) Decimal() decimal.Decimal { return decimal.NewFromFloat(f.value) }

// Convention returns the display name of the producing convention.
func (f Fraction[C]) Convention() string {
	var c C
	return c.String()
}

func (f Fraction[C]) String() string {
	return strconv.FormatFloat(f.value, 'f', -1, 64) + " (" + f.Convention() + ")"
}
