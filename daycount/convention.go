package daycount

import (
	"fmt"
	"strings"
)

// =============================================================================
// CONVENTION - Capability shared by every day count convention
// =============================================================================

// Convention is the runtime view of a day count convention: a display name,
// a stable code and an untyped year fraction. Use it where the convention is
// only known at runtime (configuration, HTTP, CLI).
type Convention interface {
	fmt.Stringer
	Code() Code
	YearFraction(start, end Date) float64
}

// DayCounter is a convention that produces fractions tagged with its own
// type. Every convention type C in this package is a DayCounter[C].
type DayCounter[C Convention] interface {
	Convention
	DayCountFraction(start, end Date) Fraction[C]
}

var (
	_ DayCounter[Actual360]          = Actual360{}
	_ DayCounter[Actual360Inc]       = Actual360Inc{}
	_ DayCounter[Actual364]          = Actual364{}
	_ DayCounter[Actual365Fixed]     = Actual365Fixed{}
	_ DayCounter[Actual365A]         = Actual365A{}
	_ DayCounter[Actual366]          = Actual366{}
	_ DayCounter[Actual366Inc]       = Actual366Inc{}
	_ DayCounter[Actual36525]        = Actual36525{}
	_ DayCounter[Actual36525Inc]     = Actual36525Inc{}
	_ DayCounter[NL365]              = NL365{}
	_ DayCounter[OneOne]             = OneOne{}
	_ DayCounter[Thirty360]          = Thirty360{}
	_ DayCounter[ThirtyE360]         = ThirtyE360{}
	_ DayCounter[ThirtyE360ISDA]     = ThirtyE360ISDA{}
	_ DayCounter[ThirtyEPlus360ISDA] = ThirtyEPlus360ISDA{}
)

// =============================================================================
// CODES - Stable identifiers for storage and transport
// =============================================================================

// Code identifies a convention in configuration, storage and APIs.
type Code string

const (
	CodeActual360          Code = "ACT/360"
	CodeActual360Inc       Code = "ACT/360-INC"
	CodeActual364          Code = "ACT/364"
	CodeActual365Fixed     Code = "ACT/365F"
	CodeActual365A         Code = "ACT/365A"
	CodeActual366          Code = "ACT/366"
	CodeActual366Inc       Code = "ACT/366-INC"
	CodeActual36525        Code = "ACT/365.25"
	CodeActual36525Inc     Code = "ACT/365.25-INC"
	CodeNL365              Code = "NL/365"
	CodeOneOne             Code = "1/1"
	CodeThirty360          Code = "30/360"
	CodeThirtyE360         Code = "30E/360"
	CodeThirtyE360ISDA     Code = "30E/360-ISDA"
	CodeThirtyEPlus360ISDA Code = "30E+/360-ISDA"
)

func (c Code) String() string { return string(c) }

// =============================================================================
// CATALOG - Runtime lookup by code, display name or alias
// =============================================================================

type lookupOptions struct {
	terminationDate *Date
}

// Option configures Lookup.
type Option func(*lookupOptions)

// WithTerminationDate supplies the contract termination date required by
// 30E/360 (ISDA). Other conventions ignore it.
func WithTerminationDate(d Date) Option {
	return func(o *lookupOptions) { o.terminationDate = &d }
}

type catalogEntry struct {
	code    Code
	build   func(lookupOptions) (Convention, error)
	aliases []string
}

func fixed(c Convention) func(lookupOptions) (Convention, error) {
	return func(lookupOptions) (Convention, error) { return c, nil }
}

var catalog = []catalogEntry{
	{CodeActual360, fixed(Actual360{}), []string{"ACT/360", "A/360", "ACTUAL/360", "FRENCH"}},
	{CodeActual360Inc, fixed(Actual360Inc{}), []string{"ACT/360 INC", "ACT/360 (INC)"}},
	{CodeActual364, fixed(Actual364{}), []string{"A/364", "ACTUAL/364"}},
	{CodeActual365Fixed, fixed(Actual365Fixed{}), []string{"ACT/365", "ACT/365 FIXED", "A/365F", "ENGLISH"}},
	{CodeActual365A, fixed(Actual365A{}), []string{"ACT/365 (A)", "ACT/365L"}},
	{CodeActual366, fixed(Actual366{}), []string{"A/366", "ACTUAL/366"}},
	{CodeActual366Inc, fixed(Actual366Inc{}), []string{"ACT/366 INC", "ACT/366 (INC)"}},
	{CodeActual36525, fixed(Actual36525{}), []string{"A/365.25", "ACTUAL/365.25"}},
	{CodeActual36525Inc, fixed(Actual36525Inc{}), []string{"ACT/365.25 INC", "ACT/365.25 (INC)"}},
	{CodeNL365, fixed(NL365{}), []string{"NL365", "ACT/365 NL", "NO LEAP/365"}},
	{CodeOneOne, fixed(OneOne{}), []string{"ONE/ONE", "1/1"}},
	{CodeThirty360, fixed(Thirty360{}), []string{"30/360 US", "30U/360", "BOND BASIS", "360/360"}},
	{CodeThirtyE360, fixed(ThirtyE360{}), []string{"EUROBOND", "EUROBOND BASIS", "30/360 ICMA", "30S/360"}},
	{CodeThirtyE360ISDA, buildThirtyE360ISDA, []string{"30E/360 ISDA", "30/360 GERMAN", "GERMAN"}},
	{CodeThirtyEPlus360ISDA, fixed(ThirtyEPlus360ISDA{}), []string{"30E+/360", "30E+/360 ISDA"}},
}

func buildThirtyE360ISDA(o lookupOptions) (Convention, error) {
	if o.terminationDate == nil {
		return nil, fmt.Errorf("%s: %w", CodeThirtyE360ISDA, ErrTerminationDateRequired)
	}
	return NewThirtyE360ISDA(*o.terminationDate), nil
}

var index = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int)
	for i, e := range catalog {
		idx[normalize(string(e.code))] = i
		for _, a := range e.aliases {
			idx[normalize(a)] = i
		}
	}
	// Display names come from the conventions themselves.
	for i, e := range catalog {
		if c, err := e.build(lookupOptions{terminationDate: &Date{}}); err == nil {
			idx[normalize(c.String())] = i
		}
	}
	return idx
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// Codes returns every supported convention code in catalog order.
func Codes() []Code {
	codes := make([]Code, len(catalog))
	for i, e := range catalog {
		codes[i] = e.code
	}
	return codes
}

// ParseCode resolves a code, display name or common alias to its canonical
// Code. Matching ignores case and repeated whitespace.
func ParseCode(s string) (Code, error) {
	i, ok := index[normalize(s)]
	if !ok {
		return "", &UnknownConventionError{Code: s}
	}
	return catalog[i].code, nil
}

// RequiresTerminationDate reports whether the convention needs
// WithTerminationDate to be built.
func RequiresTerminationDate(code Code) bool {
	return code == CodeThirtyE360ISDA
}

// Lookup returns the convention for a code, display name or alias.
func Lookup(code string, opts ...Option) (Convention, error) {
	i, ok := index[normalize(code)]
	if !ok {
		return nil, &UnknownConventionError{Code: code}
	}
	var o lookupOptions
	for _, opt := range opts {
		opt(&o)
	}
	return catalog[i].build(o)
}

// MustLookup is Lookup for conventions known to exist; it panics otherwise.
func MustLookup(code string, opts ...Option) Convention {
	c, err := Lookup(code, opts...)
	if err != nil {
		panic(err)
	}
	return c
}
