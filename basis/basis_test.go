package basis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/daycount/basis"
	"github.com/warp/daycount/daycount"
)

func datePtr(year int, month time.Month, day int) *daycount.Date {
	d := daycount.MustDate(year, month, day)
	return &d
}

func TestBasis_Validate(t *testing.T) {
	cases := []struct {
		name    string
		b       basis.Basis
		wantErr error
	}{
		{"valid fixed convention", basis.Basis{ID: "usd-sofr", Code: daycount.CodeActual360}, nil},
		{"valid ISDA", basis.Basis{ID: "eur-swap", Code: daycount.CodeThirtyE360ISDA, TerminationDate: datePtr(2029, time.February, 28)}, nil},
		{"display name accepted", basis.Basis{ID: "x", Code: "Actual/365 (Fixed)"}, nil},
		{"missing id", basis.Basis{Code: daycount.CodeActual360}, basis.ErrInvalidBasis},
		{"unknown convention", basis.Basis{ID: "x", Code: "BUS/252"}, daycount.ErrUnknownConvention},
		{"ISDA without termination", basis.Basis{ID: "x", Code: daycount.CodeThirtyE360ISDA}, daycount.ErrTerminationDateRequired},
		{"termination on fixed convention", basis.Basis{ID: "x", Code: daycount.CodeNL365, TerminationDate: datePtr(2029, time.February, 28)}, basis.ErrInvalidBasis},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.b.Validate()
			if c.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.wantErr)
			assert.ErrorIs(t, err, basis.ErrInvalidBasis)
		})
	}
}

func TestBasis_Canonical(t *testing.T) {
	b, err := basis.Basis{ID: "gbp", Code: "act/365 fixed"}.Canonical()
	require.NoError(t, err)
	assert.Equal(t, daycount.CodeActual365Fixed, b.Code)
}

func TestBasis_Convention(t *testing.T) {
	// GIVEN: An ISDA basis terminating on 29 February 2024
	b := basis.Basis{ID: "swap-1", Code: daycount.CodeThirtyE360ISDA, TerminationDate: datePtr(2024, time.February, 29)}

	// WHEN: Building the convention
	conv, err := b.Convention()
	require.NoError(t, err)

	// THEN: The termination date flows into the fraction
	got := conv.YearFraction(daycount.MustDate(2023, time.August, 31), daycount.MustDate(2024, time.February, 29))
	assert.InDelta(t, 179.0/360, got, 1e-12)
	assert.Equal(t, "30E/360 (ISDA)", conv.String())
}

func TestBasis_DisplayName(t *testing.T) {
	assert.Equal(t, "usd-sofr", basis.Basis{ID: "usd-sofr"}.DisplayName())
	assert.Equal(t, "USD SOFR", basis.Basis{ID: "usd-sofr", Name: "USD SOFR"}.DisplayName())
}
