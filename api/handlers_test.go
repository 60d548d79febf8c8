/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Ad-hoc fractions and schedules
- Validation errors (invalid dates, unknown conventions, missing termination)
- Basis CRUD and per-basis calculations
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/daycount/basis/store"
	"github.com/warp/daycount/factory"
)

func newTestServer(t *testing.T) (*Handler, http.Handler) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(store.NewMemory(), logger)
	return h, NewRouter(h, nil)
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func precision(p int32) *int32 { return &p }

func TestHealth(t *testing.T) {
	_, router := newTestServer(t)

	rec := do(t, router, http.MethodGet, "/api/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}

func TestListConventions(t *testing.T) {
	_, router := newTestServer(t)

	rec := do(t, router, http.MethodGet, "/api/conventions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	convs := decode[[]ConventionDTO](t, rec)
	require.Len(t, convs, 15)
	assert.Equal(t, "ACT/360", convs[0].Code)
	assert.Equal(t, "Actual/360", convs[0].DisplayName)

	var isda ConventionDTO
	for _, c := range convs {
		if c.Code == "30E/360-ISDA" {
			isda = c
		}
	}
	assert.True(t, isda.RequiresTerminationDate)
	assert.Equal(t, "30E/360 (ISDA)", isda.DisplayName)
}

// =============================================================================
// FRACTIONS
// =============================================================================

func TestCalculateFraction_Actual360(t *testing.T) {
	_, router := newTestServer(t)

	rec := do(t, router, http.MethodPost, "/api/fractions", FractionRequest{
		Convention: "ACT/360",
		Start:      "2024-01-01",
		End:        "2024-07-01",
		Precision:  precision(6),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[FractionDTO](t, rec)
	assert.Equal(t, 182, got.Days)
	assert.InDelta(t, 182.0/360.0, got.Fraction, 1e-12)
	assert.Equal(t, "0.505556", got.FractionDecimal)
	assert.Equal(t, "Actual/360", got.DisplayName)
}

func TestCalculateFraction_AliasAndDefaultPrecision(t *testing.T) {
	_, router := newTestServer(t)

	rec := do(t, router, http.MethodPost, "/api/fractions", FractionRequest{
		Convention: "actual/364",
		Start:      "2024-01-01",
		End:        "2024-07-01",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[FractionDTO](t, rec)
	assert.Equal(t, "ACT/364", got.Convention)
	assert.Equal(t, "0.5", got.FractionDecimal)
}

func TestCalculateFraction_ThirtyE360ISDA(t *testing.T) {
	_, router := newTestServer(t)

	// End is the termination date and the last day of February: d2 stays 29.
	rec := do(t, router, http.MethodPost, "/api/fractions", FractionRequest{
		Convention:      "30E/360-ISDA",
		Start:           "2024-01-31",
		End:             "2024-02-29",
		TerminationDate: "2024-02-29",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 29.0/360.0, decode[FractionDTO](t, rec).Fraction, 1e-12)

	// Otherwise the last day of February rolls to 30.
	rec = do(t, router, http.MethodPost, "/api/fractions", FractionRequest{
		Convention:      "30E/360-ISDA",
		Start:           "2024-01-31",
		End:             "2024-02-29",
		TerminationDate: "2029-02-28",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 30.0/360.0, decode[FractionDTO](t, rec).Fraction, 1e-12)
}

func TestCalculateFraction_Errors(t *testing.T) {
	_, router := newTestServer(t)

	tests := []struct {
		name string
		req  FractionRequest
	}{
		{"invalid calendar date", FractionRequest{Convention: "ACT/360", Start: "2024-02-31", End: "2024-03-31"}},
		{"malformed date", FractionRequest{Convention: "ACT/360", Start: "01/02/2024", End: "2024-03-31"}},
		{"missing end", FractionRequest{Convention: "ACT/360", Start: "2024-01-01"}},
		{"unknown convention", FractionRequest{Convention: "ACT/999", Start: "2024-01-01", End: "2024-03-31"}},
		{"missing convention", FractionRequest{Start: "2024-01-01", End: "2024-03-31"}},
		{"missing termination", FractionRequest{Convention: "30E/360-ISDA", Start: "2024-01-01", End: "2024-03-31"}},
		{"precision out of range", FractionRequest{Convention: "ACT/360", Start: "2024-01-01", End: "2024-03-31", Precision: precision(40)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/fractions", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decode[ErrorResponse](t, rec).Error)
		})
	}
}

func TestCalculateFraction_MalformedBody(t *testing.T) {
	_, router := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/fractions", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// SCHEDULES
// =============================================================================

func TestCalculateSchedule(t *testing.T) {
	_, router := newTestServer(t)

	rec := do(t, router, http.MethodPost, "/api/schedules", ScheduleRequest{
		Convention: "30/360",
		Dates:      []string{"2024-01-15", "2024-04-15", "2024-07-15", "2024-10-15", "2025-01-15"},
		Precision:  precision(4),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[ScheduleResponse](t, rec)
	require.Len(t, got.Periods, 4)
	for _, p := range got.Periods {
		assert.InDelta(t, 0.25, p.Fraction, 1e-12)
		assert.Equal(t, "0.2500", p.FractionDecimal)
	}
	assert.InDelta(t, 1.0, got.Total, 1e-12)
	assert.Equal(t, "1.0000", got.TotalDecimal)
}

func TestCalculateSchedule_Errors(t *testing.T) {
	_, router := newTestServer(t)

	rec := do(t, router, http.MethodPost, "/api/schedules", ScheduleRequest{
		Convention: "ACT/360",
		Dates:      []string{"2024-01-15"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/schedules", ScheduleRequest{
		Convention: "ACT/360",
		Dates:      []string{"2024-04-15", "2024-01-15"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/schedules", ScheduleRequest{
		Convention: "ACT/360",
		Dates:      []string{"2024-01-15", "2023-02-29"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// BASES
// =============================================================================

func TestBasisLifecycle(t *testing.T) {
	_, router := newTestServer(t)

	// Create
	rec := do(t, router, http.MethodPost, "/api/bases", factory.BasisJSON{
		ID:              "eur-isda",
		Name:            "EUR ISDA fixed",
		Convention:      "30E/360 ISDA",
		TerminationDate: "2024-02-29",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[BasisDTO](t, rec)
	assert.Equal(t, "30E/360-ISDA", created.Convention)
	assert.Equal(t, "30E/360 (ISDA)", created.ConventionName)
	assert.Equal(t, 1, created.Version)

	// Replace
	rec = do(t, router, http.MethodPost, "/api/bases", factory.BasisJSON{
		ID:              "eur-isda",
		Name:            "EUR ISDA fixed (renamed)",
		Convention:      "30E/360-ISDA",
		TerminationDate: "2024-02-29",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 2, decode[BasisDTO](t, rec).Version)

	// Get
	rec = do(t, router, http.MethodGet, "/api/bases/eur-isda", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EUR ISDA fixed (renamed)", decode[BasisDTO](t, rec).Name)

	// Compute with the stored termination date
	rec = do(t, router, http.MethodPost, "/api/bases/eur-isda/fractions", BasisFractionRequest{
		Start: "2024-01-31",
		End:   "2024-02-29",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	frac := decode[FractionDTO](t, rec)
	assert.Equal(t, "eur-isda", frac.Basis)
	assert.InDelta(t, 29.0/360.0, frac.Fraction, 1e-12)

	// List
	rec = do(t, router, http.MethodGet, "/api/bases", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]BasisDTO](t, rec), 1)

	// Delete
	rec = do(t, router, http.MethodDelete, "/api/bases/eur-isda", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/bases/eur-isda", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBasis_Invalid(t *testing.T) {
	_, router := newTestServer(t)

	rec := do(t, router, http.MethodPost, "/api/bases", factory.BasisJSON{
		ID:         "broken",
		Name:       "Broken",
		Convention: "30E/360-ISDA",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/bases", factory.BasisJSON{
		ID:         "nope",
		Name:       "Nope",
		Convention: "ACT/123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBasisNotFound(t *testing.T) {
	_, router := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/bases/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, "/api/bases/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodPost, "/api/bases/missing/fractions",
		BasisFractionRequest{Start: "2024-01-01", End: "2024-02-01"}).Code)
}

func TestLoadPresets(t *testing.T) {
	h, router := newTestServer(t)

	rec := do(t, router, http.MethodPost, "/api/bases/presets", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[LoadPresetsResponse](t, rec)
	assert.Equal(t, len(factory.Presets()), resp.Loaded)
	assert.Contains(t, resp.IDs, "usd-sofr")

	bases, err := h.Store.ListBases(context.Background())
	require.NoError(t, err)
	assert.Len(t, bases, resp.Loaded)

	rec = do(t, router, http.MethodPost, "/api/bases/gbp-sonia/schedules", BasisScheduleRequest{
		Dates: []string{"2024-01-01", "2024-07-01", "2025-01-01"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sched := decode[ScheduleResponse](t, rec)
	assert.Equal(t, "gbp-sonia", sched.Basis)
	assert.Equal(t, "ACT/365F", sched.Convention)
	assert.InDelta(t, 366.0/365.0, sched.Total, 1e-12)
}

func TestBasisEndpoints_RejectConventionOverride(t *testing.T) {
	_, router := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/api/bases/presets", nil).Code)

	// The stored basis fixes the convention; a client override is refused.
	rec := do(t, router, http.MethodPost, "/api/bases/gbp-sonia/schedules", ScheduleRequest{
		Convention: "ACT/360",
		Dates:      []string{"2024-01-01", "2024-07-01"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/bases/gbp-sonia/fractions", FractionRequest{
		Convention: "ACT/360",
		Start:      "2024-01-01",
		End:        "2024-07-01",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}
