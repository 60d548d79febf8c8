/*
handlers.go - HTTP API handlers for the day count engine

PURPOSE:
  Exposes the day count conventions via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the daycount core.

ENDPOINTS:
  Conventions:
    GET    /api/conventions              List supported conventions

  Fractions:
    POST   /api/fractions                Fraction between two dates
    POST   /api/schedules                Fractions of consecutive periods

  Bases:
    GET    /api/bases                    List stored bases
    POST   /api/bases                    Create or replace a basis
    POST   /api/bases/presets            Store the built-in market bases
    GET    /api/bases/{id}               Get a basis
    DELETE /api/bases/{id}               Delete a basis
    POST   /api/bases/{id}/fractions     Fraction using a stored basis
    POST   /api/bases/{id}/schedules     Schedule using a stored basis

  Health:
    GET    /api/healthz

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: Basis persistence
  - BasisFactory: JSON to Basis conversion
  - Logger: Structured logging for failures

REQUEST FLOW:
  1. Parse HTTP request
  2. Parse dates and resolve the convention
  3. Call the daycount core
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid dates, unknown convention, missing termination date,
         unknown fields on per-basis requests
  - 404: Basis not found
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/daycount/basis"
	"github.com/warp/daycount/daycount"
	"github.com/warp/daycount/factory"
)

// maxPrecision bounds fraction_decimal; float64 carries about 15-17
// significant digits.
const maxPrecision = 15

var errInvalidRequest = errors.New("invalid request")

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store        basis.Store
	BasisFactory *factory.BasisFactory
	Logger       *slog.Logger
}

// NewHandler creates a new handler with the given store.
func NewHandler(store basis.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Store:        store,
		BasisFactory: factory.NewBasisFactory(),
		Logger:       logger,
	}
}

// SeedBases stores bases loaded at startup (seed file, presets).
func (h *Handler) SeedBases(ctx context.Context, bases []basis.Basis) error {
	for _, b := range bases {
		if err := h.Store.SaveBasis(ctx, b); err != nil {
			return fmt.Errorf("seed basis %q: %w", b.ID, err)
		}
	}
	h.Logger.Info("seeded bases", "count", len(bases))
	return nil
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// CONVENTION HANDLERS
// =============================================================================

// ListConventions returns the catalog in canonical order.
func (h *Handler) ListConventions(w http.ResponseWriter, r *http.Request) {
	codes := daycount.Codes()
	dtos := make([]ConventionDTO, 0, len(codes))
	for _, code := range codes {
		// The termination date only matters for computing, not for naming.
		conv, err := daycount.Lookup(string(code), daycount.WithTerminationDate(daycount.Date{}))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list conventions", err)
			return
		}
		dtos = append(dtos, ConventionDTO{
			Code:                    string(code),
			DisplayName:             conv.String(),
			RequiresTerminationDate: daycount.RequiresTerminationDate(code),
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// FRACTION HANDLERS
// =============================================================================

// CalculateFraction computes one fraction for an ad-hoc convention.
func (h *Handler) CalculateFraction(w http.ResponseWriter, r *http.Request) {
	var req FractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	conv, err := resolveConvention(req.Convention, req.TerminationDate)
	if err != nil {
		h.writeDomainError(w, "Invalid convention", err)
		return
	}

	dto, err := computeFraction(conv, req.Start, req.End, req.Precision)
	if err != nil {
		h.writeDomainError(w, "Invalid fraction request", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// CalculateSchedule computes the fractions of consecutive periods.
func (h *Handler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	conv, err := resolveConvention(req.Convention, req.TerminationDate)
	if err != nil {
		h.writeDomainError(w, "Invalid convention", err)
		return
	}

	resp, err := computeSchedule(conv, req.Dates, req.Precision)
	if err != nil {
		h.writeDomainError(w, "Invalid schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// BASIS HANDLERS
// =============================================================================

// ListBases returns all stored bases.
func (h *Handler) ListBases(w http.ResponseWriter, r *http.Request) {
	bases, err := h.Store.ListBases(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list bases", err)
		return
	}

	dtos := make([]BasisDTO, len(bases))
	for i, b := range bases {
		dtos[i] = h.toBasisDTO(b)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateBasis creates or replaces a basis.
func (h *Handler) CreateBasis(w http.ResponseWriter, r *http.Request) {
	var req factory.BasisJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	b, _, err := h.BasisFactory.FromJSON(req)
	if err != nil {
		h.writeDomainError(w, "Invalid basis", err)
		return
	}

	if err := h.Store.SaveBasis(r.Context(), b); err != nil {
		h.writeDomainError(w, "Failed to save basis", err)
		return
	}

	saved, err := h.Store.GetBasis(r.Context(), b.ID)
	if err != nil {
		h.writeDomainError(w, "Failed to load saved basis", err)
		return
	}

	status := http.StatusCreated
	if saved.Version > 1 {
		status = http.StatusOK
	}
	writeJSON(w, status, h.toBasisDTO(saved))
}

// GetBasis returns a single basis.
func (h *Handler) GetBasis(w http.ResponseWriter, r *http.Request) {
	id := basis.ID(chi.URLParam(r, "id"))

	b, err := h.Store.GetBasis(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "Failed to get basis", err)
		return
	}
	writeJSON(w, http.StatusOK, h.toBasisDTO(b))
}

// DeleteBasis removes a basis.
func (h *Handler) DeleteBasis(w http.ResponseWriter, r *http.Request) {
	id := basis.ID(chi.URLParam(r, "id"))

	if err := h.Store.DeleteBasis(r.Context(), id); err != nil {
		h.writeDomainError(w, "Failed to delete basis", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LoadPresets stores the built-in market bases.
func (h *Handler) LoadPresets(w http.ResponseWriter, r *http.Request) {
	bases, err := h.BasisFactory.PresetBases()
	if err != nil {
		h.writeDomainError(w, "Invalid presets", err)
		return
	}
	if err := h.SeedBases(r.Context(), bases); err != nil {
		h.writeDomainError(w, "Failed to store presets", err)
		return
	}

	ids := make([]string, len(bases))
	for i, b := range bases {
		ids[i] = string(b.ID)
	}
	writeJSON(w, http.StatusOK, LoadPresetsResponse{Loaded: len(bases), IDs: ids})
}

// BasisFraction computes a fraction with a stored basis.
func (h *Handler) BasisFraction(w http.ResponseWriter, r *http.Request) {
	b, conv, ok := h.loadBasisConvention(w, r)
	if !ok {
		return
	}

	var req BasisFractionRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := computeFraction(conv, req.Start, req.End, req.Precision)
	if err != nil {
		h.writeDomainError(w, "Invalid fraction request", err)
		return
	}
	dto.Basis = string(b.ID)
	writeJSON(w, http.StatusOK, dto)
}

// BasisSchedule computes a schedule with a stored basis.
func (h *Handler) BasisSchedule(w http.ResponseWriter, r *http.Request) {
	b, conv, ok := h.loadBasisConvention(w, r)
	if !ok {
		return
	}

	var req BasisScheduleRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := computeSchedule(conv, req.Dates, req.Precision)
	if err != nil {
		h.writeDomainError(w, "Invalid schedule", err)
		return
	}
	resp.Basis = string(b.ID)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) loadBasisConvention(w http.ResponseWriter, r *http.Request) (basis.Basis, daycount.Convention, bool) {
	id := basis.ID(chi.URLParam(r, "id"))

	b, err := h.Store.GetBasis(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "Failed to get basis", err)
		return basis.Basis{}, nil, false
	}
	conv, err := b.Convention()
	if err != nil {
		h.writeDomainError(w, "Stored basis is invalid", err)
		return basis.Basis{}, nil, false
	}
	return b, conv, true
}

func (h *Handler) toBasisDTO(b basis.Basis) BasisDTO {
	dto := BasisDTO{
		BasisJSON: h.BasisFactory.ToJSON(b),
		Version:   b.Version,
	}
	if conv, err := b.Convention(); err == nil {
		dto.ConventionName = conv.String()
	}
	if !b.CreatedAt.IsZero() {
		dto.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	if !b.UpdatedAt.IsZero() {
		dto.UpdatedAt = b.UpdatedAt.Format(time.RFC3339)
	}
	return dto
}

// =============================================================================
// COMPUTATION
// =============================================================================

func resolveConvention(code, terminationDate string) (daycount.Convention, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: convention is required", errInvalidRequest)
	}
	var opts []daycount.Option
	if terminationDate != "" {
		td, err := parseDateField("termination_date", terminationDate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, daycount.WithTerminationDate(td))
	}
	return daycount.Lookup(code, opts...)
}

func computeFraction(conv daycount.Convention, startStr, endStr string, precision *int32) (FractionDTO, error) {
	start, err := parseDateField("start", startStr)
	if err != nil {
		return FractionDTO{}, err
	}
	end, err := parseDateField("end", endStr)
	if err != nil {
		return FractionDTO{}, err
	}
	if err := checkPrecision(precision); err != nil {
		return FractionDTO{}, err
	}

	value := conv.YearFraction(start, end)
	return FractionDTO{
		Convention:      string(conv.Code()),
		DisplayName:     conv.String(),
		Start:           start.String(),
		End:             end.String(),
		Days:            end.Sub(start),
		Fraction:        value,
		FractionDecimal: formatDecimal(decimal.NewFromFloat(value), precision),
	}, nil
}

func computeSchedule(conv daycount.Convention, dateStrs []string, precision *int32) (ScheduleResponse, error) {
	if err := checkPrecision(precision); err != nil {
		return ScheduleResponse{}, err
	}

	dates := make([]daycount.Date, len(dateStrs))
	for i, s := range dateStrs {
		d, err := parseDateField(fmt.Sprintf("dates[%d]", i), s)
		if err != nil {
			return ScheduleResponse{}, err
		}
		dates[i] = d
	}

	periods, err := daycount.PeriodsFromDates(dates)
	if err != nil {
		return ScheduleResponse{}, err
	}

	fractions := daycount.YearFractions(conv, periods)
	resp := ScheduleResponse{
		Convention:  string(conv.Code()),
		DisplayName: conv.String(),
		Periods:     make([]PeriodDTO, len(periods)),
	}
	for i, p := range periods {
		resp.Periods[i] = PeriodDTO{
			Start:           p.Start.String(),
			End:             p.End.String(),
			Days:            p.Days(),
			Fraction:        fractions[i],
			FractionDecimal: formatDecimal(decimal.NewFromFloat(fractions[i]), precision),
		}
	}

	total := daycount.Total(conv, periods)
	resp.Total = total.InexactFloat64()
	resp.TotalDecimal = formatDecimal(total, precision)
	return resp, nil
}

func parseDateField(name, value string) (daycount.Date, error) {
	if strings.TrimSpace(value) == "" {
		return daycount.Date{}, fmt.Errorf("%w: %s is required", errInvalidRequest, name)
	}
	d, err := daycount.ParseDate(value)
	if err != nil {
		return daycount.Date{}, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

func checkPrecision(precision *int32) error {
	if precision != nil && (*precision < 0 || *precision > maxPrecision) {
		return fmt.Errorf("%w: precision must be between 0 and %d", errInvalidRequest, maxPrecision)
	}
	return nil
}

func formatDecimal(d decimal.Decimal, precision *int32) string {
	if precision == nil {
		return d.String()
	}
	return d.StringFixed(*precision)
}

// =============================================================================
// HELPERS
// =============================================================================

// writeDomainError maps domain errors to HTTP statuses.
func (h *Handler) writeDomainError(w http.ResponseWriter, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error(message, "error", err)
	}
	writeError(w, status, message, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, basis.ErrBasisNotFound):
		return http.StatusNotFound
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, basis.ErrInvalidBasis),
		errors.Is(err, daycount.ErrInvalidDate),
		errors.Is(err, daycount.ErrUnknownConvention),
		errors.Is(err, daycount.ErrTerminationDateRequired),
		errors.Is(err, daycount.ErrScheduleTooShort),
		errors.Is(err, daycount.ErrUnsortedSchedule):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeStrict rejects fields the request type does not define, so a
// convention sent to a per-basis endpoint is refused rather than ignored.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
