/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the day count core from the external API contract: dates travel as
  YYYY-MM-DD strings, conventions as codes or display names, fractions as
  both a float and a decimal string.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Conventions:
    ConventionDTO

  Fractions:
    FractionRequest, FractionDTO, BasisFractionRequest

  Schedules:
    ScheduleRequest, BasisScheduleRequest, ScheduleResponse, PeriodDTO

  Bases:
    BasisDTO (wraps factory.BasisJSON)

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/basis.go: BasisJSON type
*/
package api

import (
	"github.com/warp/daycount/factory"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ConventionDTO describes one supported convention.
type ConventionDTO struct {
	Code                    string `json:"code"`
	DisplayName             string `json:"display_name"`
	RequiresTerminationDate bool   `json:"requires_termination_date"`
}

// FractionRequest asks for the fraction between two dates.
type FractionRequest struct {
	Convention      string `json:"convention"`
	Start           string `json:"start"`
	End             string `json:"end"`
	TerminationDate string `json:"termination_date,omitempty"`
	Precision       *int32 `json:"precision,omitempty"` // decimal places for fraction_decimal
}

// BasisFractionRequest asks for a fraction using a stored basis.
type BasisFractionRequest struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Precision *int32 `json:"precision,omitempty"`
}

// FractionDTO is a computed fraction.
type FractionDTO struct {
	Basis           string  `json:"basis,omitempty"`
	Convention      string  `json:"convention"`
	DisplayName     string  `json:"display_name"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	Days            int     `json:"days"`
	Fraction        float64 `json:"fraction"`
	FractionDecimal string  `json:"fraction_decimal"`
}

// ScheduleRequest asks for the fractions of consecutive periods.
type ScheduleRequest struct {
	Convention      string   `json:"convention"`
	Dates           []string `json:"dates"`
	TerminationDate string   `json:"termination_date,omitempty"`
	Precision       *int32   `json:"precision,omitempty"`
}

// BasisScheduleRequest asks for a schedule using a stored basis. The
// convention and termination date come from the basis.
type BasisScheduleRequest struct {
	Dates     []string `json:"dates"`
	Precision *int32   `json:"precision,omitempty"`
}

// PeriodDTO is one period of a schedule.
type PeriodDTO struct {
	Start           string  `json:"start"`
	End             string  `json:"end"`
	Days            int     `json:"days"`
	Fraction        float64 `json:"fraction"`
	FractionDecimal string  `json:"fraction_decimal"`
}

// ScheduleResponse lists period fractions and their total.
type ScheduleResponse struct {
	Basis        string      `json:"basis,omitempty"`
	Convention   string      `json:"convention"`
	DisplayName  string      `json:"display_name"`
	Periods      []PeriodDTO `json:"periods"`
	Total        float64     `json:"total"`
	TotalDecimal string      `json:"total_decimal"`
}

// BasisDTO represents a stored basis in API responses.
type BasisDTO struct {
	factory.BasisJSON
	ConventionName string `json:"convention_name"`
	Version        int    `json:"version"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// LoadPresetsResponse reports how many presets were stored.
type LoadPresetsResponse struct {
	Loaded int      `json:"loaded"`
	IDs    []string `json:"ids"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
