/*
Package basis manages named day count bases.

PURPOSE:
  A basis is a stored convention configuration: a convention code plus, for
  30E/360 (ISDA), the contract termination date. Callers register a basis
  once (e.g. "usd-sofr" → ACT/360, or a swap's ISDA leg with its final
  date) and compute fractions against it by ID.

KEY CONCEPTS:
  - Basis: ID, display name, convention code, optional termination date
  - Store: Persistence interface (SQLite in production, memory in tests)

VALIDATION:
  A basis is valid when its ID is set, its convention code is known, and a
  termination date is present exactly when the convention requires one.

SEE ALSO:
  - basis/store/memory.go: In-memory Store
  - store/sqlite/sqlite.go: SQLite Store
  - factory/basis.go: JSON/YAML definitions
*/
package basis

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/warp/daycount/daycount"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrBasisNotFound is returned when a basis ID has no stored record.
	ErrBasisNotFound = errors.New("basis not found")

	// ErrInvalidBasis is returned when a basis fails validation.
	ErrInvalidBasis = errors.New("invalid basis")
)

// =============================================================================
// BASIS
// =============================================================================

// ID identifies a basis.
type ID string

// Basis is a named convention configuration.
type Basis struct {
	ID              ID
	Name            string
	Code            daycount.Code
	TerminationDate *daycount.Date
	Description     string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the basis can be turned into a convention.
func (b Basis) Validate() error {
	if strings.TrimSpace(string(b.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidBasis)
	}
	code, err := daycount.ParseCode(string(b.Code))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBasis, err)
	}
	needsDate := daycount.RequiresTerminationDate(code)
	switch {
	case needsDate && b.TerminationDate == nil:
		return fmt.Errorf("%w: %s: %w", ErrInvalidBasis, code, daycount.ErrTerminationDateRequired)
	case !needsDate && b.TerminationDate != nil:
		return fmt.Errorf("%w: %s does not take a termination date", ErrInvalidBasis, code)
	}
	return nil
}

// Canonical validates the basis and rewrites its convention to the
// canonical code, so "Actual/360" and "act/360" are stored alike.
func (b Basis) Canonical() (Basis, error) {
	if err := b.Validate(); err != nil {
		return Basis{}, err
	}
	code, _ := daycount.ParseCode(string(b.Code))
	b.Code = code
	return b, nil
}

// Convention builds the day count convention described by the basis.
func (b Basis) Convention() (daycount.Convention, error) {
	var opts []daycount.Option
	if b.TerminationDate != nil {
		opts = append(opts, daycount.WithTerminationDate(*b.TerminationDate))
	}
	return daycount.Lookup(string(b.Code), opts...)
}

// DisplayName returns Name, falling back to the ID.
func (b Basis) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return string(b.ID)
}
