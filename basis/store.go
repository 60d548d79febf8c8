package basis

import "context"

// =============================================================================
// STORE - Interface for basis persistence
// =============================================================================

// Store persists bases.
//
// IMPLEMENTATIONS:
//   - basis/store.Memory: in-memory, for tests and development
//   - store/sqlite.Store: SQLite
type Store interface {
	// SaveBasis inserts or replaces a basis. Replacing bumps Version.
	SaveBasis(ctx context.Context, b Basis) error

	// GetBasis returns ErrBasisNotFound when the ID is unknown.
	GetBasis(ctx context.Context, id ID) (Basis, error)

	// ListBases returns all bases ordered by ID.
	ListBases(ctx context.Context) ([]Basis, error)

	// DeleteBasis returns ErrBasisNotFound when the ID is unknown.
	DeleteBasis(ctx context.Context, id ID) error
}
