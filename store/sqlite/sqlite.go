/*
Package sqlite provides a SQLite-backed implementation of basis.Store.

PURPOSE:
  Persists named day count bases so that an ISDA leg registered once (with
  its termination date) can be used by ID across restarts. The same schema
  works on PostgreSQL with minor dialect changes.

KEY TABLES:
  bases: One row per basis, versioned on every update

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In-memory databases are pinned to a
  single connection, since every new SQLite connection to ":memory:" opens
  an empty database.

WAL MODE:
  File databases are opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time

USAGE:
  store, err := sqlite.New("./data/daycount.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - basis/store.go: Interface definition
  - basis/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/daycount/basis"
	"github.com/warp/daycount/daycount"
)

// Store implements basis.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS bases (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		convention TEXT NOT NULL,
		termination_date TEXT,
		description TEXT NOT NULL DEFAULT '',
		version INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_bases_convention
		ON bases(convention);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// BASIS STORE
// =============================================================================

// SaveBasis inserts a basis, or replaces it and bumps its version.
func (s *Store) SaveBasis(ctx context.Context, b basis.Basis) error {
	b, err := b.Canonical()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO bases (id, name, convention, termination_date, description, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			convention = excluded.convention,
			termination_date = excluded.termination_date,
			description = excluded.description,
			version = bases.version + 1,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx, query,
		string(b.ID), b.Name, string(b.Code), nullDate(b.TerminationDate),
		b.Description, now, now,
	)
	if err != nil {
		return fmt.Errorf("save basis %q: %w", b.ID, err)
	}
	return nil
}

// GetBasis retrieves a basis by ID.
func (s *Store) GetBasis(ctx context.Context, id basis.ID) (basis.Basis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, convention, termination_date, description, version, created_at, updated_at FROM bases WHERE id = ?",
		string(id),
	)
	b, err := scanBasis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return basis.Basis{}, basis.ErrBasisNotFound
	}
	if err != nil {
		return basis.Basis{}, fmt.Errorf("get basis %q: %w", id, err)
	}
	return b, nil
}

// ListBases returns all bases ordered by ID.
func (s *Store) ListBases(ctx context.Context) ([]basis.Basis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, convention, termination_date, description, version, created_at, updated_at FROM bases ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bases []basis.Basis
	for rows.Next() {
		b, err := scanBasis(rows)
		if err != nil {
			return nil, err
		}
		bases = append(bases, b)
	}
	return bases, rows.Err()
}

// DeleteBasis removes a basis.
func (s *Store) DeleteBasis(ctx context.Context, id basis.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM bases WHERE id = ?", string(id))
	if err != nil {
		return fmt.Errorf("delete basis %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return basis.ErrBasisNotFound
	}
	return nil
}

// Reset deletes all bases.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM bases")
	return err
}

var _ basis.Store = (*Store)(nil)

// Helper functions

type scanner interface {
	Scan(dest ...any) error
}

func scanBasis(row scanner) (basis.Basis, error) {
	var b basis.Basis
	var id, code, createdAt, updatedAt string
	var termination sql.NullString

	if err := row.Scan(&id, &b.Name, &code, &termination, &b.Description, &b.Version, &createdAt, &updatedAt); err != nil {
		return basis.Basis{}, err
	}
	b.ID = basis.ID(id)
	b.Code = daycount.Code(code)

	if termination.Valid {
		td, err := daycount.ParseDate(termination.String)
		if err != nil {
			return basis.Basis{}, fmt.Errorf("basis %q: stored termination_date: %w", id, err)
		}
		b.TerminationDate = &td
	}

	b.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	b.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return b, nil
}

func nullDate(d *daycount.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}
