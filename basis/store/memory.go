// Package store provides basis.Store implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warp/daycount/basis"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu    sync.RWMutex
	bases map[basis.ID]basis.Basis
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		bases: make(map[basis.ID]basis.Basis),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SaveBasis inserts or replaces a basis.
func (m *Memory) SaveBasis(_ context.Context, b basis.Basis) error {
	b, err := b.Canonical()
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if existing, ok := m.bases[b.ID]; ok {
		b.Version = existing.Version + 1
		b.CreatedAt = existing.CreatedAt
	} else {
		b.Version = 1
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	m.bases[b.ID] = b
	return nil
}

func (m *Memory) GetBasis(_ context.Context, id basis.ID) (basis.Basis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.bases[id]
	if !ok {
		return basis.Basis{}, basis.ErrBasisNotFound
	}
	return b, nil
}

func (m *Memory) ListBases(_ context.Context) ([]basis.Basis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]basis.Basis, 0, len(m.bases))
	for _, b := range m.bases {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) DeleteBasis(_ context.Context, id basis.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bases[id]; !ok {
		return basis.ErrBasisNotFound
	}
	delete(m.bases, id)
	return nil
}

var _ basis.Store = (*Memory)(nil)
