// Package draft defines storage for in-progress booking drafts.
//
// A draft is owned by exactly one user session: starting a new wizard pass
// replaces any prior draft, and confirmation removes it. Keeping drafts
// behind an injected Store (instead of a package-level variable) gives the
// draft a defined lifecycle and makes the wizard testable.
package draft

import (
	"context"
	"sync"

	"safepath/internal/domain"
)

// Store persists at most one draft per user.
type Store interface {
	// Get returns the user's draft, or (nil, nil) when none exists.
	Get(ctx context.Context, userID string) (*domain.Draft, error)

	// Save stores the draft, replacing any existing one.
	Save(ctx context.Context, userID string, d *domain.Draft) error

	// Clear removes the draft. Clearing an absent draft is a no-op.
	Clear(ctx context.Context, userID string) error
}

// MemoryStore is an in-process Store. It backs single-node deployments and
// the test suite; production wiring uses the Redis-backed store.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]*domain.Draft
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]*domain.Draft)}
}

// Get returns a copy of the stored draft so callers cannot mutate shared
// state without going through Save.
func (s *MemoryStore) Get(ctx context.Context, userID string) (*domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[userID]
	if !ok {
		return nil, nil
	}
	copy := *d
	copy.Equipment = append([]string(nil), d.Equipment...)
	return &copy, nil
}

// Save stores the draft for the user.
func (s *MemoryStore) Save(ctx context.Context, userID string, d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = d
	return nil
}

// Clear removes the user's draft if present.
func (s *MemoryStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
	return nil
}
