package store

import (
	"context"
	"sync"

	"github.com/boolean-maybe/todo/list"
)

// MemoryStore is an in-memory Store.
// Useful for testing and as a reference implementation.
type MemoryStore struct {
	mu    sync.RWMutex
	tasks list.List
	saves int
}

// NewMemoryStore creates a MemoryStore seeded with a copy of initial.
func NewMemoryStore(initial list.List) *MemoryStore {
	return &MemoryStore{tasks: initial.Clone()}
}

// Load returns a copy of the stored list
func (s *MemoryStore) Load(ctx context.Context) (list.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.Clone(), nil
}

// Save stores a copy of l
func (s *MemoryStore) Save(ctx context.Context, l list.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = l.Clone()
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
