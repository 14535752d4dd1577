package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"PointsSentinel/internal/model"
)

// MemoryStore is an in-memory Store used in tests and when no database
// is configured. Stats survive only for the lifetime of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*model.AccountStats
	last time.Time
}

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*model.AccountStats)}
}

func (s *MemoryStore) UpsertStats(_ context.Context, stats *model.AccountStats) error {
	if stats == nil || stats.Address == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to prevent external mutation.
	cp := *stats
	cp.Address = strings.ToLower(stats.Address)
	s.data[cp.Address] = &cp
	if cp.UpdatedAt.After(s.last) {
		s.last = cp.UpdatedAt
	}
	return nil
}

func (s *MemoryStore) GetStats(_ context.Context, address string) (*model.AccountStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.data[strings.ToLower(address)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *st
	return &cp, nil
}

func (s *MemoryStore) LastUpdated(_ context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last.IsZero() {
		return time.Time{}, ErrNotFound
	}
	return s.last, nil
}

// Len returns the number of stored accounts.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MemoryStore) Close() {}
