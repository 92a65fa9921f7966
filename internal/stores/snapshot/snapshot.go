// internal/stores/snapshot/snapshot.go

// Package snapshot provides the durable key-value store cart and wishlist
// aggregates are persisted to. Writes are last-write-wins; there are no
// transactional guarantees.
package snapshot

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no snapshot exists under a key.
var ErrNotFound = errors.New("snapshot not found")

// Store reads and writes whole-aggregate snapshots.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is the in-process fallback used when redis is unavailable and in
// tests. Contents do not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
