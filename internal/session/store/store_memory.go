package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"paynet/internal/session/models"
	"paynet/pkg/platform/sentinel"
)

// Error Contract:
// Get returns sentinel.ErrNotFound when no live record exists for the key.
// Delete of an absent key is not an error.

type memoryEntry struct {
	record    models.Record
	expiresAt time.Time
}

// InMemoryStore keeps console sessions in process memory. Used when Redis
// is not configured and in tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryEntry
	now     func() time.Time
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]memoryEntry), now: time.Now}
}

func (s *InMemoryStore) Get(_ context.Context, key string) (*models.Record, error) {
	s.mu.RLock()
	entry, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session record: %w", sentinel.ErrNotFound)
	}
	if !entry.expiresAt.IsZero() && !entry.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.records, key)
		s.mu.Unlock()
		return nil, fmt.Errorf("session record: %w", sentinel.ErrNotFound)
	}
	rec := entry.record
	return &rec, nil
}

// Save stores rec under key. A non-positive ttl keeps the record until Delete.
func (s *InMemoryStore) Save(_ context.Context, key string, rec models.Record, ttl time.Duration) error {
	entry := memoryEntry{record: rec}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = entry
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
