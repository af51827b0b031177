package cache

import (
	"context"
	"sync"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"
)

// MemoryDraftStore is the draft store used when no Redis address is
// configured. Expired entries are dropped lazily on access.
type MemoryDraftStore struct {
	mu      sync.Mutex
	entries map[string]entities.Draft
	now     func() time.Time
}

var _ interfaces.IDraftStore = (*MemoryDraftStore)(nil)

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{
		entries: make(map[string]entities.Draft),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryDraftStore) Get(_ context.Context, key string) (entities.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.entries[key]
	if !ok {
		return entities.Draft{}, nil
	}
	if !d.ExpiresAt.IsZero() && !s.now().Before(d.ExpiresAt) {
		delete(s.entries, key)
		return entities.Draft{}, nil
	}
	d.Value = append([]byte(nil), d.Value...)
	return d, nil
}

func (s *MemoryDraftStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) (entities.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := entities.Draft{Key: key, Value: append([]byte(nil), value...)}
	if ttl > 0 {
		d.ExpiresAt = s.now().Add(ttl)
	}
	s.entries[key] = d
	s.sweep()
	return d, nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// sweep drops expired entries. Caller holds mu.
func (s *MemoryDraftStore) sweep() {
	now := s.now()
	for k, d := range s.entries {
		if !d.ExpiresAt.IsZero() && !now.Before(d.ExpiresAt) {
			delete(s.entries, k)
		}
	}
}
