package store

import (
	"context"
	"sync"
	"time"

	"book-duets-be/pkg/corpus"
)

// MemoryStore is an in-process implementation of the cache and build-log
// contracts. Expiry is passive: a stale entry is simply absent on lookup.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[string]memoryEntry
	scores map[string]map[string]float64
}

type memoryEntry struct {
	text      string
	expiresAt time.Time
}

var (
	_ corpus.Cache    = (*MemoryStore)(nil)
	_ corpus.BuildLog = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:  make(map[string]memoryEntry),
		scores: make(map[string]map[string]float64),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.text, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, text string, ttl time.Duration) error {
	s.mu.Lock()
	s.items[key] = memoryEntry{text: text, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok, err := s.Get(ctx, key)
	return ok, err
}

// Delete invalidates a cache entry explicitly, ahead of its TTL.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Incr(ctx context.Context, log, member string) error {
	s.mu.Lock()
	if s.scores[log] == nil {
		s.scores[log] = make(map[string]float64)
	}
	s.scores[log][member]++
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Score(ctx context.Context, log, member string) (float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[log][member]
	return score, ok, nil
}
