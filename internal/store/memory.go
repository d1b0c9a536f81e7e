package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps collections as raw JSON in memory. Documents round-trip
// through encoding/json so callers never share memory with the store, which
// keeps its visibility semantics identical to the durable backends. Used for
// tests and local runs without Postgres or Redis.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Load(ctx context.Context, collection string, dst any) error {
	s.mu.RLock()
	raw, ok := s.docs[collection]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode collection %q: %w", collection, err)
	}
	return nil
}

func (s *MemoryStore) Save(ctx context.Context, collection string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", collection, err)
	}

	s.mu.Lock()
	s.docs[collection] = raw
	s.mu.Unlock()
	return nil
}
