package kv

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-process map.
// State does not survive a restart; it is the default backend for tests and
// for running the storefront without any persistence configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
	}
}

// Get reads the value stored under key into out
func (s *MemoryStore) Get(_ context.Context, key string, out any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return decode(raw, out), nil
}

// Set stores value under key
func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = raw
	s.mu.Unlock()
	return nil
}

// Remove deletes the value stored under key
func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// SetRaw stores a pre-encoded payload verbatim, bypassing the envelope.
// Used by tests to simulate corrupt persisted data.
func (s *MemoryStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	s.entries[key] = raw
	s.mu.Unlock()
}

var _ Store = (*MemoryStore)(nil)
