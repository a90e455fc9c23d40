package cache

import (
	"context"
	"sync"
	"time"

	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
)

type record struct {
	data      []byte
	expiresAt time.Time
}

// Memory is an in-memory Store keeping entries until their TTL elapses.
// Expired entries are dropped lazily on read.
type Memory struct {
	mu      sync.RWMutex
	records map[string]record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]record)}
}

// SetWithTTL stores or overwrites an entry. A non-positive ttl keeps the entry
// until the store is discarded.
func (m *Memory) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := record{data: value}
	if ttl > 0 {
		entry.expiresAt = clock.Now().Add(ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = entry
	return nil
}

// Get returns a stored entry and whether it was present and unexpired.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.records[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && clock.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.records, key)
		m.mu.Unlock()
		return nil, false
	}
	return entry.data, true
}

// Len returns the number of stored entries, including any not yet reaped.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
