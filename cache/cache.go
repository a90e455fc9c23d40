// Package cache defines the key-value collaborator the router uses for
// best-effort outcome caching, together with in-memory and Redis backends.
// The store is write-only from the router's perspective; failures are logged
// and swallowed, never surfaced to dispatch callers.
package cache

import (
	"context"
	"time"
)

// Store is a key-value sink with per-entry expiry. Implementations must be
// safe for concurrent use.
type Store interface {
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Nop discards every write. It is the default store when none is configured.
type Nop struct{}

// NewNop creates a no-op store.
func NewNop() *Nop { return &Nop{} }

// SetWithTTL discards the entry.
func (n *Nop) SetWithTTL(context.Context, string, []byte, time.Duration) error { return nil }
