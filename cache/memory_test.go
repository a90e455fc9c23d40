package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
)

func TestMemorySetWithTTL(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	prev := clock.NowFunc
	clock.NowFunc = func() time.Time { return now }
	defer func() { clock.NowFunc = prev }()

	store := NewMemory()
	ctx := context.Background()

	assert.NoError(t, store.SetWithTTL(ctx, "k1", []byte("v1"), time.Minute))
	assert.Equal(t, 1, store.Len())

	data, ok := store.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), data)

	// Entry expires once the clock moves past its TTL.
	now = now.Add(2 * time.Minute)
	_, ok = store.Get("k1")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryZeroTTL(t *testing.T) {
	store := NewMemory()
	assert.NoError(t, store.SetWithTTL(context.Background(), "k1", []byte("v1"), 0))
	_, ok := store.Get("k1")
	assert.True(t, ok)
}

func TestNop(t *testing.T) {
	store := NewNop()
	assert.NoError(t, store.SetWithTTL(context.Background(), "k1", []byte("v1"), time.Minute))
}
