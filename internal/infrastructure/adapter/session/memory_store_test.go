package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Unknown token is not revoked", func(t *testing.T) {
		clock, _ := adjustableClock(t, start)
		store := NewMemoryStore(clock)

		revoked, err := store.IsRevoked(ctx, "token-1")

		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Revoked token stays revoked for its TTL", func(t *testing.T) {
		clock, now := adjustableClock(t, start)
		store := NewMemoryStore(clock)

		require.NoError(t, store.Revoke(ctx, "token-1", time.Hour))

		revoked, err := store.IsRevoked(ctx, "token-1")
		require.NoError(t, err)
		assert.True(t, revoked)

		*now = start.Add(59 * time.Minute)
		revoked, err = store.IsRevoked(ctx, "token-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Entry expires with the token", func(t *testing.T) {
		clock, now := adjustableClock(t, start)
		store := NewMemoryStore(clock)

		require.NoError(t, store.Revoke(ctx, "token-1", time.Hour))
		*now = start.Add(61 * time.Minute)

		revoked, err := store.IsRevoked(ctx, "token-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Non-positive TTL records nothing", func(t *testing.T) {
		clock, _ := adjustableClock(t, start)
		store := NewMemoryStore(clock)

		require.NoError(t, store.Revoke(ctx, "token-1", 0))

		revoked, err := store.IsRevoked(ctx, "token-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Revocations are independent per token", func(t *testing.T) {
		clock, _ := adjustableClock(t, start)
		store := NewMemoryStore(clock)

		require.NoError(t, store.Revoke(ctx, "token-1", time.Hour))

		revoked, err := store.IsRevoked(ctx, "token-2")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
