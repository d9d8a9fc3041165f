package session

import (
	"testing"
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coremocks "github.com/andreysazonov/office-booking/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

// adjustableClock returns a time provider whose "now" can be moved by the
// test, so expiry behavior is exercised without sleeping
func adjustableClock(t *testing.T, start time.Time) (*coremocks.MockTimeProvider, *time.Time) {
	current := start
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().RunAndReturn(func() time.Time {
		return current
	}).Maybe()
	return mockTime, &current
}

func TestIssueAndVerify(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Round trip", func(t *testing.T) {
		clock, _ := adjustableClock(t, issued)
		manager := NewManager(testSecret, "office-booking", time.Hour, clock)

		token, err := manager.Issue(42, "alice")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := manager.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "office-booking", claims.Issuer)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("Distinct tokens get distinct ids", func(t *testing.T) {
		clock, _ := adjustableClock(t, issued)
		manager := NewManager(testSecret, "office-booking", time.Hour, clock)

		first, err := manager.Issue(42, "alice")
		require.NoError(t, err)
		second, err := manager.Issue(42, "alice")
		require.NoError(t, err)

		firstClaims, err := manager.Verify(first)
		require.NoError(t, err)
		secondClaims, err := manager.Verify(second)
		require.NoError(t, err)
		assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
	})

	t.Run("Tampered token is rejected", func(t *testing.T) {
		clock, _ := adjustableClock(t, issued)
		manager := NewManager(testSecret, "office-booking", time.Hour, clock)

		token, err := manager.Issue(42, "alice")
		require.NoError(t, err)

		claims, err := manager.Verify(token + "x")
		assert.ErrorIs(t, err, errs.ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("Token signed with a different secret is rejected", func(t *testing.T) {
		clock, _ := adjustableClock(t, issued)
		manager := NewManager(testSecret, "office-booking", time.Hour, clock)
		other := NewManager("other-secret", "office-booking", time.Hour, clock)

		token, err := other.Issue(42, "alice")
		require.NoError(t, err)

		claims, err := manager.Verify(token)
		assert.ErrorIs(t, err, errs.ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("Wrong issuer is rejected", func(t *testing.T) {
		clock, _ := adjustableClock(t, issued)
		issuerA := NewManager(testSecret, "office-booking", time.Hour, clock)
		issuerB := NewManager(testSecret, "someone-else", time.Hour, clock)

		token, err := issuerB.Issue(42, "alice")
		require.NoError(t, err)

		claims, err := issuerA.Verify(token)
		assert.ErrorIs(t, err, errs.ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		clock, now := adjustableClock(t, issued)
		manager := NewManager(testSecret, "office-booking", time.Hour, clock)

		token, err := manager.Issue(42, "alice")
		require.NoError(t, err)

		*now = issued.Add(2 * time.Hour)

		claims, err := manager.Verify(token)
		assert.ErrorIs(t, err, errs.ErrTokenInvalid)
		assert.Nil(t, claims)
	})
}

func TestTTLUntilExpiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Fresh token has the full TTL left", func(t *testing.T) {
		clock, _ := adjustableClock(t, issued)
		manager := NewManager(testSecret, "office-booking", time.Hour, clock)

		token, err := manager.Issue(42, "alice")
		require.NoError(t, err)
		claims, err := manager.Verify(token)
		require.NoError(t, err)

		assert.Equal(t, time.Hour, manager.TTLUntilExpiry(claims))
	})

	t.Run("Half-spent token has half left", func(t *testing.T) {
		clock, now := adjustableClock(t, issued)
		manager := NewManager(testSecret, "office-booking", time.Hour, clock)

		token, err := manager.Issue(42, "alice")
		require.NoError(t, err)
		claims, err := manager.Verify(token)
		require.NoError(t, err)

		*now = issued.Add(30 * time.Minute)
		assert.Equal(t, 30*time.Minute, manager.TTLUntilExpiry(claims))
	})

	t.Run("Expired token reports zero, never negative", func(t *testing.T) {
		clock, now := adjustableClock(t, issued)
		manager := NewManager(testSecret, "office-booking", time.Hour, clock)

		token, err := manager.Issue(42, "alice")
		require.NoError(t, err)
		claims, err := manager.Verify(token)
		require.NoError(t, err)

		*now = issued.Add(3 * time.Hour)
		assert.Equal(t, time.Duration(0), manager.TTLUntilExpiry(claims))
	})
}
