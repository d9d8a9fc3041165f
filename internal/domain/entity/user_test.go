package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coremocks "github.com/andreysazonov/office-booking/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		account, err := NewUser("alice", "secret", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", account.Username)
		assert.Equal(t, "secret", account.Password)
		assert.Nil(t, account.DefaultLocation)
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Empty username", func(t *testing.T) {
		account, err := NewUser("", "secret", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
		assert.Nil(t, account)
	})

	t.Run("Username too long", func(t *testing.T) {
		account, err := NewUser(strings.Repeat("a", MaxUsernameLength+1), "secret", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
		assert.Nil(t, account)
	})

	t.Run("Username at the limit", func(t *testing.T) {
		account, err := NewUser(strings.Repeat("a", MaxUsernameLength), "secret", mockTime)

		require.NoError(t, err)
		assert.NotNil(t, account)
	})

	t.Run("Empty password", func(t *testing.T) {
		account, err := NewUser("alice", "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
		assert.Nil(t, account)
	})
}

func TestCheckPassword(t *testing.T) {
	account := &User{Username: "alice", Password: "secret"}

	assert.True(t, account.CheckPassword("secret"))
	assert.False(t, account.CheckPassword("wrong"))
	assert.False(t, account.CheckPassword(""))
}

func TestDefaultLocation(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Unset by default", func(t *testing.T) {
		account := &User{Username: "alice"}
		assert.False(t, account.HasDefaultLocation())
	})

	t.Run("Set updates location and timestamp", func(t *testing.T) {
		account := &User{Username: "alice"}
		account.SetDefaultLocation("HQ", mockTime)

		require.True(t, account.HasDefaultLocation())
		assert.Equal(t, "HQ", *account.DefaultLocation)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Empty location counts as unset", func(t *testing.T) {
		account := &User{Username: "alice"}
		account.SetDefaultLocation("", mockTime)

		assert.False(t, account.HasDefaultLocation())
	})
}
