package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Malformed time", ErrMalformedTime, CodeMalformedTime},
		{"Duration exceeded", ErrDurationExceeded, CodeDurationExceeded},
		{"Too far in future", ErrTooFarInFuture, CodeTooFarInFuture},
		{"Slot taken", ErrSlotTaken, CodeSlotTaken},
		{"Not booking owner", ErrNotBookingOwner, CodeNotBookingOwner},
		{"Duplicate user", ErrDuplicateUser, CodeDuplicateUser},
		{"Invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"Unknown location", ErrUnknownLocation, CodeUnknownLocation},
		{"Workplace not found", ErrWorkplaceNotFound, CodeWorkplaceNotFound},
		{"User not found", ErrUserNotFound, CodeUserNotFound},
		{"Booking not found", ErrBookingNotFound, CodeBookingNotFound},
		{"Token invalid", ErrTokenInvalid, CodeTokenInvalid},
		{"Token revoked", ErrTokenRevoked, CodeTokenRevoked},
		{"Constraint violation", ErrConstraintViolation, CodeConstraintViolation},
		{"Unknown error falls back to internal", errors.New("boom"), CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}

	t.Run("Wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrSlotTaken)
		assert.Equal(t, CodeSlotTaken, ErrorCode(wrapped))
	})
}

func TestReservationError(t *testing.T) {
	inner := ErrSlotTaken
	err := NewReservationError(3, "HQ", "2026-03-02", inner)

	t.Run("Message carries the context", func(t *testing.T) {
		assert.Contains(t, err.Error(), "desk 3")
		assert.Contains(t, err.Error(), "HQ")
		assert.Contains(t, err.Error(), "2026-03-02")
	})

	t.Run("Unwraps to the inner error", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("Log fields include the error code", func(t *testing.T) {
		var resErr *ReservationError
		require.True(t, errors.As(err, &resErr))

		fields := resErr.LogFields()
		assert.Equal(t, 3, fields["desk_number"])
		assert.Equal(t, "HQ", fields["location"])
		assert.Equal(t, CodeSlotTaken, fields["error_code"])
	})
}

func TestErrorClassifiers(t *testing.T) {
	t.Run("Not found family", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrNotFound))
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrWorkplaceNotFound))
		assert.True(t, IsNotFoundError(ErrBookingNotFound))
		assert.False(t, IsNotFoundError(ErrSlotTaken))
	})

	t.Run("Slot taken", func(t *testing.T) {
		assert.True(t, IsSlotTakenError(ErrSlotTaken))
		assert.True(t, IsSlotTakenError(fmt.Errorf("insert: %w", ErrSlotTaken)))
		assert.False(t, IsSlotTakenError(ErrNotFound))
	})

	t.Run("Ownership", func(t *testing.T) {
		assert.True(t, IsOwnershipError(ErrNotBookingOwner))
		assert.False(t, IsOwnershipError(ErrSlotTaken))
	})

	t.Run("Auth family", func(t *testing.T) {
		assert.True(t, IsAuthError(ErrInvalidCredentials))
		assert.True(t, IsAuthError(ErrTokenInvalid))
		assert.True(t, IsAuthError(ErrTokenRevoked))
		assert.False(t, IsAuthError(ErrUserNotFound))
	})
}
