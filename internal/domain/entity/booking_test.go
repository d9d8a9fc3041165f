package entity

import (
	"testing"
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coremocks "github.com/andreysazonov/office-booking/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)

	t.Run("Valid booking creation", func(t *testing.T) {
		booking, err := NewBooking(7, 42, start, end, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), booking.PlaceID)
		assert.Equal(t, uint64(42), booking.UserID)
		assert.Equal(t, start, booking.StartTime)
		assert.Equal(t, end, booking.EndTime)
		assert.Equal(t, fixedTime, booking.CreatedAt)
	})

	t.Run("Zero place id", func(t *testing.T) {
		booking, err := NewBooking(0, 42, start, end, mockTime)

		assert.ErrorIs(t, err, errs.ErrWorkplaceNotFound)
		assert.Nil(t, booking)
	})

	t.Run("Zero user id", func(t *testing.T) {
		booking, err := NewBooking(7, 0, start, end, mockTime)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, booking)
	})

	t.Run("End equal to start", func(t *testing.T) {
		booking, err := NewBooking(7, 42, start, start, mockTime)

		assert.ErrorIs(t, err, errs.ErrMalformedTime)
		assert.Nil(t, booking)
	})

	t.Run("End before start", func(t *testing.T) {
		booking, err := NewBooking(7, 42, end, start, mockTime)

		assert.ErrorIs(t, err, errs.ErrMalformedTime)
		assert.Nil(t, booking)
	})
}

func TestBookingOverlaps(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC)
	}
	booking := &Booking{StartTime: at(10), EndTime: at(12)}

	t.Run("Identical interval overlaps", func(t *testing.T) {
		assert.True(t, booking.Overlaps(at(10), at(12)))
	})

	t.Run("Contained interval overlaps", func(t *testing.T) {
		assert.True(t, booking.Overlaps(at(11), at(12)))
	})

	t.Run("Containing interval overlaps", func(t *testing.T) {
		assert.True(t, booking.Overlaps(at(9), at(13)))
	})

	t.Run("Partial overlap at start", func(t *testing.T) {
		assert.True(t, booking.Overlaps(at(9), at(11)))
	})

	t.Run("Partial overlap at end", func(t *testing.T) {
		assert.True(t, booking.Overlaps(at(11), at(13)))
	})

	t.Run("Touching at booking end does not overlap", func(t *testing.T) {
		assert.False(t, booking.Overlaps(at(12), at(14)))
	})

	t.Run("Touching at booking start does not overlap", func(t *testing.T) {
		assert.False(t, booking.Overlaps(at(8), at(10)))
	})

	t.Run("Disjoint interval does not overlap", func(t *testing.T) {
		assert.False(t, booking.Overlaps(at(14), at(16)))
	})
}

func TestBookingDuration(t *testing.T) {
	booking := &Booking{
		StartTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
	}

	assert.Equal(t, 90*time.Minute, booking.Duration())
	assert.Equal(t, 1.5, booking.DurationHours())
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 1.33, RoundHours(1.3333333))
	assert.Equal(t, 2.67, RoundHours(2.6666666))
	assert.Equal(t, 0.0, RoundHours(0))
	assert.Equal(t, 8.0, RoundHours(8.0))
}
