package booking

import (
	"context"
	"testing"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	persistencemocks "github.com/andreysazonov/office-booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner cancels", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().GetByID(mock.Anything, uint64(101)).
			Return(&entity.Booking{ID: 101, UserID: 42}, nil).Once()
		bookingRepo.EXPECT().Delete(mock.Anything, uint64(101)).Return(nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		err := service.CancelBooking(ctx, 101, 42)

		assert.NoError(t, err)
	})

	t.Run("Non-owner is refused and the booking survives", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().GetByID(mock.Anything, uint64(101)).
			Return(&entity.Booking{ID: 101, UserID: 42}, nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		err := service.CancelBooking(ctx, 101, 99)

		assert.ErrorIs(t, err, errs.ErrNotBookingOwner)
	})

	t.Run("Unknown booking", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().GetByID(mock.Anything, uint64(404)).
			Return(nil, errs.ErrBookingNotFound).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		err := service.CancelBooking(ctx, 404, 42)

		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestCancelUpcoming(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes everything ending after now", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().DeleteUpcomingByUser(mock.Anything, uint64(42), testClock).
			Return(int64(3), nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		deleted, err := service.CancelUpcoming(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	t.Run("Nothing to delete is not an error", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().DeleteUpcomingByUser(mock.Anything, uint64(42), testClock).
			Return(int64(0), nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		deleted, err := service.CancelUpcoming(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}

func TestCancelRange(t *testing.T) {
	ctx := context.Background()

	t.Run("Range covers both endpoint days", func(t *testing.T) {
		from, _ := entity.ParseDate("2026-03-02")
		_, to, _ := entity.DayBounds("2026-03-06")

		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().DeleteByUserStartRange(mock.Anything, uint64(42), from, to).
			Return(int64(2), nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		deleted, err := service.CancelRange(ctx, 42, "2026-03-02", "2026-03-06")

		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		assert.Equal(t, 24*time.Hour*5, to.Sub(from))
	})

	t.Run("Malformed start date", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		_, err := service.CancelRange(ctx, 42, "garbage", "2026-03-06")

		assert.ErrorIs(t, err, errs.ErrMalformedTime)
	})

	t.Run("Malformed end date", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		_, err := service.CancelRange(ctx, 42, "2026-03-02", "garbage")

		assert.ErrorIs(t, err, errs.ErrMalformedTime)
	})
}
