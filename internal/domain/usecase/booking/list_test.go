package booking

import (
	"context"
	"testing"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	persistencemocks "github.com/andreysazonov/office-booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserBookings(t *testing.T) {
	ctx := context.Background()

	bookingRepo := persistencemocks.NewMockBookingRepository(t)
	bookingRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).
		Return([]entity.BookingDetail{
			{Booking: entity.Booking{ID: 101, UserID: 42}, DeskNumber: 3, Location: "HQ", Username: "alice"},
		}, nil).Once()
	service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

	bookings, err := service.UserBookings(ctx, 42)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, uint64(101), bookings[0].ID)
	assert.Equal(t, 3, bookings[0].DeskNumber)
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Fetches the day window for the location", func(t *testing.T) {
		dayStart, dayEnd, _ := entity.DayBounds("2026-03-02")

		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().ListForDay(mock.Anything, "HQ", dayStart, dayEnd).
			Return([]entity.BookingDetail{
				{Booking: entity.Booking{ID: 101}, DeskNumber: 3, Location: "HQ", Username: "alice"},
				{Booking: entity.Booking{ID: 102}, DeskNumber: 4, Location: "HQ", Username: "bob"},
			}, nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		rows, err := service.Schedule(ctx, "HQ", "2026-03-02")

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("Malformed date", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		_, err := service.Schedule(ctx, "HQ", "someday")

		assert.ErrorIs(t, err, errs.ErrMalformedTime)
	})
}
