package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	coremocks "github.com/andreysazonov/office-booking/mocks/port/core"
	persistencemocks "github.com/andreysazonov/office-booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAvailabilityService(t *testing.T, policy Policy, bookingRepo *persistencemocks.MockBookingRepository) *Service {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(testClock).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewService(
		persistencemocks.NewMockUnitOfWork(t),
		persistencemocks.NewMockUserRepository(t),
		persistencemocks.NewMockWorkplaceRepository(t),
		bookingRepo,
		policy,
		mockTime,
		mockLogger,
	)
}

func TestIsAvailable(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	end := time.Date(2026, 3, 2, 11, 0, 0, 0, time.Local)

	t.Run("Free interval", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), start, end).
			Return(int64(0), nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		available, err := service.IsAvailable(ctx, 7, start, end)

		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("Occupied interval", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		bookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), start, end).
			Return(int64(2), nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		available, err := service.IsAvailable(ctx, 7, start, end)

		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("Outside working hours when enforced", func(t *testing.T) {
		policy := DefaultPolicy()
		policy.EnforceWorkingHours = true

		// The ledger must not even be consulted
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		service := newAvailabilityService(t, policy, bookingRepo)

		early := time.Date(2026, 3, 2, 6, 0, 0, 0, time.Local)
		earlyEnd := time.Date(2026, 3, 2, 7, 0, 0, 0, time.Local)
		available, err := service.IsAvailable(ctx, 7, early, earlyEnd)

		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("Off-hours interval passes when enforcement is off", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		early := time.Date(2026, 3, 2, 6, 0, 0, 0, time.Local)
		earlyEnd := time.Date(2026, 3, 2, 7, 0, 0, 0, time.Local)
		bookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), early, earlyEnd).
			Return(int64(0), nil).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		available, err := service.IsAvailable(ctx, 7, early, earlyEnd)

		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("Ledger error propagates", func(t *testing.T) {
		bookingRepo := persistencemocks.NewMockBookingRepository(t)
		dbErr := errors.New("connection reset")
		bookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), start, end).
			Return(int64(0), dbErr).Once()
		service := newAvailabilityService(t, DefaultPolicy(), bookingRepo)

		available, err := service.IsAvailable(ctx, 7, start, end)

		assert.ErrorIs(t, err, dbErr)
		assert.False(t, available)
	})
}
