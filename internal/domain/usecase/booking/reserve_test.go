package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coremocks "github.com/andreysazonov/office-booking/mocks/port/core"
	persistencemocks "github.com/andreysazonov/office-booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testClock is the reference "now" for every reservation test; requested
// dates sit a day ahead of it, well inside the default advance horizon
var testClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)

type reserveFixture struct {
	uow             *persistencemocks.MockUnitOfWork
	userRepo        *persistencemocks.MockUserRepository
	workplaceRepo   *persistencemocks.MockWorkplaceRepository
	bookingRepo     *persistencemocks.MockBookingRepository
	txWorkplaceRepo *persistencemocks.MockWorkplaceRepository
	txBookingRepo   *persistencemocks.MockBookingRepository
	service         *Service
}

func newReserveFixture(t *testing.T, policy Policy) *reserveFixture {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(testClock).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f := &reserveFixture{
		uow:             persistencemocks.NewMockUnitOfWork(t),
		userRepo:        persistencemocks.NewMockUserRepository(t),
		workplaceRepo:   persistencemocks.NewMockWorkplaceRepository(t),
		bookingRepo:     persistencemocks.NewMockBookingRepository(t),
		txWorkplaceRepo: persistencemocks.NewMockWorkplaceRepository(t),
		txBookingRepo:   persistencemocks.NewMockBookingRepository(t),
	}
	f.service = NewService(f.uow, f.userRepo, f.workplaceRepo, f.bookingRepo, policy, mockTime, mockLogger)
	return f
}

// expectHappyPathSetup wires resolution of desk and user plus the unit of
// work lifecycle up to the per-date loop
func (f *reserveFixture) expectHappyPathSetup(ctx context.Context) {
	f.workplaceRepo.EXPECT().GetByNumberAndLocation(mock.Anything, 3, "HQ").
		Return(&entity.Workplace{ID: 7, Number: 3, Location: "HQ"}, nil).Once()
	f.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).
		Return(&entity.User{ID: 42, Username: "alice"}, nil).Once()
	f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	f.uow.EXPECT().WorkplaceRepository(mock.Anything).Return(f.txWorkplaceRepo).Once()
	f.txWorkplaceRepo.EXPECT().LockByID(mock.Anything, uint64(7)).Return(nil).Once()
	f.uow.EXPECT().BookingRepository(mock.Anything).Return(f.txBookingRepo).Once()
}

func request(dates ...string) entity.ReservationRequest {
	return entity.ReservationRequest{
		DeskNumber:  3,
		Location:    "HQ",
		RequesterID: 42,
		Dates:       dates,
		StartTime:   "09:00",
		EndTime:     "11:00",
	}
}

func slotOn(date string) (time.Time, time.Time) {
	start, _ := entity.CombineDateTime(date, "09:00")
	end, _ := entity.CombineDateTime(date, "11:00")
	return start, end
}

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("Single date booked", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.expectHappyPathSetup(ctx)

		start, end := slotOn("2026-03-02")
		f.txBookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), start, end).
			Return(int64(0), nil).Once()
		f.txBookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).
			Run(func(ctx context.Context, booking *entity.Booking) {
				booking.ID = 101
			}).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-03-02"))

		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, entity.StatusBooked, outcomes[0].Status)
		assert.Equal(t, uint64(101), outcomes[0].BookingID)
		assert.Equal(t, "2026-03-02", outcomes[0].Date)
	})

	t.Run("Multi-date request partially succeeds", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.expectHappyPathSetup(ctx)

		freeStart, freeEnd := slotOn("2026-03-02")
		takenStart, takenEnd := slotOn("2026-03-03")
		f.txBookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), freeStart, freeEnd).
			Return(int64(0), nil).Once()
		f.txBookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), takenStart, takenEnd).
			Return(int64(1), nil).Once()
		f.txBookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).
			Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-03-02", "2026-03-03"))

		require.NoError(t, err)
		require.Len(t, outcomes, 2)
		assert.Equal(t, entity.StatusBooked, outcomes[0].Status)
		assert.Equal(t, entity.StatusRejected, outcomes[1].Status)
		assert.ErrorIs(t, outcomes[1].Err, errs.ErrSlotTaken)
	})

	t.Run("Malformed date rejects only that date", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.expectHappyPathSetup(ctx)

		start, end := slotOn("2026-03-02")
		f.txBookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), start, end).
			Return(int64(0), nil).Once()
		f.txBookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).
			Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		outcomes, err := f.service.Reserve(ctx, request("02.03.2026", "2026-03-02"))

		require.NoError(t, err)
		require.Len(t, outcomes, 2)
		assert.Equal(t, entity.StatusRejected, outcomes[0].Status)
		assert.ErrorIs(t, outcomes[0].Err, errs.ErrMalformedTime)
		assert.Equal(t, entity.StatusBooked, outcomes[1].Status)
	})

	t.Run("End not after start is rejected", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.expectHappyPathSetup(ctx)
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		req := request("2026-03-02")
		req.StartTime = "11:00"
		req.EndTime = "09:00"

		outcomes, err := f.service.Reserve(ctx, req)

		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, entity.StatusRejected, outcomes[0].Status)
		assert.ErrorIs(t, outcomes[0].Err, errs.ErrMalformedTime)
	})

	t.Run("Duration over the policy maximum is rejected", func(t *testing.T) {
		policy := DefaultPolicy()
		policy.MaxDuration = time.Hour
		f := newReserveFixture(t, policy)
		f.expectHappyPathSetup(ctx)
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-03-02"))

		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, entity.StatusRejected, outcomes[0].Status)
		assert.ErrorIs(t, outcomes[0].Err, errs.ErrDurationExceeded)
	})

	t.Run("Start beyond the advance horizon is rejected", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.expectHappyPathSetup(ctx)
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-05-15"))

		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, entity.StatusRejected, outcomes[0].Status)
		assert.ErrorIs(t, outcomes[0].Err, errs.ErrTooFarInFuture)
	})

	t.Run("Past-dated start is allowed", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.expectHappyPathSetup(ctx)

		start, end := slotOn("2026-02-25")
		f.txBookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), start, end).
			Return(int64(0), nil).Once()
		f.txBookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).
			Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-02-25"))

		require.NoError(t, err)
		assert.Equal(t, entity.StatusBooked, outcomes[0].Status)
	})

	t.Run("Storage overlap conflict becomes a slot-taken rejection", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.expectHappyPathSetup(ctx)

		start, end := slotOn("2026-03-02")
		f.txBookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), start, end).
			Return(int64(0), nil).Once()
		f.txBookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).
			Return(fmt.Errorf("insert bookings: %w", errs.ErrSlotTaken)).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-03-02"))

		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, entity.StatusRejected, outcomes[0].Status)
		assert.ErrorIs(t, outcomes[0].Err, errs.ErrSlotTaken)
	})

	t.Run("Unknown desk aborts the whole request", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.workplaceRepo.EXPECT().GetByNumberAndLocation(mock.Anything, 3, "HQ").
			Return(nil, errs.ErrWorkplaceNotFound).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-03-02"))

		assert.ErrorIs(t, err, errs.ErrWorkplaceNotFound)
		assert.Nil(t, outcomes)
	})

	t.Run("Unknown requester aborts the whole request", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.workplaceRepo.EXPECT().GetByNumberAndLocation(mock.Anything, 3, "HQ").
			Return(&entity.Workplace{ID: 7, Number: 3, Location: "HQ"}, nil).Once()
		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).
			Return(nil, errs.ErrUserNotFound).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-03-02"))

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, outcomes)
	})

	t.Run("Ledger failure rolls the transaction back", func(t *testing.T) {
		f := newReserveFixture(t, DefaultPolicy())
		f.expectHappyPathSetup(ctx)

		start, end := slotOn("2026-03-02")
		dbErr := errors.New("connection reset")
		f.txBookingRepo.EXPECT().CountOverlapping(mock.Anything, uint64(7), start, end).
			Return(int64(0), dbErr).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		outcomes, err := f.service.Reserve(ctx, request("2026-03-02"))

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, outcomes)
	})
}
