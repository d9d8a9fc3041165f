package report

import (
	"context"
	"testing"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	coremocks "github.com/andreysazonov/office-booking/mocks/port/core"
	persistencemocks "github.com/andreysazonov/office-booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	bookingRepo   *persistencemocks.MockBookingRepository
	workplaceRepo *persistencemocks.MockWorkplaceRepository
	service       *Service
}

func newReportFixture(t *testing.T) *reportFixture {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f := &reportFixture{
		bookingRepo:   persistencemocks.NewMockBookingRepository(t),
		workplaceRepo: persistencemocks.NewMockWorkplaceRepository(t),
	}
	f.service = NewService(f.bookingRepo, f.workplaceRepo, Window{OpenHour: 8, CloseHour: 18}, mockTime, mockLogger)
	return f
}

// detail builds a joined ledger row starting at the given local wall time
func detail(username, location string, desk int, start time.Time, duration time.Duration) entity.BookingDetail {
	return entity.BookingDetail{
		Booking: entity.Booking{
			StartTime: start,
			EndTime:   start.Add(duration),
		},
		Username:   username,
		DeskNumber: desk,
		Location:   location,
	}
}

func TestUserStatistics(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Aggregates counts, durations and last booking", func(t *testing.T) {
		f := newReportFixture(t)
		f.bookingRepo.EXPECT().ListDetailed(mock.Anything, mock.Anything).Return([]entity.BookingDetail{
			detail("alice", "HQ", 3, monday, 2*time.Hour),
			detail("alice", "HQ", 3, monday.AddDate(0, 0, 7), 90*time.Minute),
			detail("bob", "HQ", 4, monday, time.Hour),
		}, nil).Once()

		stats, err := f.service.UserStatistics(ctx, entity.BookingFilter{})

		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, "alice", stats[0].Username)
		assert.Equal(t, 2, stats[0].BookingCount)
		assert.Equal(t, 3.5, stats[0].TotalHours)
		assert.Equal(t, 1.75, stats[0].AvgHours)
		assert.Equal(t, "2026-03-09", stats[0].LastBooking)

		assert.Equal(t, "bob", stats[1].Username)
		assert.Equal(t, 1, stats[1].BookingCount)
	})

	t.Run("Equal counts break ties on username", func(t *testing.T) {
		f := newReportFixture(t)
		f.bookingRepo.EXPECT().ListDetailed(mock.Anything, mock.Anything).Return([]entity.BookingDetail{
			detail("carol", "HQ", 3, monday, time.Hour),
			detail("bob", "HQ", 4, monday, time.Hour),
		}, nil).Once()

		stats, err := f.service.UserStatistics(ctx, entity.BookingFilter{})

		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, "bob", stats[0].Username)
		assert.Equal(t, "carol", stats[1].Username)
	})

	t.Run("Empty ledger yields empty stats", func(t *testing.T) {
		f := newReportFixture(t)
		f.bookingRepo.EXPECT().ListDetailed(mock.Anything, mock.Anything).
			Return([]entity.BookingDetail{}, nil).Once()

		stats, err := f.service.UserStatistics(ctx, entity.BookingFilter{})

		require.NoError(t, err)
		assert.Empty(t, stats)
	})
}

func TestWeekdayDistribution(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	f := newReportFixture(t)
	f.bookingRepo.EXPECT().ListDetailed(mock.Anything, mock.Anything).Return([]entity.BookingDetail{
		detail("alice", "HQ", 3, monday, time.Hour),
		detail("alice", "HQ", 3, monday.AddDate(0, 0, 7), time.Hour),
		detail("bob", "HQ", 4, monday.AddDate(0, 0, 2), time.Hour),  // Wednesday
		detail("bob", "HQ", 4, monday.AddDate(0, 0, 6), time.Hour),  // Sunday
	}, nil).Once()

	buckets, err := f.service.WeekdayDistribution(ctx, entity.BookingFilter{})

	require.NoError(t, err)
	require.Len(t, buckets, 7)
	assert.Equal(t, entity.WeekdayCount{Weekday: "Monday", Count: 2}, buckets[0])
	assert.Equal(t, entity.WeekdayCount{Weekday: "Wednesday", Count: 1}, buckets[2])
	assert.Equal(t, entity.WeekdayCount{Weekday: "Friday", Count: 0}, buckets[4])
	assert.Equal(t, entity.WeekdayCount{Weekday: "Sunday", Count: 1}, buckets[6])
}

func TestLocationDistribution(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	f := newReportFixture(t)
	f.bookingRepo.EXPECT().ListDetailed(mock.Anything, mock.Anything).Return([]entity.BookingDetail{
		detail("alice", "HQ", 3, monday, time.Hour),
		detail("bob", "HQ", 4, monday, time.Hour),
		detail("carol", "Remote", 1, monday, time.Hour),
	}, nil).Once()
	f.workplaceRepo.EXPECT().Locations(mock.Anything).
		Return([]string{"Annex", "HQ"}, nil).Once()

	buckets, err := f.service.LocationDistribution(ctx, entity.BookingFilter{})

	require.NoError(t, err)
	require.Len(t, buckets, 3)
	// Catalog locations first, zero counts included, then data-only ones
	assert.Equal(t, entity.LocationCount{Location: "Annex", Count: 0}, buckets[0])
	assert.Equal(t, entity.LocationCount{Location: "HQ", Count: 2}, buckets[1])
	assert.Equal(t, entity.LocationCount{Location: "Remote", Count: 1}, buckets[2])
}

func TestHourDistribution(t *testing.T) {
	ctx := context.Background()
	day := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
	}

	f := newReportFixture(t)
	f.bookingRepo.EXPECT().ListDetailed(mock.Anything, mock.Anything).Return([]entity.BookingDetail{
		detail("alice", "HQ", 3, day(8, 0), time.Hour),
		detail("alice", "HQ", 3, day(8, 30), time.Hour),
		detail("bob", "HQ", 4, day(18, 0), time.Hour),
		detail("bob", "HQ", 4, day(7, 59), time.Hour),  // before the window
		detail("bob", "HQ", 4, day(19, 0), time.Hour),  // after the window
	}, nil).Once()

	buckets, err := f.service.HourDistribution(ctx, entity.BookingFilter{})

	require.NoError(t, err)
	require.Len(t, buckets, 11) // 08:00 through 18:00 inclusive
	assert.Equal(t, entity.HourCount{Hour: "08:00", Count: 2}, buckets[0])
	assert.Equal(t, entity.HourCount{Hour: "12:00", Count: 0}, buckets[4])
	assert.Equal(t, entity.HourCount{Hour: "18:00", Count: 1}, buckets[10])
}
