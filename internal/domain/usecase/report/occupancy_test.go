package report

import (
	"context"
	"testing"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOccupancy(t *testing.T) {
	ctx := context.Background()

	t.Run("Ratio over an explicit range", func(t *testing.T) {
		from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 3, 23, 59, 59, 0, time.UTC)
		filter := entity.BookingFilter{From: &from, To: &to, Location: "HQ"}

		f := newReportFixture(t)
		f.bookingRepo.EXPECT().CountFiltered(mock.Anything, filter).
			Return(int64(5), nil).Once()
		f.workplaceRepo.EXPECT().Count(mock.Anything, "HQ").
			Return(int64(5), nil).Once()

		rep, err := f.service.Occupancy(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, "HQ", rep.Location)
		assert.Equal(t, 5, rep.BookingCount)
		assert.Equal(t, 5, rep.DeskCount)
		assert.Equal(t, 2, rep.Days)
		// 100 * 5 / (5 desks * 2 days)
		assert.Equal(t, 50.0, rep.Ratio)
	})

	t.Run("Zero desks yields zero ratio without error", func(t *testing.T) {
		from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
		filter := entity.BookingFilter{From: &from, To: &to, Location: "Ghost"}

		f := newReportFixture(t)
		f.bookingRepo.EXPECT().CountFiltered(mock.Anything, filter).
			Return(int64(3), nil).Once()
		f.workplaceRepo.EXPECT().Count(mock.Anything, "Ghost").
			Return(int64(0), nil).Once()

		rep, err := f.service.Occupancy(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, 0, rep.DeskCount)
		assert.Equal(t, 0.0, rep.Ratio)
	})

	t.Run("Missing range defaults to the last 30 days", func(t *testing.T) {
		f := newReportFixture(t)
		f.bookingRepo.EXPECT().CountFiltered(mock.Anything, mock.MatchedBy(func(filter entity.BookingFilter) bool {
			return filter.From != nil && filter.To != nil
		})).Return(int64(0), nil).Once()
		f.workplaceRepo.EXPECT().Count(mock.Anything, "").
			Return(int64(10), nil).Once()

		rep, err := f.service.Occupancy(ctx, entity.BookingFilter{})

		require.NoError(t, err)
		assert.Equal(t, 31, rep.Days) // both endpoints of the window count
	})
}

func TestExportRows(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Flattens joined rows", func(t *testing.T) {
		f := newReportFixture(t)
		f.bookingRepo.EXPECT().ListDetailed(mock.Anything, mock.Anything).Return([]entity.BookingDetail{
			detail("alice", "HQ", 3, monday, 90*time.Minute),
		}, nil).Once()

		rows, err := f.service.ExportRows(ctx, entity.BookingFilter{})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, entity.ExportRow{
			Username:      "alice",
			Location:      "HQ",
			DeskNumber:    3,
			Date:          "2026-03-02",
			StartTime:     "09:00",
			EndTime:       "10:30",
			Weekday:       "Monday",
			DurationHours: 1.5,
		}, rows[0])
	})

	t.Run("Empty ledger yields empty rows", func(t *testing.T) {
		f := newReportFixture(t)
		f.bookingRepo.EXPECT().ListDetailed(mock.Anything, mock.Anything).
			Return([]entity.BookingDetail{}, nil).Once()

		rows, err := f.service.ExportRows(ctx, entity.BookingFilter{})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
