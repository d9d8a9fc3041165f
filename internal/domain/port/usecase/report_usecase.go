package usecase

import (
	"context"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// ReportUseCase exposes the read-only aggregations over the ledger. Every
// method is a pure function of the ledger snapshot and its filter: re-running
// with identical inputs over an unchanged ledger yields identical output.
type ReportUseCase interface {
	// UserStatistics aggregates per-user counts and durations, sorted by
	// booking count descending
	UserStatistics(ctx context.Context, filter entity.BookingFilter) ([]entity.UserStats, error)

	// WeekdayDistribution buckets bookings by start weekday, Monday first
	WeekdayDistribution(ctx context.Context, filter entity.BookingFilter) ([]entity.WeekdayCount, error)

	// LocationDistribution buckets bookings by location; every catalog
	// location is present even with a zero count
	LocationDistribution(ctx context.Context, filter entity.BookingFilter) ([]entity.LocationCount, error)

	// HourDistribution buckets bookings by start hour over the working
	// window; starts outside the window are excluded
	HourDistribution(ctx context.Context, filter entity.BookingFilter) ([]entity.HourCount, error)

	// Occupancy computes bookings over desks*days as a percentage
	Occupancy(ctx context.Context, filter entity.BookingFilter) (*entity.OccupancyReport, error)

	// ExportRows returns the flat per-booking detail rows for export
	ExportRows(ctx context.Context, filter entity.BookingFilter) ([]entity.ExportRow, error)
}
