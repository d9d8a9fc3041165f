package persistence

import (
	"context"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// BookingRepository defines data access operations for the reservation ledger
type BookingRepository interface {
	// Create persists a new booking; the generated id is written back.
	// A storage-level overlap conflict surfaces as ErrSlotTaken.
	Create(ctx context.Context, booking *entity.Booking) error

	// GetByID retrieves a booking by id
	GetByID(ctx context.Context, id uint64) (*entity.Booking, error)

	// Delete removes a booking by id
	Delete(ctx context.Context, id uint64) error

	// CountOverlapping counts bookings of a workplace whose interval
	// overlaps [start, end) under the open-interval test
	CountOverlapping(ctx context.Context, placeID uint64, start, end time.Time) (int64, error)

	// ListByUser returns a user's bookings joined with desk details,
	// ordered by start time
	ListByUser(ctx context.Context, userID uint64) ([]entity.BookingDetail, error)

	// ListForDay returns a location's bookings that start inside
	// [dayStart, dayEnd), joined with desk details, for the schedule grid
	ListForDay(ctx context.Context, location string, dayStart, dayEnd time.Time) ([]entity.BookingDetail, error)

	// ListDetailed returns joined rows matching the report filter
	ListDetailed(ctx context.Context, filter entity.BookingFilter) ([]entity.BookingDetail, error)

	// CountFiltered counts bookings matching the report filter
	CountFiltered(ctx context.Context, filter entity.BookingFilter) (int64, error)

	// DeleteUpcomingByUser removes the user's bookings whose end is
	// strictly after now; returns the number removed
	DeleteUpcomingByUser(ctx context.Context, userID uint64, now time.Time) (int64, error)

	// DeleteByUserStartRange removes the user's bookings whose start falls
	// in [from, to); returns the number removed
	DeleteByUserStartRange(ctx context.Context, userID uint64, from, to time.Time) (int64, error)
}
