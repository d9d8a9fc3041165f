package usecase

import (
	"context"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// BookingUseCase is the booking engine's public surface
type BookingUseCase interface {
	// Reserve validates and commits zero or more reservations, one per
	// requested date. The returned slice has one outcome per date in input
	// order; per-date failures are collected, not raised. An unknown desk
	// or requester aborts the whole call with an error and no outcomes.
	Reserve(ctx context.Context, req entity.ReservationRequest) ([]entity.ReservationOutcome, error)

	// IsAvailable reports whether a workplace is free over [start, end)
	IsAvailable(ctx context.Context, placeID uint64, start, end time.Time) (bool, error)

	// CancelBooking deletes one booking if it belongs to the requester
	CancelBooking(ctx context.Context, bookingID, requesterID uint64) error

	// CancelUpcoming deletes the requester's bookings that have not yet
	// ended and returns how many were removed; zero is not an error
	CancelUpcoming(ctx context.Context, requesterID uint64) (int64, error)

	// CancelRange deletes the requester's bookings starting within
	// [startDate 00:00, endDate+1d 00:00) and returns how many were removed
	CancelRange(ctx context.Context, requesterID uint64, startDate, endDate string) (int64, error)

	// UserBookings lists the requester's bookings with desk details
	UserBookings(ctx context.Context, requesterID uint64) ([]entity.BookingDetail, error)

	// Schedule returns one location's bookings for a calendar date,
	// the data behind the schedule grid
	Schedule(ctx context.Context, location, date string) ([]entity.BookingDetail, error)
}
