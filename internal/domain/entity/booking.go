package entity

import (
	"math"
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
)

// Booking is one reservation of a workplace by a user over the half-open
// interval [StartTime, EndTime)
type Booking struct {
	ID        uint64    // Unique identifier for the booking
	PlaceID   uint64    // Workplace the booking belongs to
	UserID    uint64    // User who owns the booking
	StartTime time.Time // Inclusive interval start
	EndTime   time.Time // Exclusive interval end
	CreatedAt time.Time // When the booking was written to the ledger
}

// NewBooking creates a booking after validating the interval.
// EndTime must be strictly after StartTime; zero-length bookings are rejected.
func NewBooking(placeID, userID uint64, start, end time.Time, timeProvider coreport.TimeProvider) (*Booking, error) {
	if placeID == 0 {
		return nil, errs.ErrWorkplaceNotFound
	}
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}
	if !end.After(start) {
		return nil, errs.ErrMalformedTime
	}

	return &Booking{
		PlaceID:   placeID,
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Overlaps reports whether the booking's interval overlaps [start, end).
// Touching endpoints do not overlap: a booking ending at 10:00 leaves the
// slot starting at 10:00 free.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// Duration returns the booked time span
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// DurationHours returns the booked span in hours, rounded to 2 decimals
func (b *Booking) DurationHours() float64 {
	return RoundHours(b.EndTime.Sub(b.StartTime).Hours())
}

// RoundHours rounds an hour value to 2 decimal places, the precision used
// by every report surface
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// BookingDetail is a booking joined with its owner and workplace, the row
// shape consumed by listings, the schedule grid and exports
type BookingDetail struct {
	Booking
	Username   string // Owner's login name
	DeskNumber int    // Desk number of the booked workplace
	Location   string // Location of the booked workplace
}
