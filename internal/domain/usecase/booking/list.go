package booking

import (
	"context"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// UserBookings lists the requester's bookings, oldest start first, joined
// with desk number and location
func (s *Service) UserBookings(ctx context.Context, requesterID uint64) ([]entity.BookingDetail, error) {
	return s.bookingRepo.ListByUser(ctx, requesterID)
}

// Schedule returns every booking of a location that starts on the given
// calendar date. The caller renders the grid; this only supplies the rows.
func (s *Service) Schedule(ctx context.Context, location, date string) ([]entity.BookingDetail, error) {
	dayStart, dayEnd, err := entity.DayBounds(date)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.ListForDay(ctx, location, dayStart, dayEnd)
}
