package booking

import (
	"context"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
)

// CancelBooking deletes a single booking. Only the owning user may cancel;
// anyone else gets ErrNotBookingOwner and the booking stays in the ledger.
func (s *Service) CancelBooking(ctx context.Context, bookingID, requesterID uint64) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return errs.ErrBookingNotFound
		}
		return err
	}

	if booking.UserID != requesterID {
		s.logger.Warn("Cancellation attempt by non-owner", map[string]any{
			"booking_id":   bookingID,
			"owner_id":     booking.UserID,
			"requester_id": requesterID,
		})
		return errs.ErrNotBookingOwner
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return err
	}

	s.logger.Info("Booking cancelled", map[string]any{
		"booking_id": bookingID,
		"user_id":    requesterID,
	})
	return nil
}

// CancelUpcoming deletes every booking of the requester whose end is still
// ahead of now. Removing nothing is an informational result, not a failure.
func (s *Service) CancelUpcoming(ctx context.Context, requesterID uint64) (int64, error) {
	deleted, err := s.bookingRepo.DeleteUpcomingByUser(ctx, requesterID, s.timeProvider.Now())
	if err != nil {
		return 0, err
	}

	s.logger.Info("Upcoming bookings cancelled", map[string]any{
		"user_id": requesterID,
		"deleted": deleted,
	})
	return deleted, nil
}

// CancelRange deletes the requester's bookings whose start falls within
// [startDate 00:00, endDate+1day 00:00). Zero deletions is not an error.
func (s *Service) CancelRange(ctx context.Context, requesterID uint64, startDate, endDate string) (int64, error) {
	from, err := entity.ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	_, to, err := entity.DayBounds(endDate)
	if err != nil {
		return 0, err
	}

	deleted, err := s.bookingRepo.DeleteByUserStartRange(ctx, requesterID, from, to)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Booking range cancelled", map[string]any{
		"user_id": requesterID,
		"from":    startDate,
		"to":      endDate,
		"deleted": deleted,
	})
	return deleted, nil
}
