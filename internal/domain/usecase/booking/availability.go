package booking

import (
	"context"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	"github.com/andreysazonov/office-booking/internal/domain/port/persistence"
)

// IsAvailable reports whether a workplace is free over [start, end).
// The interval is free when no existing booking satisfies the open-interval
// overlap test existing.start < end && existing.end > start; touching
// endpoints do not conflict. When working-hours enforcement is on, an
// interval outside the window is unavailable regardless of the ledger.
func (s *Service) IsAvailable(ctx context.Context, placeID uint64, start, end time.Time) (bool, error) {
	return s.isAvailableWith(ctx, s.bookingRepo, placeID, start, end)
}

// isAvailableWith runs the availability check through the given repository,
// which inside Reserve is the transaction-bound ledger
func (s *Service) isAvailableWith(
	ctx context.Context,
	ledger persistence.BookingRepository,
	placeID uint64,
	start, end time.Time,
) (bool, error) {
	if s.policy.EnforceWorkingHours &&
		!entity.WithinWorkingHours(start, end, s.policy.OpenHour, s.policy.CloseHour) {
		return false, nil
	}

	overlapping, err := ledger.CountOverlapping(ctx, placeID, start, end)
	if err != nil {
		return false, err
	}
	return overlapping == 0, nil
}
