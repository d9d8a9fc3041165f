package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	"github.com/andreysazonov/office-booking/internal/domain/port/persistence"
)

// Reserve validates and commits reservations for each requested date.
//
// Dates are evaluated independently: one date failing a check does not
// affect the others, so a request for every weekday of a month may
// partially succeed. The whole call aborts only when the desk or the
// requester cannot be resolved.
//
// All per-date writes happen inside one unit of work that first takes an
// exclusive row lock on the workplace. Two concurrent Reserve calls for
// the same desk therefore serialize: the loser re-reads the ledger after
// the winner committed and observes the slot as taken. A storage-level
// overlap conflict that slips through is translated to the same outcome,
// never surfaced as a raw database error.
func (s *Service) Reserve(ctx context.Context, req entity.ReservationRequest) ([]entity.ReservationOutcome, error) {
	workplace, err := s.workplaceRepo.GetByNumberAndLocation(ctx, req.DeskNumber, req.Location)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrWorkplaceNotFound
		}
		return nil, err
	}

	requester, err := s.userRepo.GetByID(ctx, req.RequesterID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back reservation transaction", map[string]any{
					"error": rbErr.Error(),
				})
			}
		}
	}()

	// Serialize against concurrent reservations for this desk before the
	// first availability check.
	if err := s.uow.WorkplaceRepository(txCtx).LockByID(txCtx, workplace.ID); err != nil {
		return nil, err
	}
	ledger := s.uow.BookingRepository(txCtx)

	outcomes := make([]entity.ReservationOutcome, 0, len(req.Dates))
	bookedCount := 0
	for _, date := range req.Dates {
		outcome, err := s.reserveDate(txCtx, ledger, workplace, requester.ID, date, req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}
		if outcome.Booked() {
			bookedCount++
		}
		outcomes = append(outcomes, outcome)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	s.logger.Info("Reservation request processed", map[string]any{
		"desk_number": req.DeskNumber,
		"location":    req.Location,
		"user_id":     requester.ID,
		"dates":       len(req.Dates),
		"booked":      bookedCount,
	})

	return outcomes, nil
}

// reserveDate evaluates a single date against the booking policy and, when
// every check passes, writes the booking within the open transaction.
// Policy rejections become outcomes; only infrastructure failures return
// an error.
func (s *Service) reserveDate(
	ctx context.Context,
	ledger persistence.BookingRepository,
	workplace *entity.Workplace,
	requesterID uint64,
	date, startTOD, endTOD string,
) (entity.ReservationOutcome, error) {
	start, err := entity.CombineDateTime(date, startTOD)
	if err != nil {
		return rejected(date, errs.ErrMalformedTime, fmt.Sprintf("invalid date or time: %s", date)), nil
	}
	end, err := entity.CombineDateTime(date, endTOD)
	if err != nil {
		return rejected(date, errs.ErrMalformedTime, fmt.Sprintf("invalid date or time: %s", date)), nil
	}
	if !end.After(start) {
		return rejected(date, errs.ErrMalformedTime, "end time must be after start time"), nil
	}

	if end.Sub(start) > s.policy.MaxDuration {
		return rejected(date, errs.ErrDurationExceeded,
			fmt.Sprintf("bookings may not exceed %d days", int(s.policy.MaxDuration.Hours()/24))), nil
	}

	// Past-dated starts are deliberately allowed; only the forward horizon
	// is bounded.
	if start.After(s.timeProvider.Now().Add(s.policy.MaxAdvance)) {
		return rejected(date, errs.ErrTooFarInFuture,
			fmt.Sprintf("bookings may start at most %d days ahead", int(s.policy.MaxAdvance.Hours()/24))), nil
	}

	available, err := s.isAvailableWith(ctx, ledger, workplace.ID, start, end)
	if err != nil {
		return entity.ReservationOutcome{}, err
	}
	if !available {
		return rejected(date, errs.ErrSlotTaken,
			fmt.Sprintf("desk %d is taken on %s", workplace.Number, date)), nil
	}

	booking, err := entity.NewBooking(workplace.ID, requesterID, start, end, s.timeProvider)
	if err != nil {
		return entity.ReservationOutcome{}, err
	}
	if err := ledger.Create(ctx, booking); err != nil {
		// A concurrent writer beat us to the slot despite the availability
		// check; report it like any other occupied slot.
		if errors.Is(err, errs.ErrSlotTaken) {
			s.logger.Warn("Overlap conflict on booking insert", map[string]any{
				"place_id": workplace.ID,
				"date":     date,
			})
			return rejected(date, errs.ErrSlotTaken,
				fmt.Sprintf("desk %d is taken on %s", workplace.Number, date)), nil
		}
		return entity.ReservationOutcome{}, err
	}

	return entity.ReservationOutcome{
		Date:      date,
		Status:    entity.StatusBooked,
		Reason:    fmt.Sprintf("desk %d booked for %s", workplace.Number, date),
		BookingID: booking.ID,
	}, nil
}

// rejected builds a per-date failure outcome
func rejected(date string, err error, reason string) entity.ReservationOutcome {
	return entity.ReservationOutcome{
		Date:   date,
		Status: entity.StatusRejected,
		Reason: reason,
		Err:    err,
	}
}
