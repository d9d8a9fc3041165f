package report

import (
	"context"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// defaultRangeDays is the report window used when the caller gives no range
const defaultRangeDays = 30

// Occupancy relates actual bookings to the theoretical maximum over the
// filter range: 100 * bookings / (desks * days), rounded to 2 decimals.
// Days count both endpoints. A location with no desks yields a zero ratio,
// never a division error.
func (s *Service) Occupancy(ctx context.Context, filter entity.BookingFilter) (*entity.OccupancyReport, error) {
	if filter.From == nil || filter.To == nil {
		now := s.timeProvider.Now()
		from := now.AddDate(0, 0, -defaultRangeDays)
		if filter.From == nil {
			filter.From = &from
		}
		if filter.To == nil {
			filter.To = &now
		}
	}

	bookingCount, err := s.bookingRepo.CountFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	deskCount, err := s.workplaceRepo.Count(ctx, filter.Location)
	if err != nil {
		return nil, err
	}

	days := entity.DaysInclusive(*filter.From, *filter.To)

	rep := &entity.OccupancyReport{
		Location:     filter.Location,
		BookingCount: int(bookingCount),
		DeskCount:    int(deskCount),
		Days:         days,
	}
	if deskCount == 0 || days == 0 {
		return rep, nil
	}

	rep.Ratio = entity.RoundHours(100 * float64(bookingCount) / (float64(deskCount) * float64(days)))
	return rep, nil
}
