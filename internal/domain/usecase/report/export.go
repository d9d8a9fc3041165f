package report

import (
	"context"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// ExportRows flattens the filtered ledger into per-booking rows for the
// external spreadsheet collaborator. Formatting beyond these plain values
// is out of scope.
func (s *Service) ExportRows(ctx context.Context, filter entity.BookingFilter) ([]entity.ExportRow, error) {
	bookings, err := s.bookingRepo.ListDetailed(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.ExportRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, entity.ExportRow{
			Username:      b.Username,
			Location:      b.Location,
			DeskNumber:    b.DeskNumber,
			Date:          b.StartTime.Format(entity.DateLayout),
			StartTime:     b.StartTime.Format(entity.TimeOfDayLayout),
			EndTime:       b.EndTime.Format(entity.TimeOfDayLayout),
			Weekday:       weekdays[(int(b.StartTime.Weekday())+6)%7],
			DurationHours: b.DurationHours(),
		})
	}

	s.logger.Debug("Export rows prepared", map[string]any{
		"rows": len(rows),
	})
	return rows, nil
}
