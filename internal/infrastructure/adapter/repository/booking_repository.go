package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// bookingDetailRow is the scan target for joined booking queries
type bookingDetailRow struct {
	ID         uint64
	PlaceID    uint64
	UserID     uint64
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
	Username   string
	DeskNumber int
	Location   string
}

func (row *bookingDetailRow) toDetail() entity.BookingDetail {
	return entity.BookingDetail{
		Booking: entity.Booking{
			ID:        row.ID,
			PlaceID:   row.PlaceID,
			UserID:    row.UserID,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			CreatedAt: row.CreatedAt,
		},
		Username:   row.Username,
		DeskNumber: row.DeskNumber,
		Location:   row.Location,
	}
}

// BookingRepository implements BookingRepository interface using GORM
type BookingRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	metrics         *MetricsCollector
}

// NewBookingRepository creates a new BookingRepository instance
func NewBookingRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BookingRepository {
	return &BookingRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		metrics:         NewMetricsCollector(logger, timeProvider),
	}
}

func (r *BookingRepository) modelToEntity(bookingModel *model.Booking) *entity.Booking {
	return &entity.Booking{
		ID:        bookingModel.ID,
		PlaceID:   bookingModel.PlaceID,
		UserID:    bookingModel.UserID,
		StartTime: bookingModel.StartTime,
		EndTime:   bookingModel.EndTime,
		CreatedAt: bookingModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *BookingRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Booking not found", fields)
		return errs.ErrBookingNotFound
	}

	switch r.errorClassifier.Classify(err) {
	case ExclusionError:
		// A concurrent writer inserted an overlapping interval first.
		// The caller records this as a lost race, not a server fault.
		r.logger.Warn("Overlap constraint rejected booking", logFields)
		return errs.ErrSlotTaken
	case DuplicateKeyError, ConstraintError:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
		return errs.ErrConstraintViolation
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new booking and writes the generated id back.
// The insert runs in a nested transaction so that a constraint failure
// rolls back to a savepoint and leaves the surrounding transaction usable.
func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingModel := model.Booking{
		PlaceID:   booking.PlaceID,
		UserID:    booking.UserID,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		CreatedAt: booking.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&bookingModel).Error
	})
	if err != nil {
		return r.handleDatabaseError("creating booking", err, map[string]any{
			"place_id": booking.PlaceID,
			"user_id":  booking.UserID,
			"start":    booking.StartTime,
			"end":      booking.EndTime,
		})
	}

	booking.ID = bookingModel.ID

	r.logger.Debug("Booking created", map[string]any{
		"booking_id": bookingModel.ID,
		"place_id":   booking.PlaceID,
		"user_id":    booking.UserID,
	})
	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uint64) (*entity.Booking, error) {
	var bookingModel model.Booking
	result := r.db.WithContext(ctx).First(&bookingModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting booking", result.Error, map[string]any{
			"booking_id": id,
		})
	}

	return r.modelToEntity(&bookingModel), nil
}

// Delete removes a booking by ID
func (r *BookingRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Booking{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting booking", result.Error, map[string]any{
			"booking_id": id,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Booking not found during delete", map[string]any{
			"booking_id": id,
		})
		return errs.ErrBookingNotFound
	}

	return nil
}

// CountOverlapping counts bookings of a workplace whose interval overlaps
// [start, end). Intervals that merely touch at an endpoint do not overlap.
func (r *BookingRepository) CountOverlapping(ctx context.Context, placeID uint64, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("place_id = ? AND start_time < ? AND end_time > ?", placeID, end, start).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting overlapping bookings", err, map[string]any{
			"place_id": placeID,
			"start":    start,
			"end":      end,
		})
	}
	return count, nil
}

// detailQuery builds the joined select shared by the listing methods
func (r *BookingRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Booking{}).
		Select("bookings.id, bookings.place_id, bookings.user_id, bookings.start_time, bookings.end_time, bookings.created_at, " +
			"users.username, workplaces.number AS desk_number, workplaces.location").
		Joins("JOIN users ON users.id = bookings.user_id").
		Joins("JOIN workplaces ON workplaces.id = bookings.place_id")
}

// ListByUser returns a user's bookings joined with desk details
func (r *BookingRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.BookingDetail, error) {
	var rows []bookingDetailRow
	err := r.detailQuery(ctx).
		Where("bookings.user_id = ?", userID).
		Order("bookings.start_time asc").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing user bookings", err, map[string]any{
			"user_id": userID,
		})
	}

	return rowsToDetails(rows), nil
}

// ListForDay returns a location's bookings starting inside [dayStart, dayEnd)
func (r *BookingRepository) ListForDay(ctx context.Context, location string, dayStart, dayEnd time.Time) ([]entity.BookingDetail, error) {
	var rows []bookingDetailRow
	err := r.detailQuery(ctx).
		Where("workplaces.location = ? AND bookings.start_time >= ? AND bookings.start_time < ?", location, dayStart, dayEnd).
		Order("workplaces.number asc, bookings.start_time asc").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing day schedule", err, map[string]any{
			"location": location,
			"day":      dayStart,
		})
	}

	return rowsToDetails(rows), nil
}

// ListDetailed returns joined rows matching the report filter
func (r *BookingRepository) ListDetailed(ctx context.Context, filter entity.BookingFilter) ([]entity.BookingDetail, error) {
	var rows []bookingDetailRow
	err := r.applyFilter(r.detailQuery(ctx), filter).
		Order("bookings.start_time asc").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing bookings for report", err, nil)
	}

	return rowsToDetails(rows), nil
}

// CountFiltered counts bookings matching the report filter
func (r *BookingRepository) CountFiltered(ctx context.Context, filter entity.BookingFilter) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Booking{}).
		Joins("JOIN workplaces ON workplaces.id = bookings.place_id")

	var count int64
	if err := r.applyFilter(query, filter).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting bookings for report", err, nil)
	}
	return count, nil
}

// applyFilter narrows a booking query by the optional report bounds
func (r *BookingRepository) applyFilter(query *gorm.DB, filter entity.BookingFilter) *gorm.DB {
	if filter.From != nil {
		query = query.Where("bookings.start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("bookings.start_time <= ?", *filter.To)
	}
	if filter.Location != "" {
		query = query.Where("workplaces.location = ?", filter.Location)
	}
	return query
}

// DeleteUpcomingByUser removes the user's bookings whose end is strictly
// after now and returns the number removed
func (r *BookingRepository) DeleteUpcomingByUser(ctx context.Context, userID uint64, now time.Time) (int64, error) {
	var removed int64
	_, err := r.metrics.MeasureQuery(ctx, "delete_upcoming_bookings", func() (int64, error) {
		result := r.db.WithContext(ctx).
			Where("user_id = ? AND end_time > ?", userID, now).
			Delete(&model.Booking{})
		removed = result.RowsAffected
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return 0, r.handleDatabaseError("deleting upcoming bookings", err, map[string]any{
			"user_id": userID,
		})
	}

	r.logger.Info("Upcoming bookings removed", map[string]any{
		"user_id": userID,
		"removed": removed,
	})
	return removed, nil
}

// DeleteByUserStartRange removes the user's bookings whose start falls in
// [from, to) and returns the number removed
func (r *BookingRepository) DeleteByUserStartRange(ctx context.Context, userID uint64, from, to time.Time) (int64, error) {
	var removed int64
	_, err := r.metrics.MeasureQuery(ctx, "delete_bookings_in_range", func() (int64, error) {
		result := r.db.WithContext(ctx).
			Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, from, to).
			Delete(&model.Booking{})
		removed = result.RowsAffected
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return 0, r.handleDatabaseError("deleting bookings in range", err, map[string]any{
			"user_id": userID,
			"from":    from,
			"to":      to,
		})
	}

	r.logger.Info("Bookings removed for range", map[string]any{
		"user_id": userID,
		"removed": removed,
	})
	return removed, nil
}

func rowsToDetails(rows []bookingDetailRow) []entity.BookingDetail {
	details := make([]entity.BookingDetail, 0, len(rows))
	for i := range rows {
		details = append(details, rows[i].toDetail())
	}
	return details
}
