package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// WorkplaceRepository implements WorkplaceRepository interface using GORM
type WorkplaceRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWorkplaceRepository creates a new WorkplaceRepository instance
func NewWorkplaceRepository(db *gorm.DB, logger coreport.Logger) *WorkplaceRepository {
	return &WorkplaceRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *WorkplaceRepository) modelToEntity(workplaceModel *model.Workplace) *entity.Workplace {
	return &entity.Workplace{
		ID:       workplaceModel.ID,
		Number:   workplaceModel.Number,
		Location: workplaceModel.Location,
	}
}

// handleDatabaseError standardizes database error handling
func (r *WorkplaceRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Workplace not found", fields)
		return errs.ErrWorkplaceNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new workplace and writes the generated id back
func (r *WorkplaceRepository) Create(ctx context.Context, workplace *entity.Workplace) error {
	workplaceModel := model.Workplace{
		Number:   workplace.Number,
		Location: workplace.Location,
	}

	result := r.db.WithContext(ctx).Create(&workplaceModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating workplace", result.Error, map[string]any{
			"number":   workplace.Number,
			"location": workplace.Location,
		})
	}

	workplace.ID = workplaceModel.ID
	return nil
}

// GetByID retrieves a workplace by ID
func (r *WorkplaceRepository) GetByID(ctx context.Context, id uint64) (*entity.Workplace, error) {
	var workplaceModel model.Workplace
	result := r.db.WithContext(ctx).First(&workplaceModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting workplace", result.Error, map[string]any{
			"place_id": id,
		})
	}

	return r.modelToEntity(&workplaceModel), nil
}

// GetByNumberAndLocation resolves the unique (number, location) pair
func (r *WorkplaceRepository) GetByNumberAndLocation(ctx context.Context, number int, location string) (*entity.Workplace, error) {
	var workplaceModel model.Workplace
	result := r.db.WithContext(ctx).
		Where("number = ? AND location = ?", number, location).
		First(&workplaceModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting workplace by number", result.Error, map[string]any{
			"number":   number,
			"location": location,
		})
	}

	return r.modelToEntity(&workplaceModel), nil
}

// List returns the whole catalog ordered by location then number
func (r *WorkplaceRepository) List(ctx context.Context) ([]entity.Workplace, error) {
	var workplaceModels []model.Workplace
	result := r.db.WithContext(ctx).
		Order("location asc, number asc").
		Find(&workplaceModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing workplaces", result.Error, nil)
	}

	workplaces := make([]entity.Workplace, 0, len(workplaceModels))
	for i := range workplaceModels {
		workplaces = append(workplaces, *r.modelToEntity(&workplaceModels[i]))
	}
	return workplaces, nil
}

// ListByLocation returns one location's desks ordered by number
func (r *WorkplaceRepository) ListByLocation(ctx context.Context, location string) ([]entity.Workplace, error) {
	var workplaceModels []model.Workplace
	result := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("number asc").
		Find(&workplaceModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing workplaces by location", result.Error, map[string]any{
			"location": location,
		})
	}

	workplaces := make([]entity.Workplace, 0, len(workplaceModels))
	for i := range workplaceModels {
		workplaces = append(workplaces, *r.modelToEntity(&workplaceModels[i]))
	}
	return workplaces, nil
}

// Count returns the catalog size, optionally narrowed to a location
func (r *WorkplaceRepository) Count(ctx context.Context, location string) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Workplace{})
	if location != "" {
		query = query.Where("location = ?", location)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting workplaces", err, map[string]any{
			"location": location,
		})
	}
	return count, nil
}

// Locations returns the distinct location names in the catalog
func (r *WorkplaceRepository) Locations(ctx context.Context) ([]string, error) {
	var locations []string
	result := r.db.WithContext(ctx).Model(&model.Workplace{}).
		Distinct("location").
		Order("location asc").
		Pluck("location", &locations)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing locations", result.Error, nil)
	}
	return locations, nil
}

// LockByID takes an exclusive row lock on the workplace.
// The lock is held until the surrounding transaction ends, which
// serializes concurrent reservations for the same desk.
func (r *WorkplaceRepository) LockByID(ctx context.Context, id uint64) error {
	var workplaceModel model.Workplace
	result := r.db.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&workplaceModel, id)
	if result.Error != nil {
		return r.handleDatabaseError("locking workplace", result.Error, map[string]any{
			"place_id": id,
		})
	}

	r.logger.Debug("Workplace row locked", map[string]any{
		"place_id": id,
	})
	return nil
}
