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

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:              userModel.ID,
		Username:        userModel.Username,
		Password:        userModel.Password,
		DefaultLocation: userModel.DefaultLocation,
		CreatedAt:       userModel.CreatedAt,
		UpdatedAt:       userModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", fields)
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate username", fields)
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create creates a new user and writes the generated id back
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"username": user.Username,
	})

	userModel := model.User{
		Username:        user.Username,
		Password:        user.Password,
		DefaultLocation: user.DefaultLocation,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, map[string]any{
			"username": user.Username,
		})
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id":  userModel.ID,
		"username": user.Username,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{
			"user_id": id,
		})
	}

	return r.modelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by login name
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.logger.Debug("Getting user by username", map[string]any{
		"username": username,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error, map[string]any{
			"username": username,
		})
	}

	return r.modelToEntity(&userModel), nil
}

// UpdatePassword replaces the stored credential
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint64, password string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password":   password,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating password", result.Error, map[string]any{
			"user_id": id,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during password update", map[string]any{
			"user_id": id,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Info("Password updated successfully", map[string]any{
		"user_id": id,
	})
	return nil
}

// UpdateDefaultLocation sets the user's preferred location
func (r *UserRepository) UpdateDefaultLocation(ctx context.Context, id uint64, location string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"default_location": location,
			"updated_at":       r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating default location", result.Error, map[string]any{
			"user_id":  id,
			"location": location,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during default location update", map[string]any{
			"user_id": id,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Info("Default location updated successfully", map[string]any{
		"user_id":  id,
		"location": location,
	})
	return nil
}
