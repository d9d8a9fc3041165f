package persistence

import (
	"context"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	// Create persists a new user; the generated id is written back
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by login name
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// UpdatePassword replaces the stored credential
	UpdatePassword(ctx context.Context, id uint64, password string) error

	// UpdateDefaultLocation sets the user's preferred location
	UpdateDefaultLocation(ctx context.Context, id uint64, location string) error
}
