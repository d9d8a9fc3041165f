package usecase

import (
	"context"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// UserUseCase handles registration, authentication and account preferences
type UserUseCase interface {
	// Register creates a new account; a taken username is ErrDuplicateUser
	Register(ctx context.Context, username, password string) (*entity.User, error)

	// Authenticate checks the credential pair and returns the account;
	// any mismatch is ErrInvalidCredentials
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)

	// GetByID retrieves an account by id
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// ChangePassword replaces the credential after verifying the old one
	ChangePassword(ctx context.Context, id uint64, oldPassword, newPassword string) error

	// SetDefaultLocation stores the user's preferred location; the location
	// must exist in the catalog
	SetDefaultLocation(ctx context.Context, id uint64, location string) error
}
