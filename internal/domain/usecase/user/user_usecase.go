package user

import (
	"context"
	"slices"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/domain/port/persistence"
)

// UserUseCase handles registration, authentication and account preferences
type UserUseCase struct {
	userRepo      persistence.UserRepository
	workplaceRepo persistence.WorkplaceRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	workplaceRepo persistence.WorkplaceRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:      userRepo,
		workplaceRepo: workplaceRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Register creates a new account. A taken username is ErrDuplicateUser;
// the unique index on usernames backs this check against races.
func (u *UserUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if _, err := u.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, errs.ErrDuplicateUser
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	account, err := entity.NewUser(username, password, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id":  account.ID,
		"username": account.Username,
	})
	return account, nil
}

// Authenticate verifies a credential pair. Both an unknown username and a
// wrong password produce ErrInvalidCredentials, so callers cannot probe for
// existing accounts.
func (u *UserUseCase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	account, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.CheckPassword(password) {
		u.logger.Warn("Failed login attempt", map[string]any{
			"username": username,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return account, nil
}

// GetByID retrieves an account by id
func (u *UserUseCase) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ChangePassword replaces the credential after verifying the old one
func (u *UserUseCase) ChangePassword(ctx context.Context, id uint64, oldPassword, newPassword string) error {
	account, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !account.CheckPassword(oldPassword) {
		return errs.ErrInvalidCredentials
	}
	if newPassword == "" {
		return errs.ErrInvalidPassword
	}

	if err := u.userRepo.UpdatePassword(ctx, id, newPassword); err != nil {
		return err
	}

	u.logger.Info("Password changed", map[string]any{
		"user_id": id,
	})
	return nil
}

// SetDefaultLocation stores the user's preferred location. The location
// must exist in the desk catalog.
func (u *UserUseCase) SetDefaultLocation(ctx context.Context, id uint64, location string) error {
	locations, err := u.workplaceRepo.Locations(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(locations, location) {
		return errs.ErrUnknownLocation
	}

	if err := u.userRepo.UpdateDefaultLocation(ctx, id, location); err != nil {
		return err
	}

	u.logger.Info("Default location updated", map[string]any{
		"user_id":  id,
		"location": location,
	})
	return nil
}
