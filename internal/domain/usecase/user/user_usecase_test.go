package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coremocks "github.com/andreysazonov/office-booking/mocks/port/core"
	persistencemocks "github.com/andreysazonov/office-booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	userRepo      *persistencemocks.MockUserRepository
	workplaceRepo *persistencemocks.MockWorkplaceRepository
	useCase       *UserUseCase
}

func newUserFixture(t *testing.T) *userFixture {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f := &userFixture{
		userRepo:      persistencemocks.NewMockUserRepository(t),
		workplaceRepo: persistencemocks.NewMockWorkplaceRepository(t),
	}
	f.useCase = NewUserUseCase(f.userRepo, f.workplaceRepo, mockTime, mockLogger)
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByUsername(mock.Anything, "alice").
			Return(nil, errs.ErrUserNotFound).Once()
		f.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.Password == "secret"
		})).Run(func(ctx context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()

		account, err := f.useCase.Register(ctx, "alice", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), account.ID)
		assert.Equal(t, "alice", account.Username)
	})

	t.Run("Taken username", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByUsername(mock.Anything, "alice").
			Return(&entity.User{ID: 1, Username: "alice"}, nil).Once()

		account, err := f.useCase.Register(ctx, "alice", "secret")

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		assert.Nil(t, account)
	})

	t.Run("Empty username", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByUsername(mock.Anything, "").
			Return(nil, errs.ErrUserNotFound).Once()

		account, err := f.useCase.Register(ctx, "", "secret")

		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
		assert.Nil(t, account)
	})

	t.Run("Empty password", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByUsername(mock.Anything, "alice").
			Return(nil, errs.ErrUserNotFound).Once()

		account, err := f.useCase.Register(ctx, "alice", "")

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
		assert.Nil(t, account)
	})

	t.Run("Lookup failure propagates", func(t *testing.T) {
		f := newUserFixture(t)
		dbErr := errors.New("connection reset")
		f.userRepo.EXPECT().GetByUsername(mock.Anything, "alice").
			Return(nil, dbErr).Once()

		account, err := f.useCase.Register(ctx, "alice", "secret")

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, account)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid credentials", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByUsername(mock.Anything, "alice").
			Return(&entity.User{ID: 42, Username: "alice", Password: "secret"}, nil).Once()

		account, err := f.useCase.Authenticate(ctx, "alice", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), account.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByUsername(mock.Anything, "alice").
			Return(&entity.User{ID: 42, Username: "alice", Password: "secret"}, nil).Once()

		account, err := f.useCase.Authenticate(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, account)
	})

	t.Run("Unknown username maps to the same error as a wrong password", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByUsername(mock.Anything, "nobody").
			Return(nil, errs.ErrUserNotFound).Once()

		account, err := f.useCase.Authenticate(ctx, "nobody", "secret")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, account)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful change", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).
			Return(&entity.User{ID: 42, Password: "old"}, nil).Once()
		f.userRepo.EXPECT().UpdatePassword(mock.Anything, uint64(42), "new").
			Return(nil).Once()

		err := f.useCase.ChangePassword(ctx, 42, "old", "new")

		assert.NoError(t, err)
	})

	t.Run("Wrong current password", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).
			Return(&entity.User{ID: 42, Password: "old"}, nil).Once()

		err := f.useCase.ChangePassword(ctx, 42, "wrong", "new")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Empty new password", func(t *testing.T) {
		f := newUserFixture(t)
		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).
			Return(&entity.User{ID: 42, Password: "old"}, nil).Once()

		err := f.useCase.ChangePassword(ctx, 42, "old", "")

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
	})
}

func TestSetDefaultLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("Known location is stored", func(t *testing.T) {
		f := newUserFixture(t)
		f.workplaceRepo.EXPECT().Locations(mock.Anything).
			Return([]string{"HQ", "Annex"}, nil).Once()
		f.userRepo.EXPECT().UpdateDefaultLocation(mock.Anything, uint64(42), "Annex").
			Return(nil).Once()

		err := f.useCase.SetDefaultLocation(ctx, 42, "Annex")

		assert.NoError(t, err)
	})

	t.Run("Location outside the catalog is refused", func(t *testing.T) {
		f := newUserFixture(t)
		f.workplaceRepo.EXPECT().Locations(mock.Anything).
			Return([]string{"HQ", "Annex"}, nil).Once()

		err := f.useCase.SetDefaultLocation(ctx, 42, "Mars")

		assert.ErrorIs(t, err, errs.ErrUnknownLocation)
	})
}
