package entity

import (
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
)

// MaxUsernameLength bounds usernames the same way the users table does
const MaxUsernameLength = 50

// User represents a registered account that owns bookings
type User struct {
	ID              uint64     // Unique identifier for the user
	Username        string     // Unique login name
	Password        string     // Credential, stored and compared in plain form
	DefaultLocation *string    // Preferred location, nil when never set
	CreatedAt       time.Time  // When the user was created
	UpdatedAt       time.Time  // When the user was last updated
}

// NewUser creates a new user with the given username and credential
func NewUser(username, password string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" || len(username) > MaxUsernameLength {
		return nil, errs.ErrInvalidUsername
	}
	if password == "" {
		return nil, errs.ErrInvalidPassword
	}

	now := timeProvider.Now()
	return &User{
		Username:  username,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CheckPassword compares the stored credential with the candidate.
// Plain comparison is a preserved interface of the legacy system, not a
// security mechanism.
func (u *User) CheckPassword(candidate string) bool {
	return u.Password == candidate
}

// HasDefaultLocation reports whether the user has set a preferred location
func (u *User) HasDefaultLocation() bool {
	return u.DefaultLocation != nil && *u.DefaultLocation != ""
}

// SetDefaultLocation updates the preferred location
func (u *User) SetDefaultLocation(location string, timeProvider coreport.TimeProvider) {
	u.DefaultLocation = &location
	u.UpdatedAt = timeProvider.Now()
}
