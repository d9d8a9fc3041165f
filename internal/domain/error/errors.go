package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMalformedTime      = 4001
	CodeDurationExceeded   = 4002
	CodeTooFarInFuture     = 4003
	CodeSlotTaken          = 4004
	CodeNotBookingOwner    = 4005
	CodeDuplicateUser      = 4006
	CodeInvalidCredentials = 4010
	CodeUnknownLocation    = 4020
	CodeWorkplaceNotFound  = 4040
	CodeUserNotFound       = 4041
	CodeBookingNotFound    = 4042
	CodeTokenInvalid       = 4100
	CodeTokenRevoked       = 4101
	CodeConstraintViolation = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrWorkplaceNotFound is returned when the requested desk does not exist
	ErrWorkplaceNotFound = errors.New("workplace not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrBookingNotFound is returned when the requested booking doesn't exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrMalformedTime is returned when a date and time-of-day pair does not
	// combine into a valid timestamp, or when end is not after start
	ErrMalformedTime = errors.New("malformed booking time")

	// ErrDurationExceeded is returned when a booking interval is longer than
	// the configured maximum
	ErrDurationExceeded = errors.New("maximum booking duration exceeded")

	// ErrTooFarInFuture is returned when a booking starts beyond the
	// configured advance-booking horizon
	ErrTooFarInFuture = errors.New("booking starts too far in the future")

	// ErrSlotTaken is returned when the desk is not available for the
	// requested interval
	ErrSlotTaken = errors.New("workplace is not available for this time slot")

	// ErrNotBookingOwner is returned when a user tries to cancel a booking
	// owned by someone else
	ErrNotBookingOwner = errors.New("booking belongs to another user")

	// ErrDuplicateUser is returned when registering a username that is taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned when username/password don't match
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidUsername is returned when the username is empty or too long
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword is returned when the password is empty
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUnknownLocation is returned when a location is not in the catalog
	ErrUnknownLocation = errors.New("unknown location")

	// ErrTokenInvalid is returned when a session token fails validation
	ErrTokenInvalid = errors.New("invalid session token")

	// ErrTokenRevoked is returned when a session token has been logged out
	ErrTokenRevoked = errors.New("session token has been revoked")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMalformedTime):
		return CodeMalformedTime
	case errors.Is(err, ErrDurationExceeded):
		return CodeDurationExceeded
	case errors.Is(err, ErrTooFarInFuture):
		return CodeTooFarInFuture
	case errors.Is(err, ErrSlotTaken):
		return CodeSlotTaken
	case errors.Is(err, ErrNotBookingOwner):
		return CodeNotBookingOwner
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnknownLocation):
		return CodeUnknownLocation
	case errors.Is(err, ErrWorkplaceNotFound):
		return CodeWorkplaceNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrBookingNotFound):
		return CodeBookingNotFound
	case errors.Is(err, ErrTokenInvalid):
		return CodeTokenInvalid
	case errors.Is(err, ErrTokenRevoked):
		return CodeTokenRevoked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// ReservationError carries the context of a failed per-date reservation attempt
type ReservationError struct {
	DeskNumber int
	Location   string
	Date       string
	Err        error
}

// Error implements the error interface for ReservationError
func (e *ReservationError) Error() string {
	return fmt.Sprintf("reservation failed for desk %d at %s on %s: %v",
		e.DeskNumber, e.Location, e.Date, e.Err)
}

// Unwrap returns the underlying error
func (e *ReservationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReservationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "reservation_error",
		"desk_number": e.DeskNumber,
		"location":    e.Location,
		"date":        e.Date,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewReservationError creates a detailed reservation error
func NewReservationError(deskNumber int, location, date string, err error) error {
	return &ReservationError{
		DeskNumber: deskNumber,
		Location:   location,
		Date:       date,
		Err:        err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrWorkplaceNotFound) ||
		errors.Is(err, ErrBookingNotFound)
}

// IsSlotTakenError checks if the error means the desk-time slot is occupied
func IsSlotTakenError(err error) bool {
	return errors.Is(err, ErrSlotTaken)
}

// IsOwnershipError checks if the error is a cancellation ownership violation
func IsOwnershipError(err error) bool {
	return errors.Is(err, ErrNotBookingOwner)
}

// IsAuthError checks if the error relates to credentials or session tokens
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrTokenInvalid) ||
		errors.Is(err, ErrTokenRevoked)
}
