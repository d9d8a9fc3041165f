package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/andreysazonov/office-booking/internal/domain/error"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsSlotTakenError(err),
		errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict
	case domainerr.IsOwnershipError(err):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrInvalidCredentials),
		domainerr.IsAuthError(err):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrMalformedTime),
		errors.Is(err, domainerr.ErrDurationExceeded),
		errors.Is(err, domainerr.ErrTooFarInFuture),
		errors.Is(err, domainerr.ErrUnknownLocation),
		errors.Is(err, domainerr.ErrInvalidUsername),
		errors.Is(err, domainerr.ErrInvalidPassword):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the error text safe to expose to clients. Storage
// and internal errors are collapsed to a generic message.
func publicMessage(err error) string {
	if statusForError(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
