package entity

import (
	"fmt"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
)

// Workplace represents a bookable desk. The (Number, Location) pair is
// unique across the catalog; two locations may each have a desk 3.
type Workplace struct {
	ID       uint64 // Unique identifier for the workplace
	Number   int    // Desk number within its location
	Location string // Named site the desk belongs to
}

// NewWorkplace creates a workplace after validating its identity pair
func NewWorkplace(number int, location string) (*Workplace, error) {
	if number <= 0 {
		return nil, errs.ErrWorkplaceNotFound
	}
	if location == "" {
		return nil, errs.ErrUnknownLocation
	}

	return &Workplace{
		Number:   number,
		Location: location,
	}, nil
}

// Label returns a human-readable desk identifier for messages and exports
func (w *Workplace) Label() string {
	return fmt.Sprintf("%s #%d", w.Location, w.Number)
}
