package persistence

import (
	"context"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
)

// WorkplaceRepository defines data access operations for the desk catalog
type WorkplaceRepository interface {
	// Create persists a new workplace; used by catalog seeding only
	Create(ctx context.Context, workplace *entity.Workplace) error

	// GetByID retrieves a workplace by id
	GetByID(ctx context.Context, id uint64) (*entity.Workplace, error)

	// GetByNumberAndLocation resolves the unique (number, location) pair
	GetByNumberAndLocation(ctx context.Context, number int, location string) (*entity.Workplace, error)

	// List returns the whole catalog ordered by location then number
	List(ctx context.Context) ([]entity.Workplace, error)

	// ListByLocation returns one location's desks ordered by number
	ListByLocation(ctx context.Context, location string) ([]entity.Workplace, error)

	// Count returns the catalog size, optionally narrowed to a location
	// (empty string counts every desk)
	Count(ctx context.Context, location string) (int64, error)

	// Locations returns the distinct location names in the catalog
	Locations(ctx context.Context) ([]string, error)

	// LockByID takes an exclusive row lock on the workplace. Within a unit
	// of work this serializes concurrent reservations for the same desk;
	// outside a transaction it is a no-op lock that releases immediately.
	LockByID(ctx context.Context, id uint64) error
}
