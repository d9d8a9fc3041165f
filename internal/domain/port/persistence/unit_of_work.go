package persistence

import (
	"context"
)

// UnitOfWork coordinates a single transactional boundary around the
// availability check and the corresponding ledger writes, so that two
// concurrent reservations of the same desk cannot both pass the check
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// BookingRepository returns a booking repository bound to the current transaction
	BookingRepository(ctx context.Context) BookingRepository

	// WorkplaceRepository returns a workplace repository bound to the current transaction
	WorkplaceRepository(ctx context.Context) WorkplaceRepository
}
