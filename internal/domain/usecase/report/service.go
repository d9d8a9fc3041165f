package report

import (
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/domain/port/persistence"
)

// Window is the working window used by the hour histogram, inclusive of
// both hours: 8..18 yields buckets 08:00 through 18:00
type Window struct {
	OpenHour  int
	CloseHour int
}

// Service implements the read-only reporting aggregations. Every method is
// a pure function of the fetched ledger snapshot, so identical filters over
// an unchanged ledger always produce identical output.
type Service struct {
	bookingRepo   persistence.BookingRepository
	workplaceRepo persistence.WorkplaceRepository
	window        Window
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewService creates a reporting service
func NewService(
	bookingRepo persistence.BookingRepository,
	workplaceRepo persistence.WorkplaceRepository,
	window Window,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		workplaceRepo: workplaceRepo,
		window:        window,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}
