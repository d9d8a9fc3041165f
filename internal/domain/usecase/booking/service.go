package booking

import (
	"time"

	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/domain/port/persistence"
)

// Policy holds the deployment-time booking rules. Working-hours enforcement
// is a configuration toggle, not a code branch: deployments differ on
// whether off-hours bookings are allowed.
type Policy struct {
	MaxDuration         time.Duration // Longest allowed booking interval
	MaxAdvance          time.Duration // How far ahead a booking may start
	EnforceWorkingHours bool          // Restrict intervals to the working window
	OpenHour            int           // Working window opening hour
	CloseHour           int           // Working window closing hour
}

// DefaultPolicy returns the rules the legacy system shipped with:
// bookings of up to 7 days, at most 30 days ahead, no working-hours
// restriction. Past-dated starts are intentionally not rejected.
func DefaultPolicy() Policy {
	return Policy{
		MaxDuration:         7 * 24 * time.Hour,
		MaxAdvance:          30 * 24 * time.Hour,
		EnforceWorkingHours: false,
		OpenHour:            8,
		CloseHour:           18,
	}
}

// Service implements the booking engine: reservation, availability,
// cancellation and listing
type Service struct {
	uow           persistence.UnitOfWork
	userRepo      persistence.UserRepository
	workplaceRepo persistence.WorkplaceRepository
	bookingRepo   persistence.BookingRepository
	policy        Policy
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewService creates a booking service
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	workplaceRepo persistence.WorkplaceRepository,
	bookingRepo persistence.BookingRepository,
	policy Policy,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:           uow,
		userRepo:      userRepo,
		workplaceRepo: workplaceRepo,
		bookingRepo:   bookingRepo,
		policy:        policy,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Policy returns the active booking rules
func (s *Service) Policy() Policy {
	return s.policy
}
