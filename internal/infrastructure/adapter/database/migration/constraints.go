package migration

import (
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"gorm.io/gorm"
)

// ConstraintManager manages PostgreSQL-specific constraints and indexes
// that GORM model tags cannot express
type ConstraintManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewConstraintManager creates a new constraint manager
func NewConstraintManager(db *gorm.DB, logger coreport.Logger) *ConstraintManager {
	return &ConstraintManager{
		db:     db,
		logger: logger,
	}
}

// CreateReservationConstraints creates the overlap and integrity constraints
// on the bookings table. The exclusion constraint is the storage-level
// backstop for the no-overlap invariant: two half-open ranges for the same
// desk can never coexist, whichever path tried to insert them.
func (m *ConstraintManager) CreateReservationConstraints() error {
	m.logger.Info("Creating reservation constraints", nil)

	// The exclusion constraint needs gist support for plain equality
	if err := m.db.Exec(`
		CREATE EXTENSION IF NOT EXISTS btree_gist
	`).Error; err != nil {
		m.logger.Error("Failed to create btree_gist extension", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Reject overlapping [start_time, end_time) ranges per desk.
	// Touching endpoints do not overlap under half-open range semantics.
	if err := m.db.Exec(`
		DO $$ BEGIN
			ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				place_id WITH =,
				tsrange(start_time, end_time) WITH &&
			);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$
	`).Error; err != nil {
		m.logger.Error("Failed to create overlap exclusion constraint", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Empty or inverted intervals never reach storage through the domain
	// layer; the check keeps out-of-band writes honest too
	if err := m.db.Exec(`
		DO $$ BEGIN
			ALTER TABLE bookings ADD CONSTRAINT bookings_positive_interval
			CHECK (end_time > start_time);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$
	`).Error; err != nil {
		m.logger.Error("Failed to create interval check constraint", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Reservation constraints created successfully", nil)
	return nil
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *ConstraintManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Composite index covering the overlap count query
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_place_interval
		ON bookings (place_id, start_time, end_time)
	`).Error; err != nil {
		m.logger.Error("Failed to create place interval index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index for per-user listings and bulk cancellations
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_start
		ON bookings (user_id, start_time)
	`).Error; err != nil {
		m.logger.Error("Failed to create user start index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create BRIN index for created_at (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_created_at_brin
		ON bookings USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *ConstraintManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Set fillfactor for bookings table to reduce page splits
	if err := m.db.Exec(`
		ALTER TABLE bookings SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for bookings table", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	// Set statistics target for better query planning
	if err := m.db.Exec(`
		ALTER TABLE bookings ALTER COLUMN place_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for place_id", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
