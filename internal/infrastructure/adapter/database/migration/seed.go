package migration

import (
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CatalogSeeder populates the desk catalog on first start
type CatalogSeeder struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCatalogSeeder creates a new catalog seeder
func NewCatalogSeeder(db *gorm.DB, logger coreport.Logger) *CatalogSeeder {
	return &CatalogSeeder{
		db:     db,
		logger: logger,
	}
}

// SeedWorkplaces creates desksPerLocation numbered desks for every configured
// location. Seeding only runs against an empty catalog so that operator edits
// survive restarts.
func (s *CatalogSeeder) SeedWorkplaces(locations []string, desksPerLocation int) error {
	var count int64
	if err := s.db.Model(&model.Workplace{}).Count(&count).Error; err != nil {
		s.logger.Error("Failed to inspect desk catalog", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if count > 0 {
		s.logger.Debug("Desk catalog already populated, skipping seed", map[string]any{
			"desks": count,
		})
		return nil
	}

	workplaces := make([]model.Workplace, 0, len(locations)*desksPerLocation)
	for _, location := range locations {
		for number := 1; number <= desksPerLocation; number++ {
			workplaces = append(workplaces, model.Workplace{
				Number:   number,
				Location: location,
			})
		}
	}

	if len(workplaces) == 0 {
		s.logger.Warn("No locations configured, desk catalog left empty", nil)
		return nil
	}

	if err := s.db.Create(&workplaces).Error; err != nil {
		s.logger.Error("Failed to seed desk catalog", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("Desk catalog seeded", map[string]any{
		"locations": len(locations),
		"desks":     len(workplaces),
	})
	return nil
}
