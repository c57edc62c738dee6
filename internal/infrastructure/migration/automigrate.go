package migration

import (
	"fmt"

	"gorm.io/gorm"

	"recruitscore/internal/infrastructure/persistence/models"
	"recruitscore/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model the schema needs.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CompanyModel{},
		&models.ClaimRequestModel{},
		&models.ReviewModel{},
		&models.ReviewResponseModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs.
// Development only; versioned SQL owns the schema everywhere else.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.auto-migrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("running gorm auto-migrate", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
