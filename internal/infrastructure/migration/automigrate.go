package migration

import (
	"fmt"

	"gorm.io/gorm"

	"quotecraft/internal/infrastructure/persistence/models"
	"quotecraft/internal/shared/logger"
)

// GormAutoMigrateStrategy lets GORM derive the schema from the model structs.
// Used in development where schema churn is high.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels returns every persistence model in dependency order so
// foreign keys resolve during creation.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ServiceModel{},
		&models.FeatureModel{},
		&models.PricingOptionModel{},
		&models.PricingOptionFeatureModel{},
		&models.QuestionModel{},
		&models.QuestionOptionModel{},
		&models.ContactModel{},
		&models.AddressModel{},
		&models.PurchaseModel{},
		&models.PurchasedServiceModel{},
		&models.PlanSnapshotModel{},
		&models.FeatureSnapshotModel{},
		&models.PlanFeatureModel{},
		&models.QuestionAnswerModel{},
		&models.OptionAnswerModel{},
		&models.CustomProductModel{},
		&models.GlobalSettingsModel{},
		&models.WebhookLogModel{},
		&models.CRMCredentialModel{},
	}
}
