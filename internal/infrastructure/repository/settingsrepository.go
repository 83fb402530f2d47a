package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quotecraft/internal/domain/settings"
	"quotecraft/internal/infrastructure/persistence/models"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/logger"
)

// settingsRowID is the forced primary key of the singleton row.
const settingsRowID = 1

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSettingsRepository(gdb *gorm.DB, logger logger.Interface) settings.Repository {
	return &SettingsRepositoryImpl{db: gdb, logger: logger}
}

// Load returns the settings row, creating it with defaults on first access.
func (r *SettingsRepositoryImpl) Load(ctx context.Context) (*settings.GlobalSettings, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.GlobalSettingsModel
	err := tx.First(&model, settingsRowID).Error
	if err == gorm.ErrRecordNotFound {
		def := settings.Default()
		model = models.GlobalSettingsModel{ID: settingsRowID, MinimumPrice: def.MinimumPrice}
		if err := tx.Create(&model).Error; err != nil {
			r.logger.Errorw("failed to create default settings", "error", err)
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		return def, nil
	}
	if err != nil {
		r.logger.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &settings.GlobalSettings{MinimumPrice: model.MinimumPrice}, nil
}

// Save upserts the singleton row, always under the forced primary key.
func (r *SettingsRepositoryImpl) Save(ctx context.Context, g *settings.GlobalSettings) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.GlobalSettingsModel{ID: settingsRowID, MinimumPrice: g.MinimumPrice}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"minimum_price", "updated_at"}),
	}).Create(&model).Error; err != nil {
		r.logger.Errorw("failed to save settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
