package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quotecraft/internal/domain/crmauth"
	"quotecraft/internal/infrastructure/persistence/models"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

type CRMCredentialRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCRMCredentialRepository(gdb *gorm.DB, logger logger.Interface) crmauth.Repository {
	return &CRMCredentialRepositoryImpl{db: gdb, logger: logger}
}

// Upsert replaces the credential row for the location; token refresh
// rewrites it in place.
func (r *CRMCredentialRepositoryImpl) Upsert(ctx context.Context, c *crmauth.Credential) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.CRMCredentialModel{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		ExpiresAt:    c.ExpiresAt,
		LocationID:   c.LocationID,
		CompanyID:    c.CompanyID,
		UserID:       c.UserID,
		Scope:        c.Scope,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "location_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token", "refresh_token", "expires_at", "company_id", "user_id", "scope", "updated_at",
		}),
	}).Create(&model).Error; err != nil {
		r.logger.Errorw("failed to upsert crm credential", "error", err, "location_id", c.LocationID)
		return fmt.Errorf("failed to upsert crm credential: %w", err)
	}
	c.ID = model.ID
	return nil
}

func (r *CRMCredentialRepositoryImpl) GetByLocationID(ctx context.Context, locationID string) (*crmauth.Credential, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var model models.CRMCredentialModel
	if err := tx.Where("location_id = ?", locationID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("crm credential not found")
		}
		r.logger.Errorw("failed to get crm credential", "error", err, "location_id", locationID)
		return nil, fmt.Errorf("failed to get crm credential: %w", err)
	}
	return toCredential(&model), nil
}

func (r *CRMCredentialRepositoryImpl) GetLatest(ctx context.Context) (*crmauth.Credential, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var model models.CRMCredentialModel
	if err := tx.Order("updated_at DESC").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("crm credential not found")
		}
		r.logger.Errorw("failed to get latest crm credential", "error", err)
		return nil, fmt.Errorf("failed to get latest crm credential: %w", err)
	}
	return toCredential(&model), nil
}

func toCredential(model *models.CRMCredentialModel) *crmauth.Credential {
	return &crmauth.Credential{
		ID:           model.ID,
		AccessToken:  model.AccessToken,
		RefreshToken: model.RefreshToken,
		ExpiresAt:    model.ExpiresAt,
		LocationID:   model.LocationID,
		CompanyID:    model.CompanyID,
		UserID:       model.UserID,
		Scope:        model.Scope,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
