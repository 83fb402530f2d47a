package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/infrastructure/persistence/mappers"
	"quotecraft/internal/infrastructure/persistence/models"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ServiceMapper
	logger logger.Interface
}

func NewServiceRepository(gdb *gorm.DB, logger logger.Interface) catalog.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewServiceMapper(),
		logger: logger,
	}
}

// Create inserts the service tree level by level: the service row, then
// features, then pricing options with their feature junctions, then
// questions with options. The junction rows need the generated feature ids,
// which is why this cannot be a single nested insert.
func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *catalog.Service) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		model := &models.ServiceModel{
			Name:        service.Name(),
			Description: service.Description(),
			IsActive:    service.IsActive(),
			CreatedAt:   service.CreatedAt(),
			UpdatedAt:   service.UpdatedAt(),
		}
		if err := tx.Create(model).Error; err != nil {
			r.logger.Errorw("failed to create service", "error", err, "name", service.Name())
			return fmt.Errorf("failed to create service: %w", err)
		}
		if err := service.SetID(model.ID); err != nil {
			return err
		}
		return r.insertChildren(tx, service)
	})
}

// Update replaces the service row and its whole nested children set.
func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *catalog.Service) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ServiceModel{}).
			Where("id = ?", service.ID()).
			Updates(map[string]interface{}{
				"name":        service.Name(),
				"description": service.Description(),
				"is_active":   service.IsActive(),
				"updated_at":  service.UpdatedAt(),
			})
		if result.Error != nil {
			r.logger.Errorw("failed to update service", "error", result.Error, "service_id", service.ID())
			return fmt.Errorf("failed to update service: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("service not found")
		}

		if err := r.deleteChildren(tx, service.ID()); err != nil {
			return err
		}
		return r.insertChildren(tx, service)
	})
}

func (r *ServiceRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var model models.ServiceModel
	if err := r.preload(tx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("service not found")
		}
		r.logger.Errorw("failed to get service", "error", err, "service_id", id)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ServiceRepositoryImpl) List(ctx context.Context) ([]*catalog.Service, error) {
	return r.list(ctx, false)
}

func (r *ServiceRepositoryImpl) ListActive(ctx context.Context) ([]*catalog.Service, error) {
	return r.list(ctx, true)
}

func (r *ServiceRepositoryImpl) list(ctx context.Context, activeOnly bool) ([]*catalog.Service, error) {
	tx := r.preload(db.GetTxFromContext(ctx, r.db))
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}

	var serviceModels []*models.ServiceModel
	if err := tx.Order("id").Find(&serviceModels).Error; err != nil {
		r.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return r.mapper.ToEntities(serviceModels)
}

// Delete removes the service and its children. Purchase snapshots have no
// foreign key here and are untouched.
func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := r.deleteChildren(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.ServiceModel{}, id)
		if result.Error != nil {
			r.logger.Errorw("failed to delete service", "error", result.Error, "service_id", id)
			return fmt.Errorf("failed to delete service: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("service not found")
		}
		return nil
	})
}

func (r *ServiceRepositoryImpl) UpdateActive(ctx context.Context, id uint, isActive bool) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ServiceModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)
	if result.Error != nil {
		r.logger.Errorw("failed to update service active flag", "error", result.Error, "service_id", id)
		return fmt.Errorf("failed to update service active flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("service not found")
	}
	return nil
}

func (r *ServiceRepositoryImpl) preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Features").
		Preload("PricingOptions.Features").
		Preload("Questions", func(tx *gorm.DB) *gorm.DB { return tx.Order("display_order") }).
		Preload("Questions.Options", func(tx *gorm.DB) *gorm.DB { return tx.Order("display_order") })
}

func (r *ServiceRepositoryImpl) insertChildren(tx *gorm.DB, service *catalog.Service) error {
	featureIDs := make(map[string]uint)
	for _, f := range service.Features() {
		fm := models.FeatureModel{
			ServiceID:   service.ID(),
			Name:        f.Name(),
			Description: f.Description(),
			CreatedAt:   f.CreatedAt(),
		}
		if err := tx.Create(&fm).Error; err != nil {
			return fmt.Errorf("failed to create feature %q: %w", f.Name(), err)
		}
		f.SetID(fm.ID)
		featureIDs[f.Name()] = fm.ID
	}

	for _, po := range service.PricingOptions() {
		pom := models.PricingOptionModel{
			ServiceID: service.ID(),
			Name:      po.Name(),
			Discount:  po.Discount(),
			BasePrice: po.BasePrice(),
			IsActive:  po.IsActive(),
			CreatedAt: po.CreatedAt(),
		}
		if err := tx.Create(&pom).Error; err != nil {
			return fmt.Errorf("failed to create pricing option %q: %w", po.Name(), err)
		}
		po.SetID(pom.ID)

		for _, fi := range po.Features() {
			featureID, ok := featureIDs[fi.FeatureName]
			if !ok {
				// AddPricingOption validates inclusion names, so a miss here
				// is a programming error, not bad input.
				return fmt.Errorf("feature %q not inserted for service %d", fi.FeatureName, service.ID())
			}
			jm := models.PricingOptionFeatureModel{
				PricingOptionID: pom.ID,
				FeatureID:       featureID,
				IsIncluded:      fi.Included,
			}
			if err := tx.Create(&jm).Error; err != nil {
				return fmt.Errorf("failed to create pricing option feature link: %w", err)
			}
		}
	}

	for _, q := range service.Questions() {
		qm := models.QuestionModel{
			ServiceID:    service.ID(),
			Text:         q.Text(),
			Type:         q.Type().String(),
			UnitPrice:    q.UnitPrice(),
			IsRequired:   q.IsRequired(),
			DisplayOrder: q.Order(),
			IsActive:     q.IsActive(),
			CreatedAt:    q.CreatedAt(),
		}
		if err := tx.Create(&qm).Error; err != nil {
			return fmt.Errorf("failed to create question %q: %w", q.Text(), err)
		}
		q.SetID(qm.ID)

		for _, opt := range q.Options() {
			om := models.QuestionOptionModel{
				QuestionID:      qm.ID,
				Value:           opt.Value(),
				Label:           opt.Label(),
				AdditionalPrice: opt.AdditionalPrice(),
				DisplayOrder:    opt.Order(),
				IsActive:        opt.IsActive(),
			}
			if err := tx.Create(&om).Error; err != nil {
				return fmt.Errorf("failed to create question option %q: %w", opt.Value(), err)
			}
			opt.SetID(om.ID)
		}
	}

	return nil
}

func (r *ServiceRepositoryImpl) deleteChildren(tx *gorm.DB, serviceID uint) error {
	if err := tx.Where("question_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).Model(&models.QuestionModel{}).Select("id").Where("service_id = ?", serviceID),
	).Delete(&models.QuestionOptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete question options: %w", err)
	}
	if err := tx.Where("service_id = ?", serviceID).Delete(&models.QuestionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}
	if err := tx.Where("pricing_option_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).Model(&models.PricingOptionModel{}).Select("id").Where("service_id = ?", serviceID),
	).Delete(&models.PricingOptionFeatureModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete pricing option feature links: %w", err)
	}
	if err := tx.Where("service_id = ?", serviceID).Delete(&models.PricingOptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete pricing options: %w", err)
	}
	if err := tx.Where("service_id = ?", serviceID).Delete(&models.FeatureModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete features: %w", err)
	}
	return nil
}
