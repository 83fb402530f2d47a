package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"quotecraft/internal/domain/contact"
	"quotecraft/internal/infrastructure/persistence/mappers"
	"quotecraft/internal/infrastructure/persistence/models"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ContactMapper
	logger logger.Interface
}

func NewContactRepository(gdb *gorm.DB, logger logger.Interface) contact.Repository {
	return &ContactRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewContactMapper(),
		logger: logger,
	}
}

// Upsert creates or updates the mirror row keyed by the external contact id.
func (r *ContactRepositoryImpl) Upsert(ctx context.Context, c *contact.Contact) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}

	var existing models.ContactModel
	err = tx.Where("contact_id = ?", c.ContactID).First(&existing).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		if err := tx.Create(model).Error; err != nil {
			r.logger.Errorw("failed to create contact", "error", err, "contact_id", c.ContactID)
			return fmt.Errorf("failed to create contact: %w", err)
		}
		c.ID = model.ID
	case err != nil:
		r.logger.Errorw("failed to look up contact", "error", err, "contact_id", c.ContactID)
		return fmt.Errorf("failed to look up contact: %w", err)
	default:
		model.ID = existing.ID
		if err := tx.Model(&models.ContactModel{}).Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"first_name":    model.FirstName,
				"last_name":     model.LastName,
				"phone":         model.Phone,
				"email":         model.Email,
				"dnd":           model.DND,
				"country":       model.Country,
				"date_added":    model.DateAdded,
				"tags":          model.Tags,
				"custom_fields": model.CustomFields,
				"location_id":   model.LocationID,
				"timestamp":     model.Timestamp,
			}).Error; err != nil {
			r.logger.Errorw("failed to update contact", "error", err, "contact_id", c.ContactID)
			return fmt.Errorf("failed to update contact: %w", err)
		}
		c.ID = existing.ID
	}

	return nil
}

func (r *ContactRepositoryImpl) GetByContactID(ctx context.Context, contactID string) (*contact.Contact, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var model models.ContactModel
	if err := tx.Preload("Addresses", func(tx *gorm.DB) *gorm.DB { return tx.Order("display_order") }).
		Where("contact_id = ?", contactID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("contact not found")
		}
		r.logger.Errorw("failed to get contact", "error", err, "contact_id", contactID)
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// DeleteByContactID removes a contact and its addresses. Unknown contacts
// delete to zero rows without an error.
func (r *ContactRepositoryImpl) DeleteByContactID(ctx context.Context, contactID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		var model models.ContactModel
		err := tx.Select("id").Where("contact_id = ?", contactID).First(&model).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up contact: %w", err)
		}
		if err := tx.Where("contact_id = ?", model.ID).Delete(&models.AddressModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete contact addresses: %w", err)
		}
		if err := tx.Delete(&models.ContactModel{}, model.ID).Error; err != nil {
			r.logger.Errorw("failed to delete contact", "error", err, "contact_id", contactID)
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		return nil
	})
}

// Search matches every keyword against any of first name, last name, email,
// phone or country; the newest contacts come first.
func (r *ContactRepositoryImpl) Search(ctx context.Context, q contact.SearchQuery) ([]*contact.Contact, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ContactModel{})

	for _, keyword := range q.Keywords {
		pattern := "%" + strings.TrimSpace(keyword) + "%"
		tx = tx.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone LIKE ? OR country LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count contacts", "error", err)
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	var contactModels []*models.ContactModel
	offset := (q.Page - 1) * q.PageSize
	if err := tx.Preload("Addresses").
		Order("date_added DESC").
		Offset(offset).Limit(q.PageSize).
		Find(&contactModels).Error; err != nil {
		r.logger.Errorw("failed to search contacts", "error", err)
		return nil, 0, fmt.Errorf("failed to search contacts: %w", err)
	}

	entities, err := r.mapper.ToEntities(contactModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ReplaceAddresses swaps a contact's stored address set wholesale.
func (r *ContactRepositoryImpl) ReplaceAddresses(ctx context.Context, contactID string, addresses []contact.Address) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		var model models.ContactModel
		if err := tx.Select("id").Where("contact_id = ?", contactID).First(&model).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFoundError("contact not found")
			}
			return fmt.Errorf("failed to look up contact: %w", err)
		}

		if err := tx.Where("contact_id = ?", model.ID).Delete(&models.AddressModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete contact addresses: %w", err)
		}

		for _, a := range addresses {
			am := r.mapper.AddressToModel(model.ID, a)
			am.ID = 0
			if err := tx.Create(&am).Error; err != nil {
				return fmt.Errorf("failed to create contact address: %w", err)
			}
		}
		return nil
	})
}
