package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	contactuc "quotecraft/internal/application/contact/usecases"
	"quotecraft/internal/infrastructure/persistence/models"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/logger"
)

type WebhookLogRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewWebhookLogRepository(gdb *gorm.DB, logger logger.Interface) contactuc.WebhookLogStore {
	return &WebhookLogRepositoryImpl{db: gdb, logger: logger}
}

// Record stores the raw payload verbatim alongside its event type.
func (r *WebhookLogRepositoryImpl) Record(ctx context.Context, eventType string, payload []byte) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := models.WebhookLogModel{
		EventType: eventType,
		Payload:   payload,
	}
	if err := tx.Create(&model).Error; err != nil {
		r.logger.Errorw("failed to record webhook payload", "error", err, "event_type", eventType)
		return fmt.Errorf("failed to record webhook payload: %w", err)
	}
	return nil
}
