package models

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookLogModel stores every inbound CRM payload verbatim for replay.
type WebhookLogModel struct {
	ID        uint   `gorm:"primarykey"`
	EventType string `gorm:"size:50;index"`
	Payload   datatypes.JSON
	CreatedAt time.Time
}

func (WebhookLogModel) TableName() string {
	return "webhook_logs"
}
