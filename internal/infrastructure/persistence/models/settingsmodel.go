package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GlobalSettingsModel persists the settings singleton. The repository always
// writes primary key 1, so exactly one row can exist.
type GlobalSettingsModel struct {
	ID           uint            `gorm:"primarykey"`
	MinimumPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	UpdatedAt    time.Time
}

func (GlobalSettingsModel) TableName() string {
	return "global_settings"
}
