package models

import "time"

// FeatureModel persists one service feature. The (service_id, name) pair is
// unique; pricing option inclusions reference features by row id within the
// same service.
type FeatureModel struct {
	ID          uint   `gorm:"primarykey"`
	ServiceID   uint   `gorm:"not null;uniqueIndex:idx_feature_service_name"`
	Name        string `gorm:"not null;size:255;uniqueIndex:idx_feature_service_name"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (FeatureModel) TableName() string {
	return "features"
}
