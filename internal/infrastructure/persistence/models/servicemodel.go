package models

import "time"

// ServiceModel persists the catalog service row. Children cascade on
// delete; purchase snapshots carry no foreign key back here, so deleting a
// service never reaches a quote.
type ServiceModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Features       []FeatureModel       `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	PricingOptions []PricingOptionModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Questions      []QuestionModel      `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func (ServiceModel) TableName() string {
	return "services"
}
