package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingOptionModel persists one plan of a service.
type PricingOptionModel struct {
	ID        uint            `gorm:"primarykey"`
	ServiceID uint            `gorm:"not null;index"`
	Name      string          `gorm:"not null;size:255"`
	Discount  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	BasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	IsActive  bool            `gorm:"not null;default:true"`
	CreatedAt time.Time

	Features []PricingOptionFeatureModel `gorm:"foreignKey:PricingOptionID;constraint:OnDelete:CASCADE"`
}

func (PricingOptionModel) TableName() string {
	return "pricing_options"
}

// PricingOptionFeatureModel is the junction between a pricing option and a
// feature of the same service, with the per-plan inclusion flag.
type PricingOptionFeatureModel struct {
	ID              uint `gorm:"primarykey"`
	PricingOptionID uint `gorm:"not null;uniqueIndex:idx_pricing_option_feature"`
	FeatureID       uint `gorm:"not null;uniqueIndex:idx_pricing_option_feature"`
	IsIncluded      bool `gorm:"not null;default:false"`
}

func (PricingOptionFeatureModel) TableName() string {
	return "pricing_option_features"
}
