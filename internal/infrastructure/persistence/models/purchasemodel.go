package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseModel persists the quote root. ContactID is the external CRM
// contact key, not a local foreign key; a purchase outlives CRM deletes.
type PurchaseModel struct {
	ID          uint            `gorm:"primarykey"`
	ContactID   string          `gorm:"not null;size:64;index"`
	AddressID   *uint           `gorm:"index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	IsSubmitted bool            `gorm:"not null;default:false"`
	Signature   *string         `gorm:"size:255"`
	CreatedAt   time.Time

	Services       []PurchasedServiceModel `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
	CustomProducts []CustomProductModel    `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

// CustomProductModel persists an ad-hoc quote line item.
type CustomProductModel struct {
	ID          uint            `gorm:"primarykey"`
	PurchaseID  uint            `gorm:"not null;index"`
	Name        string          `gorm:"not null;size:255"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

func (CustomProductModel) TableName() string {
	return "custom_products"
}
