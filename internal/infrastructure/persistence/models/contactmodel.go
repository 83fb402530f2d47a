package models

import (
	"time"

	"gorm.io/datatypes"
)

// ContactModel mirrors one CRM contact. ContactID is the external key the
// webhook sync upserts on.
type ContactModel struct {
	ID           uint   `gorm:"primarykey"`
	ContactID    string `gorm:"not null;size:64;uniqueIndex"`
	FirstName    string `gorm:"size:255"`
	LastName     string `gorm:"size:255"`
	Phone        string `gorm:"size:50"`
	Email        string `gorm:"size:255"`
	DND          bool   `gorm:"not null;default:false"`
	Country      string `gorm:"size:100"`
	DateAdded    *time.Time
	Tags         datatypes.JSON
	CustomFields datatypes.JSON
	LocationID   string `gorm:"size:64"`
	Timestamp    *time.Time

	Addresses []AddressModel `gorm:"foreignKey:ContactID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ContactModel) TableName() string {
	return "contacts"
}

// AddressModel persists one named location of a contact. ContactID is the
// local contact row id; ExternalID keeps the CRM's own address identity.
type AddressModel struct {
	ID             uint   `gorm:"primarykey"`
	ContactID      uint   `gorm:"not null;index"`
	ExternalID     string `gorm:"size:64"`
	Name           string `gorm:"size:255"`
	DisplayOrder   int    `gorm:"not null;default:0"`
	StreetAddress  string `gorm:"size:255"`
	City           string `gorm:"size:100"`
	State          string `gorm:"size:100"`
	PostalCode     string `gorm:"size:20"`
	GateCode       string `gorm:"size:50"`
	NumberOfFloors *int
	PropertySqft   *int
	PropertyType   string `gorm:"size:20"`
}

func (AddressModel) TableName() string {
	return "addresses"
}
