package models

import "time"

// CRMCredentialModel persists the OAuth grant stored during the CRM
// marketplace install flow, one row per location.
type CRMCredentialModel struct {
	ID           uint   `gorm:"primarykey"`
	AccessToken  string `gorm:"type:text;not null"`
	RefreshToken string `gorm:"type:text"`
	ExpiresAt    time.Time
	LocationID   string `gorm:"not null;size:64;uniqueIndex"`
	CompanyID    string `gorm:"size:64"`
	UserID       string `gorm:"size:64"`
	Scope        string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CRMCredentialModel) TableName() string {
	return "crm_credentials"
}
