package models

import "github.com/shopspring/decimal"

// PurchasedServiceModel persists one frozen service snapshot of a purchase.
// Name and description are copied values; there is deliberately no foreign
// key to the services table.
type PurchasedServiceModel struct {
	ID             uint   `gorm:"primarykey"`
	PurchaseID     uint   `gorm:"not null;index"`
	ServiceName    string `gorm:"not null;size:255"`
	Description    string `gorm:"type:text"`
	SelectedPlanID *uint  `gorm:"index"`

	Plans    []PlanSnapshotModel    `gorm:"foreignKey:PurchasedServiceID;constraint:OnDelete:CASCADE"`
	Features []FeatureSnapshotModel `gorm:"foreignKey:PurchasedServiceID;constraint:OnDelete:CASCADE"`
	Answers  []QuestionAnswerModel  `gorm:"foreignKey:PurchasedServiceID;constraint:OnDelete:CASCADE"`
}

func (PurchasedServiceModel) TableName() string {
	return "purchased_services"
}

// PlanSnapshotModel persists one frozen candidate plan.
type PlanSnapshotModel struct {
	ID                 uint            `gorm:"primarykey"`
	PurchasedServiceID uint            `gorm:"not null;index"`
	Name               string          `gorm:"not null;size:255"`
	Discount           decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`

	Features []PlanFeatureModel `gorm:"foreignKey:PlanSnapshotID;constraint:OnDelete:CASCADE"`
}

func (PlanSnapshotModel) TableName() string {
	return "plan_snapshots"
}

// FeatureSnapshotModel persists one frozen feature of a purchased service.
type FeatureSnapshotModel struct {
	ID                 uint   `gorm:"primarykey"`
	PurchasedServiceID uint   `gorm:"not null;index"`
	Name               string `gorm:"not null;size:255"`
	Description        string `gorm:"type:text"`
}

func (FeatureSnapshotModel) TableName() string {
	return "feature_snapshots"
}

// PlanFeatureModel joins a candidate plan to a feature snapshot of the same
// purchased service with its own inclusion flag.
type PlanFeatureModel struct {
	ID                uint `gorm:"primarykey"`
	PlanSnapshotID    uint `gorm:"not null;index"`
	FeatureSnapshotID uint `gorm:"not null;index"`
	IsIncluded        bool `gorm:"not null;default:false"`
}

func (PlanFeatureModel) TableName() string {
	return "plan_features"
}

// QuestionAnswerModel persists one frozen questionnaire answer.
type QuestionAnswerModel struct {
	ID                 uint            `gorm:"primarykey"`
	PurchasedServiceID uint            `gorm:"not null;index"`
	QuestionName       string          `gorm:"not null;size:500"`
	QuestionType       string          `gorm:"not null;size:20"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Answer             bool            `gorm:"not null;default:false"`

	Options []OptionAnswerModel `gorm:"foreignKey:QuestionAnswerID;constraint:OnDelete:CASCADE"`
}

func (QuestionAnswerModel) TableName() string {
	return "question_answers"
}

// OptionAnswerModel persists one selected option of a choice-type answer.
type OptionAnswerModel struct {
	ID               uint    `gorm:"primarykey"`
	QuestionAnswerID uint    `gorm:"not null;index"`
	Value            string  `gorm:"not null;size:255"`
	Label            string  `gorm:"not null;size:255"`
	Qty              *string `gorm:"size:50"`
}

func (OptionAnswerModel) TableName() string {
	return "option_answers"
}
