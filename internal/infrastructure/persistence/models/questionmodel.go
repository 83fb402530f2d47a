package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuestionModel persists one questionnaire entry of a service.
type QuestionModel struct {
	ID           uint            `gorm:"primarykey"`
	ServiceID    uint            `gorm:"not null;index"`
	Text         string          `gorm:"not null;size:500"`
	Type         string          `gorm:"not null;size:20"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	IsRequired   bool            `gorm:"not null;default:false"`
	DisplayOrder int             `gorm:"not null;default:0"`
	IsActive     bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time

	Options []QuestionOptionModel `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// QuestionOptionModel persists one selectable option of an option-bearing
// question.
type QuestionOptionModel struct {
	ID              uint            `gorm:"primarykey"`
	QuestionID      uint            `gorm:"not null;index"`
	Value           string          `gorm:"not null;size:255"`
	Label           string          `gorm:"not null;size:255"`
	AdditionalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DisplayOrder    int             `gorm:"not null;default:0"`
	IsActive        bool            `gorm:"not null;default:true"`
}

func (QuestionOptionModel) TableName() string {
	return "question_options"
}
