package dto

import (
	"time"

	"github.com/shopspring/decimal"

	contactdto "quotecraft/internal/application/contact/dto"
)

type PurchaseDTO struct {
	ID             uint                  `json:"id"`
	ContactID      string                `json:"contact_id"`
	AddressID      *uint                 `json:"address_id,omitempty"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	IsSubmitted    bool                  `json:"is_submitted"`
	Signature      *string               `json:"signature,omitempty"`
	Services       []PurchasedServiceDTO `json:"services"`
	CustomProducts []CustomProductDTO    `json:"custom_products"`
	CreatedAt      time.Time             `json:"created_at"`
}

// PurchaseDetailDTO is the review view: the purchase tree plus the contact
// it belongs to and the global price floor the frontend displays against.
type PurchaseDetailDTO struct {
	PurchaseDTO
	Contact      *contactdto.ContactDTO `json:"contact,omitempty"`
	MinimumPrice decimal.Decimal        `json:"minimum_price"`
}

type PurchasedServiceDTO struct {
	ID           uint                 `json:"id"`
	ServiceName  string               `json:"service_name"`
	Description  string               `json:"description"`
	Plans        []PlanSnapshotDTO    `json:"plans"`
	Features     []FeatureSnapshotDTO `json:"features"`
	SelectedPlan *PlanSnapshotDTO     `json:"selected_plan,omitempty"`
	Answers      []QuestionAnswerDTO  `json:"answers"`
}

type PlanSnapshotDTO struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	Discount decimal.Decimal  `json:"discount"`
	Features []PlanFeatureDTO `json:"features"`
}

type PlanFeatureDTO struct {
	ID         uint               `json:"id"`
	Feature    FeatureSnapshotDTO `json:"feature"`
	IsIncluded bool               `json:"is_included"`
}

type FeatureSnapshotDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type QuestionAnswerDTO struct {
	ID           uint              `json:"id"`
	QuestionName string            `json:"question_name"`
	QuestionType string            `json:"question_type"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	Answer       bool              `json:"answer"`
	Options      []OptionAnswerDTO `json:"options"`
}

type OptionAnswerDTO struct {
	ID    uint    `json:"id"`
	Value string  `json:"value"`
	Label string  `json:"label"`
	Qty   *string `json:"qty,omitempty"`
}

type CustomProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
