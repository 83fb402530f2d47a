package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceDTO struct {
	ID             uint               `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	IsActive       bool               `json:"is_active"`
	Features       []FeatureDTO       `json:"features"`
	PricingOptions []PricingOptionDTO `json:"pricing_options"`
	Questions      []QuestionDTO      `json:"questions"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type FeatureDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PricingOptionDTO struct {
	ID              uint                  `json:"id"`
	Name            string                `json:"name"`
	Discount        decimal.Decimal       `json:"discount"`
	BasePrice       decimal.Decimal       `json:"base_price"`
	DiscountedPrice decimal.Decimal       `json:"discounted_price"`
	IsActive        bool                  `json:"is_active"`
	Features        []FeatureInclusionDTO `json:"features"`
}

type FeatureInclusionDTO struct {
	FeatureName string `json:"feature_name"`
	IsIncluded  bool   `json:"is_included"`
}

type QuestionDTO struct {
	ID         uint                `json:"id"`
	Text       string              `json:"text"`
	Type       string              `json:"type"`
	UnitPrice  decimal.Decimal     `json:"unit_price"`
	IsRequired bool                `json:"is_required"`
	Order      int                 `json:"order"`
	IsActive   bool                `json:"is_active"`
	Options    []QuestionOptionDTO `json:"options"`
}

type QuestionOptionDTO struct {
	ID              uint            `json:"id"`
	Value           string          `json:"value"`
	Label           string          `json:"label"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
	Order           int             `json:"order"`
}

// ServiceInput is the nested write shape shared by create and update: the
// catalog editor always submits the full tree.
type ServiceInput struct {
	Name           string               `json:"name" binding:"required"`
	Description    string               `json:"description"`
	Features       []FeatureInput       `json:"features" binding:"dive"`
	PricingOptions []PricingOptionInput `json:"pricing_options" binding:"dive"`
	Questions      []QuestionInput      `json:"questions" binding:"dive"`
}

type FeatureInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type PricingOptionInput struct {
	Name      string                  `json:"name" binding:"required"`
	Discount  decimal.Decimal         `json:"discount"`
	BasePrice decimal.Decimal         `json:"base_price"`
	Features  []FeatureInclusionInput `json:"features" binding:"dive"`
}

type FeatureInclusionInput struct {
	FeatureName string `json:"feature_name" binding:"required"`
	IsIncluded  bool   `json:"is_included"`
}

type QuestionInput struct {
	Text       string                `json:"text" binding:"required"`
	Type       string                `json:"type" binding:"required"`
	UnitPrice  decimal.Decimal       `json:"unit_price"`
	IsRequired bool                  `json:"is_required"`
	Order      int                   `json:"order"`
	Options    []QuestionOptionInput `json:"options" binding:"dive"`
}

type QuestionOptionInput struct {
	Value           string          `json:"value" binding:"required"`
	Label           string          `json:"label"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
	Order           int             `json:"order"`
}
