package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// QuestionOption is one selectable answer of a choice-type question, with an
// optional additional price applied when selected.
type QuestionOption struct {
	id              uint
	value           string
	label           string
	additionalPrice decimal.Decimal
	order           int
	isActive        bool
}

// NewQuestionOption creates an option. An empty label falls back to the
// value so every option stays addressable by label.
func NewQuestionOption(value, label string, additionalPrice decimal.Decimal, order int) (*QuestionOption, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("question option value is required")
	}
	if additionalPrice.LessThan(decimalZero) {
		return nil, fmt.Errorf("additional price cannot be negative, got %s", additionalPrice)
	}
	if strings.TrimSpace(label) == "" {
		label = value
	}
	return &QuestionOption{
		value:           value,
		label:           label,
		additionalPrice: additionalPrice,
		order:           order,
		isActive:        true,
	}, nil
}

// ReconstructQuestionOption rebuilds an option from persistence.
func ReconstructQuestionOption(id uint, value, label string, additionalPrice decimal.Decimal, order int, isActive bool) *QuestionOption {
	return &QuestionOption{
		id:              id,
		value:           value,
		label:           label,
		additionalPrice: additionalPrice,
		order:           order,
		isActive:        isActive,
	}
}

func (o *QuestionOption) ID() uint      { return o.id }
func (o *QuestionOption) Value() string { return o.value }
func (o *QuestionOption) Label() string { return o.label }
func (o *QuestionOption) AdditionalPrice() decimal.Decimal {
	return o.additionalPrice
}
func (o *QuestionOption) Order() int     { return o.order }
func (o *QuestionOption) IsActive() bool { return o.isActive }

// SetID assigns the persistence identity after insert.
func (o *QuestionOption) SetID(id uint) {
	o.id = id
}
