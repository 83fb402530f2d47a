package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Question is one questionnaire entry of a service. Option-bearing question
// types own an ordered list of QuestionOption values.
type Question struct {
	id         uint
	text       string
	qType      QuestionType
	unitPrice  decimal.Decimal
	isRequired bool
	order      int
	isActive   bool
	createdAt  time.Time
	options    []*QuestionOption
}

// NewQuestion creates a question with a validated type and non-negative
// unit price.
func NewQuestion(text string, qType QuestionType, unitPrice decimal.Decimal, isRequired bool, order int) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("question text is required")
	}
	if !validQuestionTypes[qType] {
		return nil, fmt.Errorf("invalid question type: %s", qType)
	}
	if unitPrice.LessThan(decimalZero) {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", unitPrice)
	}
	return &Question{
		text:       text,
		qType:      qType,
		unitPrice:  unitPrice,
		isRequired: isRequired,
		order:      order,
		isActive:   true,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructQuestion rebuilds a question from persistence.
func ReconstructQuestion(
	id uint,
	text string,
	qType QuestionType,
	unitPrice decimal.Decimal,
	isRequired bool,
	order int,
	isActive bool,
	createdAt time.Time,
	options []*QuestionOption,
) *Question {
	return &Question{
		id:         id,
		text:       text,
		qType:      qType,
		unitPrice:  unitPrice,
		isRequired: isRequired,
		order:      order,
		isActive:   isActive,
		createdAt:  createdAt,
		options:    options,
	}
}

func (q *Question) ID() uint                   { return q.id }
func (q *Question) Text() string               { return q.text }
func (q *Question) Type() QuestionType         { return q.qType }
func (q *Question) UnitPrice() decimal.Decimal { return q.unitPrice }
func (q *Question) IsRequired() bool           { return q.isRequired }
func (q *Question) Order() int                 { return q.order }
func (q *Question) IsActive() bool             { return q.isActive }
func (q *Question) CreatedAt() time.Time       { return q.createdAt }

// Options returns the ordered option list.
func (q *Question) Options() []*QuestionOption {
	out := make([]*QuestionOption, len(q.options))
	copy(out, q.options)
	return out
}

// AddOption attaches an option to an option-bearing question. The label
// defaults to the value when empty, matching how option answers are keyed.
func (q *Question) AddOption(value, label string, additionalPrice decimal.Decimal, order int) (*QuestionOption, error) {
	if !q.qType.HasOptions() {
		return nil, fmt.Errorf("options can only be added to choice, multiple_choice or extra_choice questions")
	}
	opt, err := NewQuestionOption(value, label, additionalPrice, order)
	if err != nil {
		return nil, err
	}
	q.options = append(q.options, opt)
	return opt, nil
}

// OptionByLabel resolves an option by its label, case-insensitively. Clients
// submit answers keyed by label, and casing is not guaranteed to survive the
// round trip through the quote frontend.
func (q *Question) OptionByLabel(label string) *QuestionOption {
	for _, opt := range q.options {
		if strings.EqualFold(opt.Label(), label) {
			return opt
		}
	}
	return nil
}

// SetID assigns the persistence identity after insert.
func (q *Question) SetID(id uint) {
	q.id = id
}
