package purchase

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/errors"
)

// QuestionAnswer is the frozen record of one answered question: the question
// text, type and unit price copied at purchase time plus the answer payload.
// The shape of the payload depends on the question type, so answers are only
// built through the per-type constructors below.
type QuestionAnswer struct {
	id           uint
	questionName string
	questionType catalog.QuestionType
	unitPrice    decimal.Decimal
	boolAnswer   bool
	options      []*OptionAnswer
}

// OptionAnswer is one selected option of a choice-type answer. Qty carries
// the client-supplied quantity for quantity-bearing selections and stays nil
// for extra_choice answers.
type OptionAnswer struct {
	id    uint
	value string
	label string
	qty   *string
}

func (oa *OptionAnswer) ID() uint      { return oa.id }
func (oa *OptionAnswer) Value() string { return oa.value }
func (oa *OptionAnswer) Label() string { return oa.label }
func (oa *OptionAnswer) Qty() *string  { return oa.qty }

// SetID assigns the persistence identity after insert.
func (oa *OptionAnswer) SetID(id uint) { oa.id = id }

// ReconstructOptionAnswer rebuilds an option answer from persistence.
func ReconstructOptionAnswer(id uint, value, label string, qty *string) *OptionAnswer {
	return &OptionAnswer{id: id, value: value, label: label, qty: qty}
}

func (qa *QuestionAnswer) ID() uint             { return qa.id }
func (qa *QuestionAnswer) QuestionName() string { return qa.questionName }
func (qa *QuestionAnswer) QuestionType() catalog.QuestionType {
	return qa.questionType
}
func (qa *QuestionAnswer) UnitPrice() decimal.Decimal { return qa.unitPrice }
func (qa *QuestionAnswer) BoolAnswer() bool           { return qa.boolAnswer }

func (qa *QuestionAnswer) Options() []*OptionAnswer {
	out := make([]*OptionAnswer, len(qa.options))
	copy(out, qa.options)
	return out
}

// SetID assigns the persistence identity after insert.
func (qa *QuestionAnswer) SetID(id uint) { qa.id = id }

// ReconstructQuestionAnswer rebuilds an answer from persistence.
func ReconstructQuestionAnswer(
	id uint,
	questionName string,
	questionType catalog.QuestionType,
	unitPrice decimal.Decimal,
	boolAnswer bool,
	options []*OptionAnswer,
) *QuestionAnswer {
	return &QuestionAnswer{
		id:           id,
		questionName: questionName,
		questionType: questionType,
		unitPrice:    unitPrice,
		boolAnswer:   boolAnswer,
		options:      options,
	}
}

func newAnswerShell(q *catalog.Question) *QuestionAnswer {
	return &QuestionAnswer{
		questionName: q.Text(),
		questionType: q.Type(),
		unitPrice:    q.UnitPrice(),
	}
}

// NewBooleanAnswer freezes a yes/no answer. No option rows are created.
func NewBooleanAnswer(q *catalog.Question, answer bool) *QuestionAnswer {
	qa := newAnswerShell(q)
	qa.boolAnswer = answer
	return qa
}

// NewExtraChoiceAnswer freezes an extra_choice answer: the boolean flag plus
// one option row per selected label, without quantities. Labels resolve
// case-insensitively against the live question's options.
func NewExtraChoiceAnswer(q *catalog.Question, answer bool, selectedLabels []string) (*QuestionAnswer, error) {
	qa := newAnswerShell(q)
	qa.boolAnswer = answer
	for _, label := range selectedLabels {
		opt := q.OptionByLabel(label)
		if opt == nil {
			return nil, errors.NewValidationError(
				"question option not found",
				fmt.Sprintf("option %q is not valid for question %q", label, q.Text()),
			)
		}
		qa.options = append(qa.options, &OptionAnswer{
			value: opt.Value(),
			label: opt.Label(),
		})
	}
	return qa, nil
}

// NewChoiceAnswer freezes a choice/multiple_choice answer: one option row
// per selected label with the client-supplied quantity attached.
func NewChoiceAnswer(q *catalog.Question, selections map[string]string) (*QuestionAnswer, error) {
	qa := newAnswerShell(q)
	for _, label := range sortedKeys(selections) {
		opt := q.OptionByLabel(label)
		if opt == nil {
			return nil, errors.NewValidationError(
				"question option not found",
				fmt.Sprintf("option %q is not valid for question %q", label, q.Text()),
			)
		}
		qty := selections[label]
		qa.options = append(qa.options, &OptionAnswer{
			value: opt.Value(),
			label: opt.Label(),
			qty:   &qty,
		})
	}
	return qa, nil
}

// NewPlainAnswer freezes an answer for questions without options or boolean
// payload (text, number, date, email). Only the question identity and unit
// price are recorded.
func NewPlainAnswer(q *catalog.Question) *QuestionAnswer {
	return newAnswerShell(q)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
