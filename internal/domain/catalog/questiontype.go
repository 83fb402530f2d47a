package catalog

import "fmt"

// QuestionType is the closed set of question kinds a service questionnaire
// can carry. The type decides how an answer is captured and priced.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeNumber         QuestionType = "number"
	QuestionTypeBoolean        QuestionType = "boolean"
	QuestionTypeChoice         QuestionType = "choice"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeDate           QuestionType = "date"
	QuestionTypeEmail          QuestionType = "email"
	QuestionTypeExtraChoice    QuestionType = "extra_choice"
)

var validQuestionTypes = map[QuestionType]bool{
	QuestionTypeText:           true,
	QuestionTypeNumber:         true,
	QuestionTypeBoolean:        true,
	QuestionTypeChoice:         true,
	QuestionTypeMultipleChoice: true,
	QuestionTypeDate:           true,
	QuestionTypeEmail:          true,
	QuestionTypeExtraChoice:    true,
}

// ParseQuestionType validates and converts a raw string into a QuestionType.
func ParseQuestionType(raw string) (QuestionType, error) {
	qt := QuestionType(raw)
	if !validQuestionTypes[qt] {
		return "", fmt.Errorf("invalid question type: %s", raw)
	}
	return qt, nil
}

func (t QuestionType) String() string {
	return string(t)
}

// HasOptions reports whether questions of this type carry selectable options.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionTypeChoice, QuestionTypeMultipleChoice, QuestionTypeExtraChoice:
		return true
	}
	return false
}
