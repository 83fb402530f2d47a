package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionType(t *testing.T) {
	for _, raw := range []string{"text", "number", "boolean", "choice", "multiple_choice", "date", "email", "extra_choice"} {
		qt, err := ParseQuestionType(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, qt.String())
	}

	_, err := ParseQuestionType("dropdown")
	assert.Error(t, err)
}

func TestQuestionType_HasOptions(t *testing.T) {
	assert.True(t, QuestionTypeChoice.HasOptions())
	assert.True(t, QuestionTypeMultipleChoice.HasOptions())
	assert.True(t, QuestionTypeExtraChoice.HasOptions())
	assert.False(t, QuestionTypeBoolean.HasOptions())
	assert.False(t, QuestionTypeText.HasOptions())
	assert.False(t, QuestionTypeDate.HasOptions())
}

func TestQuestion_AddOption_NonChoiceType(t *testing.T) {
	q, err := NewQuestion("Pets at home?", QuestionTypeBoolean, dec("0"), false, 0)
	require.NoError(t, err)

	_, err = q.AddOption("yes", "Yes", dec("0"), 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "choice")
}

func TestQuestion_AddOption_LabelDefaultsToValue(t *testing.T) {
	q, err := NewQuestion("Window count?", QuestionTypeChoice, dec("2.50"), true, 1)
	require.NoError(t, err)

	opt, err := q.AddOption("10-20", "", dec("5"), 0)
	require.NoError(t, err)
	assert.Equal(t, "10-20", opt.Label())
	assert.Equal(t, "10-20", opt.Value())
}

func TestQuestion_OptionByLabel_CaseInsensitive(t *testing.T) {
	q, err := NewQuestion("Add-ons?", QuestionTypeExtraChoice, dec("0"), false, 0)
	require.NoError(t, err)
	_, err = q.AddOption("screens", "Screen Cleaning", dec("15"), 0)
	require.NoError(t, err)

	assert.NotNil(t, q.OptionByLabel("screen cleaning"))
	assert.NotNil(t, q.OptionByLabel("SCREEN CLEANING"))
	assert.Nil(t, q.OptionByLabel("gutter cleaning"))
}

func TestNewQuestion_InvalidInput(t *testing.T) {
	_, err := NewQuestion("", QuestionTypeText, dec("0"), false, 0)
	assert.Error(t, err)

	_, err = NewQuestion("Floors?", QuestionType("slider"), dec("0"), false, 0)
	assert.Error(t, err)

	_, err = NewQuestion("Floors?", QuestionTypeNumber, dec("-1"), false, 0)
	assert.Error(t, err)
}
