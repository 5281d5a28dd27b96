package validator

import (
	"testing"

	apperrors "github.com/SAP-F-2025/grading-engine/internal/errors"
	"github.com/SAP-F-2025/grading-engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionValidator_ValidateQuestion(t *testing.T) {
	v := NewQuestionValidator()

	tests := []struct {
		name     string
		question models.Question
		wantErr  bool
	}{
		{
			name:     "valid multiple choice",
			question: models.Question{ID: 1, Type: models.MultipleChoice, Options: []string{"a", "b"}, CorrectAnswer: "a", Marks: 5},
		},
		{
			name:     "correct answer not in options",
			question: models.Question{ID: 2, Type: models.MultipleChoice, Options: []string{"a", "b"}, CorrectAnswer: "c", Marks: 5},
			wantErr:  true,
		},
		{
			name:     "multiple choice without options",
			question: models.Question{ID: 3, Type: models.MultipleChoice, CorrectAnswer: "a", Marks: 5},
			wantErr:  true,
		},
		{
			name:     "short answer needs no options",
			question: models.Question{ID: 4, Type: models.ShortAnswer, CorrectAnswer: "paris", Marks: 5},
		},
		{
			name:     "negative marks",
			question: models.Question{ID: 5, Type: models.TrueFalse, CorrectAnswer: "true", Marks: -1},
			wantErr:  true,
		},
		{
			name:     "unknown type",
			question: models.Question{ID: 6, Type: "matching", CorrectAnswer: "x", Marks: 1},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateQuestion(&tt.question)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsMalformedQuestion(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuestionValidator_ValidateQuestionBatch(t *testing.T) {
	v := NewQuestionValidator()

	questions := []models.Question{
		{ID: 1, Type: models.ShortAnswer, CorrectAnswer: "a", Marks: 1},
		{ID: 1, Type: models.ShortAnswer, CorrectAnswer: "b", Marks: 1},
	}

	err := v.ValidateQuestionBatch(questions)
	require.Error(t, err)
	assert.True(t, apperrors.IsMalformedQuestion(err))
}

func TestValidator_QuestionTypeTag(t *testing.T) {
	v := New()

	valid := models.Question{ID: 1, Type: models.LongAnswer, CorrectAnswer: "some reference text", Marks: 1}
	assert.NoError(t, v.ValidateStruct(&valid))

	invalid := models.Question{ID: 1, Type: "essay", CorrectAnswer: "x", Marks: 1}
	assert.Error(t, v.ValidateStruct(&invalid))
}
