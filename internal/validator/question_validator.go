package validator

import (
	"fmt"

	apperrors "github.com/SAP-F-2025/grading-engine/internal/errors"
	"github.com/SAP-F-2025/grading-engine/internal/models"
)

// QuestionValidator handles grading-time validation of question definitions
type QuestionValidator struct{}

// NewQuestionValidator creates a new question validator
func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateQuestion checks the invariants a question must satisfy to be
// gradeable. A violation is an authoring bug, surfaced as
// MalformedQuestionError rather than silently mis-graded.
func (v *QuestionValidator) ValidateQuestion(question *models.Question) error {
	if question.Marks < 0 {
		return apperrors.NewMalformedQuestionError(question.ID, "marks must be non-negative")
	}

	switch question.Type {
	case models.MultipleChoice:
		if len(question.Options) == 0 {
			return apperrors.NewMalformedQuestionError(question.ID, "multiple choice question has no options")
		}
		if !containsString(question.Options, question.CorrectAnswer) {
			return apperrors.NewMalformedQuestionError(question.ID, "correct answer is not one of the options")
		}
	case models.TrueFalse, models.ShortAnswer, models.LongAnswer:
		// no type-specific invariants
	default:
		return apperrors.NewMalformedQuestionError(question.ID, fmt.Sprintf("unsupported question type: %s", question.Type))
	}

	return nil
}

// ValidateQuestionBatch validates every question of a submission, failing on
// the first malformed one.
func (v *QuestionValidator) ValidateQuestionBatch(questions []models.Question) error {
	seen := make(map[uint]struct{}, len(questions))
	for i := range questions {
		q := &questions[i]
		if _, dup := seen[q.ID]; dup {
			return apperrors.NewMalformedQuestionError(q.ID, "duplicate question id")
		}
		seen[q.ID] = struct{}{}

		if err := v.ValidateQuestion(q); err != nil {
			return err
		}
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
