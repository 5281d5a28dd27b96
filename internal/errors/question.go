package errors

import (
	"errors"
	"fmt"
)

// MalformedQuestionError reports a question definition that cannot be graded
// as authored, e.g. a multiple choice question whose correct answer is not
// one of its options. Grading fails fast on it so the authoring layer can be
// notified instead of silently mis-scoring the submission.
type MalformedQuestionError struct {
	QuestionID uint   `json:"question_id"`
	Reason     string `json:"reason"`
}

func (mqe *MalformedQuestionError) Error() string {
	return fmt.Sprintf("malformed question %d: %s", mqe.QuestionID, mqe.Reason)
}

func NewMalformedQuestionError(questionID uint, reason string) *MalformedQuestionError {
	return &MalformedQuestionError{
		QuestionID: questionID,
		Reason:     reason,
	}
}

// IsMalformedQuestion checks if error represents a malformed question definition
func IsMalformedQuestion(err error) bool {
	var mqe *MalformedQuestionError
	return errors.As(err, &mqe)
}
