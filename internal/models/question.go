package models

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
	LongAnswer     QuestionType = "long_answer"
)

// Question is the grading-time view of an authored question. Options is
// populated only for multiple choice; CorrectAnswer must then equal one of
// the options.
type Question struct {
	ID            uint         `json:"id" validate:"required"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type" validate:"required,question_type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer" validate:"required"`
	Marks         int          `json:"marks" validate:"min=0"`
}

// SubmittedAnswer carries one student answer, matched to a question by ID.
// An empty answer is a valid "unanswered" state, not an error.
type SubmittedAnswer struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

// GradeSubmissionRequest is the full input for grading one submission.
// SubmittedAnswers with no matching question are ignored; questions with no
// matching answer are graded as unanswered.
type GradeSubmissionRequest struct {
	AssignmentTotalMarks int               `json:"assignment_total_marks" validate:"required,min=1"`
	Questions            []Question        `json:"questions" validate:"dive"`
	SubmittedAnswers     []SubmittedAnswer `json:"submitted_answers" validate:"dive"`
}
