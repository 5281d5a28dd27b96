package models

// QuestionResult is the per-question grading outcome.
type QuestionResult struct {
	QuestionID   uint `json:"question_id"`
	IsCorrect    bool `json:"is_correct"`
	MarksAwarded int  `json:"marks_awarded"`
	MaxMarks     int  `json:"max_marks"`
}

// GradedResult aggregates one submission.
//
// EarnedMarks and TotalMarks are sums over the graded questions; Percentage
// is rounded to a whole number; ScaledScore re-expresses the percentage
// against the assignment's configured total marks, rounded to one decimal.
type GradedResult struct {
	Answers     []QuestionResult `json:"answers"`
	EarnedMarks int              `json:"earned_marks"`
	TotalMarks  int              `json:"total_marks"`
	Percentage  float64          `json:"percentage"`
	ScaledScore float64          `json:"scaled_score"`
}
