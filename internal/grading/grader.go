package grading

import (
	"strings"

	apperrors "github.com/SAP-F-2025/grading-engine/internal/errors"
	"github.com/SAP-F-2025/grading-engine/internal/models"
)

// Grader turns one (question, submitted answer) pair into a QuestionResult,
// dispatching on the question type.
type Grader struct {
	matcher *Matcher
}

func NewGrader(opts ...Option) *Grader {
	return &Grader{matcher: NewMatcher(opts...)}
}

// GradeQuestion grades a single answer against its question.
//
// Closed-set types (multiple choice, true/false) are compared exactly after
// trimming: option text case-insensitively, the true/false literal tokens
// case-sensitively. Free-text types go through the fuzzy matcher; a
// long-answer question forces the long tolerance regardless of the
// reference's length class. An empty or whitespace-only answer is always
// incorrect. Returns MalformedQuestionError for a multiple choice question
// whose correct answer is not one of its options.
func (g *Grader) GradeQuestion(question *models.Question, submitted *models.SubmittedAnswer) (models.QuestionResult, error) {
	result := models.QuestionResult{
		QuestionID: question.ID,
		MaxMarks:   question.Marks,
	}

	if question.Type == models.MultipleChoice {
		if !answerInOptions(question.CorrectAnswer, question.Options) {
			return result, apperrors.NewMalformedQuestionError(question.ID, "correct answer is not one of the options")
		}
	}

	answer := strings.TrimSpace(submitted.Answer)
	if answer == "" {
		return result, nil // unanswered
	}

	correct := strings.TrimSpace(question.CorrectAnswer)

	switch question.Type {
	case models.MultipleChoice:
		result.IsCorrect = strings.EqualFold(answer, correct)
	case models.TrueFalse:
		result.IsCorrect = answer == correct
	case models.ShortAnswer:
		result.IsCorrect = g.matcher.Matches(submitted.Answer, question.CorrectAnswer, Classify(Normalize(question.CorrectAnswer)))
	case models.LongAnswer:
		// Type-declared intent overrides the length heuristic.
		result.IsCorrect = g.matcher.Matches(submitted.Answer, question.CorrectAnswer, LengthLong)
	default:
		return result, apperrors.NewMalformedQuestionError(question.ID, "unsupported question type: "+string(question.Type))
	}

	if result.IsCorrect {
		result.MarksAwarded = question.Marks
	}
	return result, nil
}

func answerInOptions(correct string, options []string) bool {
	for _, o := range options {
		if o == correct {
			return true
		}
	}
	return false
}
