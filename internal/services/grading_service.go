package services

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/grading-engine/internal/config"
	"github.com/SAP-F-2025/grading-engine/internal/grading"
	"github.com/SAP-F-2025/grading-engine/internal/models"
	"github.com/SAP-F-2025/grading-engine/internal/utils"
	"github.com/SAP-F-2025/grading-engine/internal/validator"
)

// GradingService grades student submissions. It holds no state beyond its
// configuration: every call is a pure function of its inputs, so identical
// inputs always produce identical results and concurrent calls need no
// locking.
type GradingService interface {
	// GradeSubmission grades a full submission. Submitted answers with no
	// matching question are ignored; questions with no matching answer are
	// graded as unanswered.
	GradeSubmission(ctx context.Context, req *models.GradeSubmissionRequest) (*models.GradedResult, error)

	// GradeQuestion grades a single answer against its question.
	GradeQuestion(ctx context.Context, question *models.Question, submitted *models.SubmittedAnswer) (*models.QuestionResult, error)
}

type gradingService struct {
	grader    *grading.Grader
	logger    utils.Logger
	validator *validator.Validator
}

func NewGradingService(cfg config.GradingConfig, logger utils.Logger, v *validator.Validator) GradingService {
	return &gradingService{
		grader: grading.NewGrader(
			grading.WithShortTolerance(cfg.ShortTolerance),
			grading.WithLongTolerance(cfg.LongTolerance),
			grading.WithReversedVariation(cfg.IncludeReversedVariation),
		),
		logger:    logger,
		validator: v,
	}
}

func (s *gradingService) GradeSubmission(ctx context.Context, req *models.GradeSubmissionRequest) (*models.GradedResult, error) {
	if req.AssignmentTotalMarks <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTotalMarks, req.AssignmentTotalMarks)
	}

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	// Authoring errors fail the whole call; grading a corrupt assignment
	// silently would feed wrong scores into certificate decisions.
	if err := s.validator.Question().ValidateQuestionBatch(req.Questions); err != nil {
		return nil, err
	}

	// Answers with no matching question are dropped here.
	answersByQuestion := make(map[uint]*models.SubmittedAnswer, len(req.SubmittedAnswers))
	for i := range req.SubmittedAnswers {
		sub := &req.SubmittedAnswers[i]
		if _, ok := answersByQuestion[sub.QuestionID]; !ok {
			answersByQuestion[sub.QuestionID] = sub
		}
	}

	results := make([]models.QuestionResult, 0, len(req.Questions))
	for i := range req.Questions {
		question := &req.Questions[i]
		submitted, ok := answersByQuestion[question.ID]
		if !ok {
			submitted = &models.SubmittedAnswer{QuestionID: question.ID} // unanswered
		}

		result, err := s.grader.GradeQuestion(question, submitted)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	graded := grading.ScoreSubmission(results, req.AssignmentTotalMarks)

	s.logger.InfoContext(ctx, "Submission graded",
		"questions", len(req.Questions),
		"earned_marks", graded.EarnedMarks,
		"total_marks", graded.TotalMarks,
		"percentage", graded.Percentage,
		"scaled_score", graded.ScaledScore)

	return &graded, nil
}

func (s *gradingService) GradeQuestion(ctx context.Context, question *models.Question, submitted *models.SubmittedAnswer) (*models.QuestionResult, error) {
	if err := s.validator.Question().ValidateQuestion(question); err != nil {
		return nil, err
	}

	result, err := s.grader.GradeQuestion(question, submitted)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "Question graded",
		"question_id", question.ID,
		"is_correct", result.IsCorrect,
		"marks_awarded", result.MarksAwarded)

	return &result, nil
}
