package grading

import (
	"math"

	"github.com/SAP-F-2025/grading-engine/internal/models"
)

// ScoreSubmission aggregates per-question results into a GradedResult.
//
// Percentage is earned over the sum of the graded questions' marks, rounded
// to a whole number; a zero mark total yields 0%, never a division by zero.
// ScaledScore re-expresses that percentage against the assignment's declared
// total marks (which may differ from the sum of question marks) and is
// rounded to one decimal.
func ScoreSubmission(results []models.QuestionResult, assignmentTotalMarks int) models.GradedResult {
	graded := models.GradedResult{
		Answers: results,
	}

	for _, r := range results {
		graded.EarnedMarks += r.MarksAwarded
		graded.TotalMarks += r.MaxMarks
	}

	if graded.TotalMarks > 0 {
		graded.Percentage = math.Round(100 * float64(graded.EarnedMarks) / float64(graded.TotalMarks))
	}
	graded.ScaledScore = math.Round(graded.Percentage/100*float64(assignmentTotalMarks)*10) / 10

	return graded
}
