package services

import (
	"github.com/SAP-F-2025/grading-engine/internal/config"
	"github.com/SAP-F-2025/grading-engine/internal/models"
)

// CertificateEvaluator is the downstream consumer of a GradedResult: it
// decides certificate eligibility from the scaled score. Certificate
// rendering and persistence live elsewhere.
type CertificateEvaluator interface {
	Eligible(result *models.GradedResult) bool
}

type thresholdEvaluator struct {
	passScore float64
}

// NewCertificateEvaluator builds an evaluator that passes a submission when
// its scaled score reaches the configured pass score.
func NewCertificateEvaluator(cfg config.GradingConfig) CertificateEvaluator {
	return &thresholdEvaluator{passScore: cfg.CertificatePassScore}
}

func (e *thresholdEvaluator) Eligible(result *models.GradedResult) bool {
	return result.ScaledScore >= e.passScore
}
