package services

import (
	"errors"

	apperrors "github.com/SAP-F-2025/grading-engine/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")

	// Configuration errors — caller bugs, never gradeable states
	ErrInvalidTotalMarks = errors.New("assignment total marks must be positive")

	// Grading specific errors
	ErrQuestionInvalidType = errors.New("invalid question type")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared error types from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors
type MalformedQuestionError = apperrors.MalformedQuestionError

// ===== ERROR HELPERS =====

// IsInvalidConfiguration checks if error represents a misconfigured grading call
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidTotalMarks)
}

// IsMalformedQuestion checks if error represents an ungradeable question definition
func IsMalformedQuestion(err error) bool {
	return apperrors.IsMalformedQuestion(err)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}
