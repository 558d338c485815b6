package repositories

import (
	"errors"

	"resumehub/internal/models"
)

// ErrAnalysisNotFound is returned when an account has no stored resume
// analysis yet.
var ErrAnalysisNotFound = errors.New("resume analysis not found")

// AnalysisRepository defines the interface for resume analysis data access.
type AnalysisRepository interface {
	Create(analysis *models.ResumeAnalysis) error
	LatestByAccount(accountID uint) (*models.ResumeAnalysis, error)
}
