package repositories

import (
	"errors"
	"fmt"
	"time"

	"resumehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAnalysisRepository is a GORM implementation of AnalysisRepository.
type GORMAnalysisRepository struct {
	db *gorm.DB
}

// NewGORMAnalysisRepository creates a new instance of GORMAnalysisRepository.
func NewGORMAnalysisRepository(db *gorm.DB) *GORMAnalysisRepository {
	return &GORMAnalysisRepository{
		db: db,
	}
}

// Create persists a resume analysis row.
func (r *GORMAnalysisRepository) Create(analysis *models.ResumeAnalysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	if analysis.AnalyzedAt.IsZero() {
		analysis.AnalyzedAt = time.Now().UTC()
	}
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create resume analysis: %w", err)
	}
	return nil
}

// LatestByAccount returns the most recent analysis stored for an account.
func (r *GORMAnalysisRepository) LatestByAccount(accountID uint) (*models.ResumeAnalysis, error) {
	var analysis models.ResumeAnalysis
	err := r.db.Where("account_id = ?", accountID).
		Order("analyzed_at DESC").
		First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get latest analysis for account %d: %w", accountID, err)
	}
	return &analysis, nil
}
