package repositories

import (
	"fmt"
	"time"

	"resumehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMJobRepository is a GORM implementation of JobRepository.
type GORMJobRepository struct {
	db *gorm.DB
}

// NewGORMJobRepository creates a new instance of GORMJobRepository.
func NewGORMJobRepository(db *gorm.DB) *GORMJobRepository {
	return &GORMJobRepository{
		db: db,
	}
}

// Create persists a job recommendation row.
func (r *GORMJobRepository) Create(job *models.JobRecommendation) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.RecommendedAt.IsZero() {
		job.RecommendedAt = time.Now().UTC()
	}
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job recommendation: %w", err)
	}
	return nil
}

// ListByAccount returns all job recommendations stored for an account, most
// recent first.
func (r *GORMJobRepository) ListByAccount(accountID uint) ([]models.JobRecommendation, error) {
	// Start with an empty slice rather than nil so an account without
	// recommendations serializes as [] instead of null.
	jobs := []models.JobRecommendation{}
	err := r.db.Where("account_id = ?", accountID).
		Order("recommended_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job recommendations for account %d: %w", accountID, err)
	}
	return jobs, nil
}
