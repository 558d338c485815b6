package repositories

import "resumehub/internal/models"

// JobRepository defines the interface for job recommendation data access.
type JobRepository interface {
	Create(job *models.JobRecommendation) error
	ListByAccount(accountID uint) ([]models.JobRecommendation, error)
}
