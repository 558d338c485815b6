package models

import "time"

// JobRecommendation represents a canned job suggestion attached to an account
// after a resume analysis run.
type JobRecommendation struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountID       uint      `json:"account_id" gorm:"index;not null"`
	JobTitle        string    `json:"job_title" gorm:"type:varchar(255)"`
	CompanyName     string    `json:"company_name" gorm:"type:varchar(255)"`
	Location        string    `json:"location" gorm:"type:varchar(255)"`
	JobDescription  string    `json:"job_description" gorm:"type:text"`
	JobURL          string    `json:"job_url" gorm:"type:varchar(512)"`
	MatchPercentage float64   `json:"match_percentage"`
	RecommendedAt   time.Time `json:"recommended_at" gorm:"not null"`
}
