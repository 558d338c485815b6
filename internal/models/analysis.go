package models

import "time"

// ResumeAnalysis stores the outcome of one keyword analysis run over an
// uploaded resume. The skill lists and category scores are kept as JSON text
// so the row stays portable across the supported database drivers.
type ResumeAnalysis struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountID         uint      `json:"account_id" gorm:"index;not null"`
	ExtractedText     string    `json:"-" gorm:"type:text;not null"`
	CategoryScores    string    `json:"category_scores" gorm:"type:text"`
	Strengths         string    `json:"strengths" gorm:"type:text"`
	Weaknesses        string    `json:"weaknesses" gorm:"type:text"`
	IdentifiedSkills  string    `json:"identified_skills" gorm:"type:text"`
	RecommendedSkills string    `json:"recommended_skills" gorm:"type:text"`
	AnalyzedAt        time.Time `json:"analyzed_at" gorm:"not null"`
}
