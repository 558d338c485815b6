package services

import (
	"encoding/json"
	"log"
	"time"

	"resumehub/internal/analyzer"
	"resumehub/internal/extract"
	"resumehub/internal/models"
	"resumehub/internal/repositories"
	"resumehub/pkg/events"
)

// ResumeService handles the resume upload pipeline: storing the file
// reference, extracting text, running the keyword analysis and deriving job
// recommendations.
type ResumeService struct {
	accountRepo  repositories.AccountRepository
	analysisRepo repositories.AnalysisRepository
	jobRepo      repositories.JobRepository
	extractor    extract.Extractor
	mqClient     *events.Client
}

// NewResumeService creates a new ResumeService. mqClient may be nil, in which
// case no analysis events are published.
func NewResumeService(
	accountRepo repositories.AccountRepository,
	analysisRepo repositories.AnalysisRepository,
	jobRepo repositories.JobRepository,
	extractor extract.Extractor,
	mqClient *events.Client,
) *ResumeService {
	return &ResumeService{
		accountRepo:  accountRepo,
		analysisRepo: analysisRepo,
		jobRepo:      jobRepo,
		extractor:    extractor,
		mqClient:     mqClient,
	}
}

// ProcessUpload records the resume path on the account, analyzes the
// extracted text and persists the analysis plus the matching job
// recommendations. An empty extraction result still produces an analysis row
// with no identified skills.
func (s *ResumeService) ProcessUpload(accountID uint, path string) (*models.ResumeAnalysis, []models.JobRecommendation, error) {
	if err := s.accountRepo.UpdateResumePath(accountID, path); err != nil {
		return nil, nil, err
	}

	text := s.extractor.Extract(path)
	result := analyzer.Analyze(text)

	analysis := &models.ResumeAnalysis{
		AccountID:         accountID,
		ExtractedText:     text,
		CategoryScores:    encodeJSON(result.CategoryScores),
		Strengths:         encodeJSON(result.Strengths),
		Weaknesses:        encodeJSON(result.Weaknesses),
		IdentifiedSkills:  encodeJSON(result.IdentifiedSkills),
		RecommendedSkills: encodeJSON(result.RecommendedSkills),
		AnalyzedAt:        time.Now().UTC(),
	}
	if err := s.analysisRepo.Create(analysis); err != nil {
		return nil, nil, err
	}

	matches := analyzer.MatchJobs(result.IdentifiedSkills)
	jobs := make([]models.JobRecommendation, 0, len(matches))
	for _, match := range matches {
		job := models.JobRecommendation{
			AccountID:       accountID,
			JobTitle:        match.Title,
			CompanyName:     match.Company,
			Location:        match.Location,
			JobDescription:  match.Description,
			JobURL:          match.URL,
			MatchPercentage: match.MatchPercentage,
			RecommendedAt:   analysis.AnalyzedAt,
		}
		if err := s.jobRepo.Create(&job); err != nil {
			return nil, nil, err
		}
		jobs = append(jobs, job)
	}

	if s.mqClient != nil {
		event := events.AnalysisEvent{
			AccountID:        accountID,
			AnalysisID:       analysis.ID,
			IdentifiedSkills: result.IdentifiedSkills,
			Recommendations:  len(jobs),
			AnalyzedAt:       analysis.AnalyzedAt,
		}
		if err := s.mqClient.PublishAnalysisCompleted(event); err != nil {
			// The upload is already persisted; event delivery is best effort.
			log.Printf("Failed to publish analysis event: %v", err)
		}
	}

	return analysis, jobs, nil
}

// LatestAnalysis returns the most recent stored analysis for an account.
func (s *ResumeService) LatestAnalysis(accountID uint) (*models.ResumeAnalysis, error) {
	return s.analysisRepo.LatestByAccount(accountID)
}

// RecommendationsFor returns the stored job recommendations for an account.
func (s *ResumeService) RecommendationsFor(accountID uint) ([]models.JobRecommendation, error) {
	return s.jobRepo.ListByAccount(accountID)
}

// encodeJSON marshals v for storage in a text column. Marshaling the
// analyzer's plain slices and maps cannot fail; an empty string is stored if
// it somehow does.
func encodeJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode analysis field: %v", err)
		return ""
	}
	return string(data)
}
