package analyzer_test

import (
	"testing"

	"resumehub/internal/analyzer"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeIdentifiesSkills(t *testing.T) {
	text := "Experienced Go developer. Worked with Docker, Kubernetes and SQL databases. Strong communication skills."

	result := analyzer.Analyze(text)

	assert.Contains(t, result.IdentifiedSkills, "go")
	assert.Contains(t, result.IdentifiedSkills, "docker")
	assert.Contains(t, result.IdentifiedSkills, "kubernetes")
	assert.Contains(t, result.IdentifiedSkills, "sql")
	assert.Contains(t, result.IdentifiedSkills, "communication")
	assert.NotContains(t, result.IdentifiedSkills, "react")

	assert.Greater(t, result.CategoryScores["devops"], 0.0)
	assert.Zero(t, result.CategoryScores["web"])
}

func TestAnalyzeIsCaseInsensitive(t *testing.T) {
	upper := analyzer.Analyze("PYTHON AND PANDAS")
	lower := analyzer.Analyze("python and pandas")

	assert.Equal(t, lower.IdentifiedSkills, upper.IdentifiedSkills)
	assert.Contains(t, upper.IdentifiedSkills, "python")
	assert.Contains(t, upper.IdentifiedSkills, "pandas")
}

func TestAnalyzeEmptyText(t *testing.T) {
	result := analyzer.Analyze("")

	assert.Empty(t, result.IdentifiedSkills)
	assert.Empty(t, result.RecommendedSkills)
	assert.Empty(t, result.Strengths)
	assert.NotEmpty(t, result.Weaknesses)
	for _, score := range result.CategoryScores {
		assert.Zero(t, score)
	}
}

func TestAnalyzeRecommendsRelatedSkills(t *testing.T) {
	// Go without docker should recommend docker; sql is present so it must
	// not be recommended again.
	result := analyzer.Analyze("go developer with sql experience")

	assert.Contains(t, result.RecommendedSkills, "docker")
	assert.NotContains(t, result.RecommendedSkills, "sql")
	for _, skill := range result.RecommendedSkills {
		assert.NotContains(t, result.IdentifiedSkills, skill)
	}
}

func TestMatchJobs(t *testing.T) {
	matches := analyzer.MatchJobs([]string{"go", "sql", "docker"})

	assert.NotEmpty(t, matches)

	var backend *analyzer.JobMatch
	for i := range matches {
		if matches[i].Title == "Backend Engineer" {
			backend = &matches[i]
		}
		assert.Greater(t, matches[i].MatchPercentage, 0.0)
		assert.LessOrEqual(t, matches[i].MatchPercentage, 100.0)
	}
	if assert.NotNil(t, backend, "expected the Backend Engineer posting to match") {
		assert.InDelta(t, 100.0, backend.MatchPercentage, 0.001)
	}
}

func TestMatchJobsNoSkills(t *testing.T) {
	assert.Empty(t, analyzer.MatchJobs(nil))
	assert.Empty(t, analyzer.MatchJobs([]string{"underwater basket weaving"}))
}
