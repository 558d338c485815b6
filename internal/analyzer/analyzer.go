// Package analyzer implements the keyword-based resume analysis: a
// case-insensitive substring search over a fixed skill catalog, per-category
// scores, canned strengths/weaknesses and a static job catalog matched by
// skill-set membership.
package analyzer

import (
	"fmt"
	"strings"
)

// skillCategory groups related keywords under a named category. Scores are
// computed per category as the fraction of its keywords found in the text.
type skillCategory struct {
	Name     string
	Keywords []string
}

var skillCategories = []skillCategory{
	{
		Name:     "programming",
		Keywords: []string{"go", "golang", "python", "java", "javascript", "typescript", "c++", "rust"},
	},
	{
		Name:     "web",
		Keywords: []string{"html", "css", "react", "angular", "vue", "node", "rest api"},
	},
	{
		Name:     "data",
		Keywords: []string{"sql", "pandas", "machine learning", "tensorflow", "data analysis", "statistics"},
	},
	{
		Name:     "devops",
		Keywords: []string{"docker", "kubernetes", "aws", "linux", "git", "ci/cd", "terraform"},
	},
	{
		Name:     "soft skills",
		Keywords: []string{"communication", "teamwork", "leadership", "problem solving", "agile"},
	},
}

// relatedSkills maps an identified skill to skills commonly expected next to
// it. Recommendations are the related skills not already present in the
// resume.
var relatedSkills = map[string][]string{
	"go":               {"docker", "kubernetes", "sql"},
	"golang":           {"docker", "kubernetes", "sql"},
	"python":           {"pandas", "machine learning", "sql"},
	"java":             {"sql", "rest api"},
	"javascript":       {"typescript", "react", "node"},
	"react":            {"typescript", "css"},
	"sql":              {"data analysis", "python"},
	"machine learning": {"tensorflow", "statistics", "pandas"},
	"docker":           {"kubernetes", "ci/cd"},
	"kubernetes":       {"terraform", "aws"},
	"aws":              {"terraform", "docker"},
	"git":              {"ci/cd"},
}

// Job is one entry of the static job catalog.
type Job struct {
	Title          string
	Company        string
	Location       string
	Description    string
	URL            string
	RequiredSkills []string
}

// JobMatch pairs a catalog entry with the percentage of its required skills
// found in the analyzed resume.
type JobMatch struct {
	Job
	MatchPercentage float64
}

var jobCatalog = []Job{
	{
		Title:          "Backend Engineer",
		Company:        "Northwind Systems",
		Location:       "Remote",
		Description:    "Build and operate HTTP APIs and background workers.",
		URL:            "https://jobs.example.com/northwind/backend-engineer",
		RequiredSkills: []string{"go", "sql", "docker"},
	},
	{
		Title:          "Frontend Developer",
		Company:        "Brightline Media",
		Location:       "Berlin, Germany",
		Description:    "Ship accessible, responsive web interfaces.",
		URL:            "https://jobs.example.com/brightline/frontend-developer",
		RequiredSkills: []string{"javascript", "react", "css"},
	},
	{
		Title:          "Data Analyst",
		Company:        "Clearwater Analytics",
		Location:       "London, UK",
		Description:    "Turn raw datasets into reports and dashboards.",
		URL:            "https://jobs.example.com/clearwater/data-analyst",
		RequiredSkills: []string{"sql", "python", "data analysis"},
	},
	{
		Title:          "Machine Learning Engineer",
		Company:        "Vector Labs",
		Location:       "Remote",
		Description:    "Train, evaluate and deploy ML models.",
		URL:            "https://jobs.example.com/vector/ml-engineer",
		RequiredSkills: []string{"python", "machine learning", "tensorflow"},
	},
	{
		Title:          "Platform Engineer",
		Company:        "Skyforge Cloud",
		Location:       "Amsterdam, Netherlands",
		Description:    "Own the container platform and deployment pipelines.",
		URL:            "https://jobs.example.com/skyforge/platform-engineer",
		RequiredSkills: []string{"kubernetes", "docker", "terraform", "aws"},
	},
	{
		Title:          "Full Stack Developer",
		Company:        "Harborview Software",
		Location:       "Remote",
		Description:    "Work across the stack on a customer-facing product.",
		URL:            "https://jobs.example.com/harborview/full-stack-developer",
		RequiredSkills: []string{"javascript", "node", "sql"},
	},
}

// Result is the outcome of analyzing one resume text.
type Result struct {
	IdentifiedSkills  []string
	RecommendedSkills []string
	CategoryScores    map[string]float64
	Strengths         []string
	Weaknesses        []string
}

// Analyze runs the keyword search over the extracted resume text. An empty
// text yields a result with no identified skills and zero scores.
func Analyze(text string) Result {
	lowered := strings.ToLower(text)

	// Slices start empty rather than nil so they serialize as [] instead
	// of null.
	result := Result{
		IdentifiedSkills:  []string{},
		RecommendedSkills: []string{},
		Strengths:         []string{},
		Weaknesses:        []string{},
		CategoryScores:    make(map[string]float64, len(skillCategories)),
	}
	identified := make(map[string]bool)

	for _, category := range skillCategories {
		found := 0
		for _, keyword := range category.Keywords {
			if containsKeyword(lowered, keyword) {
				found++
				if !identified[keyword] {
					identified[keyword] = true
					result.IdentifiedSkills = append(result.IdentifiedSkills, keyword)
				}
			}
		}
		score := float64(found) / float64(len(category.Keywords)) * 100
		result.CategoryScores[category.Name] = score

		switch {
		case score >= 50:
			result.Strengths = append(result.Strengths,
				fmt.Sprintf("Solid %s profile (%d of %d keywords found).", category.Name, found, len(category.Keywords)))
		case found == 0:
			result.Weaknesses = append(result.Weaknesses,
				fmt.Sprintf("No %s skills detected; consider highlighting them.", category.Name))
		}
	}

	recommended := make(map[string]bool)
	for _, skill := range result.IdentifiedSkills {
		for _, related := range relatedSkills[skill] {
			if !identified[related] && !recommended[related] {
				recommended[related] = true
				result.RecommendedSkills = append(result.RecommendedSkills, related)
			}
		}
	}

	return result
}

// MatchJobs selects catalog entries sharing at least one required skill with
// the identified set. The match percentage is the share of required skills
// the resume covers.
func MatchJobs(skills []string) []JobMatch {
	have := make(map[string]bool, len(skills))
	for _, skill := range skills {
		have[strings.ToLower(skill)] = true
	}

	var matches []JobMatch
	for _, job := range jobCatalog {
		overlap := 0
		for _, required := range job.RequiredSkills {
			if have[required] {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		matches = append(matches, JobMatch{
			Job:             job,
			MatchPercentage: float64(overlap) / float64(len(job.RequiredSkills)) * 100,
		})
	}
	return matches
}

// containsKeyword reports whether the keyword occurs in the lowered text.
// Plain substring search, per the analysis contract; "go" inside "golang"
// counts as a hit.
func containsKeyword(lowered, keyword string) bool {
	return strings.Contains(lowered, keyword)
}
