package match

import "time"

type Category string

const (
	CategoryPotential    Category = "potential"
	CategoryReviewNeeded Category = "review_needed"
	CategoryNotSuitable  Category = "not_suitable"
)

// Score is the weighted breakdown for one (cv, job) pair. OverallScore,
// SkillScore and ExperienceScore live on a 0-100 scale; TextSimilarity
// stays in [0,1]. Category is derived from OverallScore, never set on
// its own.
type Score struct {
	OverallScore float64  `json:"overall_score"`
	Category     Category `json:"category"`

	SkillScore      float64 `json:"skill_score"`
	ExperienceScore float64 `json:"experience_score"`
	TextSimilarity  float64 `json:"text_similarity"`
}

type GapAnalysis struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`

	SkillMatchRatio float64 `json:"skill_match_ratio"`

	RequiredExperienceYears  *int    `json:"required_experience_years,omitempty"`
	CandidateExperienceYears float64 `json:"candidate_experience_years"`
	ExperienceGap            float64 `json:"experience_gap"`

	Recommendations []string `json:"recommendations"`
}

// Result pairs one candidate with one posting. Rank is assigned by the
// ranking orchestrator after sorting and is 1-based within a batch.
type Result struct {
	CVID        string `json:"cv_id"`
	JobID       string `json:"job_id"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`

	Score       Score       `json:"score"`
	GapAnalysis GapAnalysis `json:"gap_analysis"`

	MatchedAt time.Time `json:"matched_at"`
	Rank      int       `json:"rank,omitempty"`
}

// Ranking is the output of matching one candidate against a batch of
// postings: results sorted descending by overall score, plus summary
// statistics computed over the (possibly top-N truncated) result list.
type Ranking struct {
	CVID            string   `json:"cv_id"`
	CandidateName   string   `json:"candidate_name,omitempty"`
	CandidateSkills []string `json:"candidate_skills"`

	Results []Result `json:"rankings"`

	TotalJobsAnalyzed int `json:"total_jobs_analyzed"`
	PotentialCount    int `json:"potential_count"`
	ReviewNeededCount int `json:"review_needed_count"`
	NotSuitableCount  int `json:"not_suitable_count"`

	TopCompanies    []string `json:"top_companies"`
	CommonSkillGaps []string `json:"common_skill_gaps"`

	GeneratedAt time.Time `json:"generated_at"`
}

// PotentialJobs returns only the results classified as potential.
func (r *Ranking) PotentialJobs() []Result {
	if r == nil {
		return nil
	}
	out := make([]Result, 0, r.PotentialCount)
	for _, res := range r.Results {
		if res.Score.Category == CategoryPotential {
			out = append(out, res)
		}
	}
	return out
}

// TopN returns the first n results of the ranking.
func (r *Ranking) TopN(n int) []Result {
	if r == nil || n <= 0 {
		return nil
	}
	if n > len(r.Results) {
		n = len(r.Results)
	}
	return r.Results[:n]
}
