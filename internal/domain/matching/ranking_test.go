package matching

import (
	"reflect"
	"testing"

	"resume-screener/internal/domain/cv"
	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/match"
)

func rankProfile() *cv.Profile {
	return &cv.Profile{
		ID:                   "cv-1",
		Name:                 "Alice",
		TechnicalSkills:      []string{"python", "django", "postgresql"},
		TotalExperienceYears: 4,
		Summary:              "backend developer building web services with python and django",
	}
}

func backendPosting(id, company string, required []string) *job.Posting {
	return &job.Posting{
		ID:          id,
		Title:       "Backend Engineer",
		CompanyName: company,
		Description: "build and operate backend services",
		Requirements: job.Requirements{
			RequiredSkills: required,
		},
	}
}

func TestRankOrdersAndNumbersResults(t *testing.T) {
	e := newTestEngine(t)

	postings := []*job.Posting{
		backendPosting("job-a", "Acme", []string{"python", "django", "postgresql", "java"}),
		backendPosting("job-b", "Globex", []string{"python", "django"}),
		backendPosting("job-c", "Initech", []string{"java", "spring"}),
	}

	ranking, err := e.Rank(rankProfile(), postings, 0)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if ranking.TotalJobsAnalyzed != 3 {
		t.Fatalf("TotalJobsAnalyzed = %d, want 3", ranking.TotalJobsAnalyzed)
	}
	if len(ranking.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(ranking.Results))
	}

	for i := 1; i < len(ranking.Results); i++ {
		if ranking.Results[i].Score.OverallScore > ranking.Results[i-1].Score.OverallScore {
			t.Fatalf("results not sorted descending at index %d", i)
		}
	}
	for i, r := range ranking.Results {
		if r.Rank != i+1 {
			t.Fatalf("Rank at index %d = %d, want %d", i, r.Rank, i+1)
		}
	}

	// The zero-overlap job can never beat a full or partial skill match.
	if ranking.Results[2].JobID != "job-c" {
		t.Fatalf("last result = %s, want job-c", ranking.Results[2].JobID)
	}

	sum := ranking.PotentialCount + ranking.ReviewNeededCount + ranking.NotSuitableCount
	if sum != len(ranking.Results) {
		t.Fatalf("category counts sum to %d, want %d", sum, len(ranking.Results))
	}
	if ranking.CVID != "cv-1" || ranking.CandidateName != "Alice" {
		t.Fatalf("candidate identity not carried: %q %q", ranking.CVID, ranking.CandidateName)
	}
}

func TestRankStableOnTies(t *testing.T) {
	e := newTestEngine(t)

	postings := []*job.Posting{
		backendPosting("job-1", "Acme", []string{"python", "django"}),
		backendPosting("job-2", "Acme", []string{"python", "django"}),
	}

	ranking, err := e.Rank(rankProfile(), postings, 0)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if ranking.Results[0].Score.OverallScore != ranking.Results[1].Score.OverallScore {
		t.Fatalf("identical postings scored differently: %v vs %v",
			ranking.Results[0].Score.OverallScore, ranking.Results[1].Score.OverallScore)
	}
	if ranking.Results[0].JobID != "job-1" || ranking.Results[1].JobID != "job-2" {
		t.Fatalf("tie order not stable: %s, %s", ranking.Results[0].JobID, ranking.Results[1].JobID)
	}
}

func TestRankEmptyBatch(t *testing.T) {
	e := newTestEngine(t)

	ranking, err := e.Rank(rankProfile(), nil, 0)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if len(ranking.Results) != 0 {
		t.Fatalf("Results = %v, want empty", ranking.Results)
	}
	if ranking.TotalJobsAnalyzed != 0 {
		t.Fatalf("TotalJobsAnalyzed = %d, want 0", ranking.TotalJobsAnalyzed)
	}
	if ranking.PotentialCount+ranking.ReviewNeededCount+ranking.NotSuitableCount != 0 {
		t.Fatalf("expected zero category counts")
	}
	if len(ranking.TopCompanies) != 0 || len(ranking.CommonSkillGaps) != 0 {
		t.Fatalf("expected empty summaries, got %v / %v", ranking.TopCompanies, ranking.CommonSkillGaps)
	}
}

func TestRankCommonSkillGaps(t *testing.T) {
	e := newTestEngine(t)

	postings := []*job.Posting{
		// Three of four required skills covered keeps this above the
		// common-gap floor while still missing java.
		backendPosting("job-a", "Acme", []string{"python", "django", "postgresql", "java"}),
		backendPosting("job-b", "Globex", []string{"python", "django"}),
		// Scores far below the floor; its gaps must not be counted.
		backendPosting("job-c", "Initech", []string{"cobol", "fortran"}),
	}

	ranking, err := e.Rank(rankProfile(), postings, 0)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if want := []string{"java"}; !reflect.DeepEqual(ranking.CommonSkillGaps, want) {
		t.Fatalf("CommonSkillGaps = %v, want %v", ranking.CommonSkillGaps, want)
	}
}

func TestRankTopNTruncatesBeforeSummaries(t *testing.T) {
	profile := rankProfile()
	postings := []*job.Posting{
		backendPosting("job-1", "Acme", []string{"python", "django"}),
		backendPosting("job-2", "Globex", []string{"python", "django"}),
		backendPosting("job-3", "Initech", []string{"cobol", "fortran"}),
		backendPosting("job-4", "Umbrella", []string{"cobol", "fortran"}),
	}

	full, err := newTestEngine(t).Rank(profile, postings, 0)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	truncated, err := newTestEngine(t).Rank(profile, postings, 2)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if len(truncated.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(truncated.Results))
	}
	if truncated.TotalJobsAnalyzed != 4 {
		t.Fatalf("TotalJobsAnalyzed = %d, want 4", truncated.TotalJobsAnalyzed)
	}

	// Category counts describe the truncated list, not the full batch.
	truncatedSum := truncated.PotentialCount + truncated.ReviewNeededCount + truncated.NotSuitableCount
	if truncatedSum != 2 {
		t.Fatalf("truncated counts sum to %d, want 2", truncatedSum)
	}
	fullSum := full.PotentialCount + full.ReviewNeededCount + full.NotSuitableCount
	if fullSum != 4 {
		t.Fatalf("full counts sum to %d, want 4", fullSum)
	}
	if full.NotSuitableCount != 2 {
		t.Fatalf("full NotSuitableCount = %d, want 2", full.NotSuitableCount)
	}
	if truncated.NotSuitableCount != 0 {
		t.Fatalf("truncated NotSuitableCount = %d, want 0", truncated.NotSuitableCount)
	}

	if len(truncated.TopCompanies) != 2 {
		t.Fatalf("TopCompanies = %v, want 2 entries", truncated.TopCompanies)
	}

	for _, r := range truncated.Results {
		if r.Score.Category == match.CategoryNotSuitable {
			t.Fatalf("zero-overlap job in top 2: %s", r.JobID)
		}
	}
}

func TestRankTopNLargerThanBatch(t *testing.T) {
	e := newTestEngine(t)

	postings := []*job.Posting{
		backendPosting("job-1", "Acme", []string{"python"}),
	}

	ranking, err := e.Rank(rankProfile(), postings, 10)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranking.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(ranking.Results))
	}
}
