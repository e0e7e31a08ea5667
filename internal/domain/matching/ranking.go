package matching

import (
	"sort"

	"resume-screener/internal/domain/cv"
	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/match"
)

// commonGapScoreFloor is the minimum overall score a result needs before
// its missing skills count toward the batch's common gaps.
const commonGapScoreFloor = 50.0

// maxSummaryEntries caps top companies, common gaps, and the results
// common gaps are tallied from.
const maxSummaryEntries = 5

// Rank matches a candidate against every posting in the batch, sorts the
// results descending by overall score, and aggregates cross-job
// statistics. The vector space is fitted once over the whole batch corpus
// before any pair is scored, so similarities are comparable across jobs.
//
// When topN > 0 the result list is truncated first and all summary
// statistics (category counts, top companies, common gaps) are computed
// from the truncated list.
//
// An empty batch is not an error: the ranking comes back with zero
// results and zero counts, and the caller decides how to surface
// "nothing to rank".
func (e *Engine) Rank(profile *cv.Profile, postings []*job.Posting, topN int) (match.Ranking, error) {
	if !e.vectorizer.IsFitted() {
		docs := make([]string, 0, len(postings)+1)
		for _, p := range postings {
			docs = append(docs, p.FullText())
		}
		docs = append(docs, profile.SearchableText())
		if err := e.vectorizer.Fit(docs); err != nil {
			return match.Ranking{}, err
		}
	}

	results := make([]match.Result, 0, len(postings))
	for _, p := range postings {
		results = append(results, e.Match(profile, p))
	}

	// Stable sort: ties keep their input order, so reruns over the same
	// batch produce identical rankings.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.OverallScore > results[j].Score.OverallScore
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	if topN > 0 && topN < len(results) {
		results = results[:topN]
	}

	ranking := match.Ranking{
		CVID:              profile.ID,
		CandidateName:     profile.Name,
		CandidateSkills:   profile.CombinedSkills(),
		Results:           results,
		TotalJobsAnalyzed: len(postings),
		TopCompanies:      topCompanies(results),
		CommonSkillGaps:   commonSkillGaps(results),
		GeneratedAt:       e.now().UTC(),
	}

	for _, r := range results {
		switch r.Score.Category {
		case match.CategoryPotential:
			ranking.PotentialCount++
		case match.CategoryReviewNeeded:
			ranking.ReviewNeededCount++
		case match.CategoryNotSuitable:
			ranking.NotSuitableCount++
		}
	}

	return ranking, nil
}

func topCompanies(results []match.Result) []string {
	n := maxSummaryEntries
	if n > len(results) {
		n = len(results)
	}
	out := make([]string, 0, n)
	for _, r := range results[:n] {
		out = append(out, r.CompanyName)
	}
	return out
}

// commonSkillGaps tallies missing-skill frequency across the top matches
// (overall score at the floor or above, at most maxSummaryEntries of
// them) and returns the most frequent gaps. Ties break by first
// appearance.
func commonSkillGaps(results []match.Result) []string {
	top := make([]match.Result, 0, maxSummaryEntries)
	for _, r := range results {
		if r.Score.OverallScore >= commonGapScoreFloor {
			top = append(top, r)
			if len(top) == maxSummaryEntries {
				break
			}
		}
	}
	if len(top) == 0 {
		return []string{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range top {
		for _, s := range r.GapAnalysis.MissingSkills {
			if counts[s] == 0 {
				order = append(order, s)
			}
			counts[s]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxSummaryEntries {
		order = order[:maxSummaryEntries]
	}
	return order
}
