package matching

import (
	"fmt"
	"math"
	"strings"
	"time"

	"resume-screener/internal/domain/cv"
	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/match"
	"resume-screener/internal/skill"
	"resume-screener/internal/textsim"
)

// Engine scores a candidate against postings by combining skill overlap,
// TF-IDF text similarity, and experience fit. The dictionary and extractor
// are shared immutable collaborators; the vectorizer is owned by the
// engine and batch-scoped, so callers build one engine per ranking
// request and never share engines across concurrent requests.
type Engine struct {
	cfg        Config
	dict       *skill.Dictionary
	extractor  *skill.Extractor
	classifier Classifier
	vectorizer *textsim.Vectorizer

	now func() time.Time
}

func NewEngine(cfg Config, dict *skill.Dictionary, extractor *skill.Extractor) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dict == nil {
		dict = skill.NewDictionary()
	}
	if extractor == nil {
		extractor = skill.NewExtractor(dict)
	}
	return &Engine{
		cfg:        cfg,
		dict:       dict,
		extractor:  extractor,
		classifier: NewClassifier(cfg.PotentialThreshold, cfg.ReviewThreshold),
		vectorizer: textsim.NewVectorizer(cfg.Vectorizer),
		now:        time.Now,
	}, nil
}

// FitCorpus builds the shared vector space for a batch. Rank calls this
// automatically; it is exposed for callers that score pairs one by one
// against a corpus they control.
func (e *Engine) FitCorpus(docs []string) error {
	return e.vectorizer.Fit(docs)
}

// Match scores one candidate against one posting and produces the full
// result with gap analysis. Text similarity contributes 0 when no corpus
// has been fitted yet.
func (e *Engine) Match(profile *cv.Profile, posting *job.Posting) match.Result {
	jdSkills := posting.Requirements.RequiredSkills
	if len(jdSkills) == 0 {
		jdSkills = e.extractor.Extract(posting.FullText())
	}

	cvSkills := profile.CombinedSkills()
	if len(cvSkills) == 0 {
		cvSkills = e.extractor.Extract(profile.SearchableText())
	}

	skillScore, matched, missing, extra, ratio := e.skillMatch(cvSkills, jdSkills)
	textSimilarity := e.textSimilarity(profile, posting)
	experienceScore := e.experienceMatch(
		profile.TotalExperienceYears,
		posting.Requirements.ExperienceYearsMin,
		posting.Requirements.ExperienceYearsMax,
	)

	overall := e.cfg.Weights.SkillMatch*skillScore +
		e.cfg.Weights.TextSimilarity*textSimilarity*100 +
		e.cfg.Weights.ExperienceMatch*experienceScore

	requiredMin := 0.0
	if posting.Requirements.ExperienceYearsMin != nil {
		requiredMin = float64(*posting.Requirements.ExperienceYearsMin)
	}

	return match.Result{
		CVID:        profile.ID,
		JobID:       posting.ID,
		JobTitle:    posting.Title,
		CompanyName: posting.CompanyName,
		Score: match.Score{
			OverallScore:    round2(overall),
			Category:        e.classifier.Classify(overall),
			SkillScore:      round2(skillScore),
			ExperienceScore: round2(experienceScore),
			TextSimilarity:  round4(textSimilarity),
		},
		GapAnalysis: match.GapAnalysis{
			MatchedSkills:            matched,
			MissingSkills:            missing,
			ExtraSkills:              extra,
			SkillMatchRatio:          round2(ratio),
			RequiredExperienceYears:  posting.Requirements.ExperienceYearsMin,
			CandidateExperienceYears: profile.TotalExperienceYears,
			ExperienceGap:            requiredMin - profile.TotalExperienceYears,
			Recommendations:          recommendations(missing, experienceScore),
		},
		MatchedAt: e.now().UTC(),
	}
}

// skillMatch normalizes both sides, computes the matched/missing/extra
// partition, and scores by the fraction of required skills covered. An
// empty requirement set is trivially satisfied: score 100, ratio 1.
func (e *Engine) skillMatch(cvSkills, jdSkills []string) (score float64, matched, missing, extra []string, ratio float64) {
	if len(jdSkills) == 0 {
		return 100, []string{}, []string{}, e.dict.NormalizeAll(cvSkills), 1
	}

	matched, missing, extra = e.dict.FindMatches(cvSkills, jdSkills)
	jdCount := len(matched) + len(missing)
	if jdCount == 0 {
		return 100, matched, missing, extra, 1
	}

	ratio = float64(len(matched)) / float64(jdCount)
	return ratio * 100, matched, missing, extra, ratio
}

func (e *Engine) textSimilarity(profile *cv.Profile, posting *job.Posting) float64 {
	if !e.vectorizer.IsFitted() {
		return 0
	}

	cvText := profile.SearchableText()
	jdText := posting.FullText()
	if cvText == "" || jdText == "" {
		return 0
	}

	cvVec, err := e.vectorizer.Vectorize(cvText)
	if err != nil {
		return 0
	}
	jdVec, err := e.vectorizer.Vectorize(jdText)
	if err != nil {
		return 0
	}
	return e.vectorizer.Similarity(cvVec, jdVec)
}

// experienceMatch scores how the candidate's years fit the posting's
// bounds. No minimum means no constraint. Overqualification above the
// maximum costs 5 points per year, floored at 70; falling short of the
// minimum drops through 70/50 bands and then 10 points per missing year,
// floored at 20.
func (e *Engine) experienceMatch(candidateYears float64, requiredMin, requiredMax *int) float64 {
	if requiredMin == nil {
		return 100
	}

	minYears := float64(*requiredMin)
	if candidateYears >= minYears {
		if requiredMax == nil || candidateYears <= float64(*requiredMax) {
			return 100
		}
		over := candidateYears - float64(*requiredMax)
		return math.Max(70, 100-over*5)
	}

	gap := minYears - candidateYears
	switch {
	case gap <= 1:
		return 70
	case gap <= 2:
		return 50
	default:
		return math.Max(20, 50-gap*10)
	}
}

func recommendations(missingSkills []string, experienceScore float64) []string {
	recs := make([]string, 0, 2)

	if len(missingSkills) > 0 {
		if len(missingSkills) <= 3 {
			recs = append(recs, fmt.Sprintf("Consider learning: %s", strings.Join(missingSkills, ", ")))
		} else {
			recs = append(recs, fmt.Sprintf(
				"Missing %d required skills. Priority: %s",
				len(missingSkills), strings.Join(missingSkills[:3], ", "),
			))
		}
	}

	if experienceScore < 70 {
		recs = append(recs, "More experience may be needed for this role")
	}

	if len(recs) == 0 {
		recs = append(recs, "Strong match! Consider applying.")
	}
	return recs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
