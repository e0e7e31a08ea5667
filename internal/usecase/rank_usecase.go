package usecase

import (
	"context"
	"log"
	"strings"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/domain/match"
	"resume-screener/internal/repository"
)

const rankAllJobsLimit = 100

type RankParams struct {
	CVID   string
	JobIDs []string
	TopN   int
}

type RankUsecase interface {
	Rank(ctx context.Context, params RankParams) (match.Ranking, error)
}

type Ranking struct {
	cvs     repository.CVRepository
	jobs    repository.JobRepository
	matches repository.MatchRepository
	engines *EngineFactory
	cache   RankingCache
	logger  *log.Logger
}

func NewRankUsecase(cvs repository.CVRepository, jobs repository.JobRepository, matches repository.MatchRepository, engines *EngineFactory, cache RankingCache, logger *log.Logger) *Ranking {
	if logger == nil {
		logger = log.Default()
	}
	return &Ranking{cvs: cvs, jobs: jobs, matches: matches, engines: engines, cache: cache, logger: logger}
}

// Rank matches a stored candidate against the requested jobs (or the most
// recent postings when no IDs are given) and returns the full ranking.
// An empty store is a valid terminal state when no IDs were given: the
// ranking comes back with zero results and the caller surfaces "nothing
// to rank". Explicitly requested IDs that all fail to resolve are a
// not-found error instead.
func (u *Ranking) Rank(ctx context.Context, params RankParams) (match.Ranking, error) {
	if strings.TrimSpace(params.CVID) == "" {
		return match.Ranking{}, ErrInvalidInput
	}
	if params.TopN < 0 {
		return match.Ranking{}, ErrInvalidInput
	}

	profile, err := u.cvs.FindByID(ctx, params.CVID)
	if err != nil {
		return match.Ranking{}, ErrInternal
	}
	if profile == nil {
		return match.Ranking{}, ErrCVNotFound
	}

	postings, explicit, err := u.loadPostings(ctx, params.JobIDs)
	if err != nil {
		return match.Ranking{}, ErrInternal
	}
	// Every requested job ID was unknown. Partial resolution still ranks
	// whatever resolved.
	if explicit && len(postings) == 0 {
		return match.Ranking{}, ErrJobNotFound
	}

	jobIDs := make([]string, 0, len(postings))
	for _, p := range postings {
		jobIDs = append(jobIDs, p.ID)
	}

	key := RankingCacheKey(params.CVID, jobIDs, params.TopN)
	if u.cache != nil {
		var cached match.Ranking
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	engine, err := u.engines.New()
	if err != nil {
		return match.Ranking{}, ErrInternal
	}

	ranking, err := engine.Rank(profile, postings, params.TopN)
	if err != nil {
		return match.Ranking{}, ErrInternal
	}

	if u.matches != nil && len(ranking.Results) > 0 {
		if err := u.matches.UpsertBatch(ctx, ranking.Results); err != nil {
			u.logger.Printf("[Rank] persist results failed cv=%s: %v", params.CVID, err)
		}
	}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, ranking, 0); err != nil {
			u.logger.Printf("[Rank] cache write failed key=%s: %v", key, err)
		}
	}

	return ranking, nil
}

// loadPostings resolves the job batch. The explicit flag reports whether
// the caller supplied concrete job IDs, so Rank can distinguish "nothing
// matched the request" from "nothing stored yet".
func (u *Ranking) loadPostings(ctx context.Context, jobIDs []string) ([]*job.Posting, bool, error) {
	cleaned := make([]string, 0, len(jobIDs))
	for _, id := range jobIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			cleaned = append(cleaned, id)
		}
	}

	if len(cleaned) > 0 {
		postings, err := u.jobs.FindByIDs(ctx, cleaned)
		return postings, true, err
	}

	postings, err := u.jobs.List(ctx, rankAllJobsLimit, 0)
	return postings, false, err
}
