package usecase

import (
	"context"
	"log"
	"strings"

	"resume-screener/internal/domain/match"
	"resume-screener/internal/repository"
)

type MatchUsecase interface {
	Match(ctx context.Context, cvID, jobID string) (match.Result, error)
}

type Matching struct {
	cvs     repository.CVRepository
	jobs    repository.JobRepository
	matches repository.MatchRepository
	engines *EngineFactory
	logger  *log.Logger
}

func NewMatchUsecase(cvs repository.CVRepository, jobs repository.JobRepository, matches repository.MatchRepository, engines *EngineFactory, logger *log.Logger) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{cvs: cvs, jobs: jobs, matches: matches, engines: engines, logger: logger}
}

// Match scores a single stored (cv, job) pair. The vector space is fitted
// over just the two documents, so the similarity component reflects only
// what the pair shares.
func (u *Matching) Match(ctx context.Context, cvID, jobID string) (match.Result, error) {
	if strings.TrimSpace(cvID) == "" || strings.TrimSpace(jobID) == "" {
		return match.Result{}, ErrInvalidInput
	}

	profile, err := u.cvs.FindByID(ctx, cvID)
	if err != nil {
		return match.Result{}, ErrInternal
	}
	if profile == nil {
		return match.Result{}, ErrCVNotFound
	}

	postings, err := u.jobs.FindByIDs(ctx, []string{jobID})
	if err != nil {
		return match.Result{}, ErrInternal
	}
	if len(postings) == 0 {
		return match.Result{}, ErrJobNotFound
	}
	posting := postings[0]

	engine, err := u.engines.New()
	if err != nil {
		return match.Result{}, ErrInternal
	}
	if err := engine.FitCorpus([]string{posting.FullText(), profile.SearchableText()}); err != nil {
		return match.Result{}, ErrInternal
	}

	result := engine.Match(profile, posting)

	if u.matches != nil {
		if err := u.matches.UpsertBatch(ctx, []match.Result{result}); err != nil {
			u.logger.Printf("[Match] persist result failed cv=%s job=%s: %v", cvID, jobID, err)
		}
	}

	return result, nil
}
