package usecase

import (
	"context"
	"strings"
	"time"

	"resume-screener/internal/domain/job"
	"resume-screener/internal/repository"

	"github.com/google/uuid"
)

type JobListParams struct {
	Limit  int
	Offset int
}

type JobUsecase interface {
	CreateJob(ctx context.Context, posting *job.Posting) (*job.Posting, error)
	ListJobs(ctx context.Context, params JobListParams) ([]*job.Posting, error)
}

type Jobs struct {
	jobs repository.JobRepository
}

func NewJobUsecase(jobs repository.JobRepository) *Jobs {
	return &Jobs{jobs: jobs}
}

func (u *Jobs) CreateJob(ctx context.Context, posting *job.Posting) (*job.Posting, error) {
	if posting == nil {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(posting.Title) == "" || strings.TrimSpace(posting.CompanyName) == "" {
		return nil, ErrInvalidInput
	}

	if strings.TrimSpace(posting.ID) == "" {
		posting.ID = uuid.NewString()
	}
	if posting.Source == "" {
		posting.Source = "manual"
	}
	if posting.CreatedAt.IsZero() {
		posting.CreatedAt = time.Now().UTC()
	}

	// Required skills stay as supplied; the matching engine extracts them
	// from the posting text lazily when the stored set is empty.
	if err := u.jobs.Upsert(ctx, posting); err != nil {
		return nil, ErrInternal
	}
	return posting, nil
}

func (u *Jobs) ListJobs(ctx context.Context, params JobListParams) ([]*job.Posting, error) {
	limit := params.Limit
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	postings, err := u.jobs.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return postings, nil
}
