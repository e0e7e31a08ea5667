package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-screener/internal/domain/job"
)

func TestCreateJobDefaults(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo)

	created, err := uc.CreateJob(context.Background(), &job.Posting{
		Title:       "Backend Engineer",
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("no job id assigned")
	}
	if created.Source != "manual" {
		t.Fatalf("Source = %q, want manual", created.Source)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not set")
	}
	if len(repo.postings) != 1 {
		t.Fatalf("posting not stored")
	}
}

func TestCreateJobRejectsBadInput(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo())

	if _, err := uc.CreateJob(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("nil posting err = %v, want ErrInvalidInput", err)
	}
	if _, err := uc.CreateJob(context.Background(), &job.Posting{CompanyName: "Acme"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing title err = %v, want ErrInvalidInput", err)
	}
	if _, err := uc.CreateJob(context.Background(), &job.Posting{Title: "Engineer"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing company err = %v, want ErrInvalidInput", err)
	}
}

func TestListJobsLimits(t *testing.T) {
	repo := newFakeJobRepo(testPosting("job-1"), testPosting("job-2"))
	uc := NewJobUsecase(repo)

	if _, err := uc.ListJobs(context.Background(), JobListParams{}); err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if repo.listCalls[0] != [2]int{20, 0} {
		t.Fatalf("default limit call = %v, want [20 0]", repo.listCalls[0])
	}

	if _, err := uc.ListJobs(context.Background(), JobListParams{Limit: 500, Offset: -3}); err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if repo.listCalls[1] != [2]int{100, 0} {
		t.Fatalf("clamped call = %v, want [100 0]", repo.listCalls[1])
	}

	if _, err := uc.ListJobs(context.Background(), JobListParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative limit err = %v, want ErrInvalidInput", err)
	}
}
