package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-screener/internal/domain/cv"
	"resume-screener/internal/skill"
)

func cvUsecaseUnderTest(repo *fakeCVRepo, cache *fakeCache) *CVs {
	return NewCVUsecase(repo, skill.NewExtractor(nil), cache)
}

func TestSaveCVAssignsIDAndExtractsSkills(t *testing.T) {
	repo := newFakeCVRepo()
	cache := newFakeCache()
	uc := cvUsecaseUnderTest(repo, cache)

	saved, err := uc.SaveCV(context.Background(), &cv.Profile{
		Name:    "Bob",
		RawText: "Seasoned Python developer, Django and PostgreSQL in production",
	})
	if err != nil {
		t.Fatalf("SaveCV: %v", err)
	}

	if saved.ID == "" {
		t.Fatalf("no cv id assigned")
	}
	if len(saved.AllSkills) == 0 {
		t.Fatalf("skills not extracted from raw text")
	}
	found := map[string]bool{}
	for _, s := range saved.AllSkills {
		found[s] = true
	}
	for _, want := range []string{"python", "django", "postgresql"} {
		if !found[want] {
			t.Fatalf("extracted skills %v missing %q", saved.AllSkills, want)
		}
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != saved.ID {
		t.Fatalf("rankings not invalidated for %q: %v", saved.ID, cache.invalidated)
	}
}

func TestSaveCVKeepsProvidedSkills(t *testing.T) {
	uc := cvUsecaseUnderTest(newFakeCVRepo(), newFakeCache())

	saved, err := uc.SaveCV(context.Background(), &cv.Profile{
		ID:              "cv-7",
		TechnicalSkills: []string{"rust"},
		RawText:         "Python everywhere",
	})
	if err != nil {
		t.Fatalf("SaveCV: %v", err)
	}

	if saved.ID != "cv-7" {
		t.Fatalf("provided id overwritten: %q", saved.ID)
	}
	if len(saved.AllSkills) != 0 {
		t.Fatalf("extraction ran despite pre-tagged skills: %v", saved.AllSkills)
	}
}

func TestSaveCVRejectsBadInput(t *testing.T) {
	uc := cvUsecaseUnderTest(newFakeCVRepo(), newFakeCache())

	if _, err := uc.SaveCV(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("nil profile err = %v, want ErrInvalidInput", err)
	}
	if _, err := uc.SaveCV(context.Background(), &cv.Profile{TotalExperienceYears: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative years err = %v, want ErrInvalidInput", err)
	}
}

func TestGetCV(t *testing.T) {
	repo := newFakeCVRepo(testProfile())
	uc := cvUsecaseUnderTest(repo, newFakeCache())

	got, err := uc.GetCV(context.Background(), "cv-1")
	if err != nil {
		t.Fatalf("GetCV: %v", err)
	}
	if got.Name != "Alice" {
		t.Fatalf("Name = %q, want Alice", got.Name)
	}

	if _, err := uc.GetCV(context.Background(), "nope"); !errors.Is(err, ErrCVNotFound) {
		t.Fatalf("missing cv err = %v, want ErrCVNotFound", err)
	}
	if _, err := uc.GetCV(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank id err = %v, want ErrInvalidInput", err)
	}
}
