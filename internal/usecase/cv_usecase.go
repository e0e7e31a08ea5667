package usecase

import (
	"context"
	"strings"
	"time"

	"resume-screener/internal/domain/cv"
	"resume-screener/internal/repository"
	"resume-screener/internal/skill"

	"github.com/google/uuid"
)

type CVUsecase interface {
	SaveCV(ctx context.Context, profile *cv.Profile) (*cv.Profile, error)
	GetCV(ctx context.Context, cvID string) (*cv.Profile, error)
}

type CVs struct {
	cvs       repository.CVRepository
	extractor *skill.Extractor
	cache     RankingCache
}

func NewCVUsecase(cvs repository.CVRepository, extractor *skill.Extractor, cache RankingCache) *CVs {
	return &CVs{cvs: cvs, extractor: extractor, cache: cache}
}

// SaveCV stores a structured candidate profile. Profiles arriving without
// pre-tagged skills get them extracted from the searchable text, so the
// ingestion layer never has to run extraction itself. Cached rankings for
// the candidate are invalidated since the skill set may have changed.
func (u *CVs) SaveCV(ctx context.Context, profile *cv.Profile) (*cv.Profile, error) {
	if profile == nil {
		return nil, ErrInvalidInput
	}
	if profile.TotalExperienceYears < 0 {
		return nil, ErrInvalidInput
	}

	if strings.TrimSpace(profile.ID) == "" {
		profile.ID = uuid.NewString()
	}
	if profile.ExtractedAt.IsZero() {
		profile.ExtractedAt = time.Now().UTC()
	}

	if len(profile.CombinedSkills()) == 0 {
		profile.AllSkills = u.extractor.Extract(profile.SearchableText())
	}

	if err := u.cvs.Upsert(ctx, profile); err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.InvalidateRankingsForCV(ctx, profile.ID)
	}

	return profile, nil
}

func (u *CVs) GetCV(ctx context.Context, cvID string) (*cv.Profile, error) {
	if strings.TrimSpace(cvID) == "" {
		return nil, ErrInvalidInput
	}

	profile, err := u.cvs.FindByID(ctx, cvID)
	if err != nil {
		return nil, ErrInternal
	}
	if profile == nil {
		return nil, ErrCVNotFound
	}
	return profile, nil
}
