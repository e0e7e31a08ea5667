package usecase

import (
	"context"
	"strings"

	"resume-screener/internal/skill"
)

type SkillExtraction struct {
	Skills     []string
	ByCategory map[string][]string
}

type SkillUsecase interface {
	ExtractSkills(ctx context.Context, text string) (SkillExtraction, error)
}

type Skills struct {
	extractor *skill.Extractor
}

func NewSkillUsecase(extractor *skill.Extractor) *Skills {
	return &Skills{extractor: extractor}
}

// ExtractSkills runs the pattern extractor over free text. Blank text is
// rejected at this boundary; callers that tolerate empty input (the
// matching engine does) call the extractor directly.
func (u *Skills) ExtractSkills(_ context.Context, text string) (SkillExtraction, error) {
	if strings.TrimSpace(text) == "" {
		return SkillExtraction{}, ErrInvalidInput
	}

	return SkillExtraction{
		Skills:     u.extractor.Extract(text),
		ByCategory: u.extractor.ExtractByCategory(text),
	}, nil
}
