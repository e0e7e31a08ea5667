package usecase

import (
	"resume-screener/internal/domain/matching"
	"resume-screener/internal/skill"
)

// EngineFactory builds one matching engine per request. The dictionary
// and extractor are shared immutable singletons; the engine itself owns a
// batch-scoped vector space and must not be reused across requests.
type EngineFactory struct {
	cfg       matching.Config
	dict      *skill.Dictionary
	extractor *skill.Extractor
}

func NewEngineFactory(cfg matching.Config, dict *skill.Dictionary, extractor *skill.Extractor) *EngineFactory {
	return &EngineFactory{cfg: cfg, dict: dict, extractor: extractor}
}

func (f *EngineFactory) New() (*matching.Engine, error) {
	return matching.NewEngine(f.cfg, f.dict, f.extractor)
}
