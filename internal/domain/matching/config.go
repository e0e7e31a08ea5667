package matching

import (
	"errors"
	"fmt"

	"resume-screener/internal/textsim"
)

// ErrInvalidConfiguration is wrapped by every configuration validation
// failure. Validation happens once at engine construction so bad weights
// or thresholds fail fast instead of producing silently wrong scores.
var ErrInvalidConfiguration = errors.New("invalid matching configuration")

// Weights blend the three scoring signals into the overall score.
// By convention they sum to 1.0; this is a caller precondition and is
// not enforced here.
type Weights struct {
	SkillMatch      float64
	TextSimilarity  float64
	ExperienceMatch float64
}

type Config struct {
	Weights Weights

	// Thresholds are fractions of the full score: a 0-100 overall score
	// is compared against threshold*100.
	PotentialThreshold float64
	ReviewThreshold    float64

	Vectorizer textsim.Params
}

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			SkillMatch:      0.50,
			TextSimilarity:  0.35,
			ExperienceMatch: 0.15,
		},
		PotentialThreshold: 0.75,
		ReviewThreshold:    0.50,
		Vectorizer:         textsim.DefaultParams(),
	}
}

func (c Config) Validate() error {
	if c.Weights.SkillMatch < 0 || c.Weights.TextSimilarity < 0 || c.Weights.ExperienceMatch < 0 {
		return fmt.Errorf("%w: negative weight", ErrInvalidConfiguration)
	}
	if c.PotentialThreshold < 0 || c.PotentialThreshold > 1 {
		return fmt.Errorf("%w: potential threshold %v outside [0,1]", ErrInvalidConfiguration, c.PotentialThreshold)
	}
	if c.ReviewThreshold < 0 || c.ReviewThreshold > 1 {
		return fmt.Errorf("%w: review threshold %v outside [0,1]", ErrInvalidConfiguration, c.ReviewThreshold)
	}
	if c.PotentialThreshold <= c.ReviewThreshold {
		return fmt.Errorf("%w: potential threshold must exceed review threshold", ErrInvalidConfiguration)
	}
	return nil
}
