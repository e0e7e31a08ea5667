package matching

import "resume-screener/internal/domain/match"

// Classifier maps a 0-100 score to a discrete category via two threshold
// bands. Lower bounds are inclusive: a score exactly at a threshold falls
// into the higher band. Pure and stateless.
type Classifier struct {
	potential float64
	review    float64
}

// NewClassifier takes thresholds as fractions of the full score
// (0.75 means 75 points). potential > review is a precondition enforced
// by Config.Validate.
func NewClassifier(potentialThreshold, reviewThreshold float64) Classifier {
	return Classifier{
		potential: potentialThreshold * 100,
		review:    reviewThreshold * 100,
	}
}

func (c Classifier) Classify(score float64) match.Category {
	switch {
	case score >= c.potential:
		return match.CategoryPotential
	case score >= c.review:
		return match.CategoryReviewNeeded
	default:
		return match.CategoryNotSuitable
	}
}
