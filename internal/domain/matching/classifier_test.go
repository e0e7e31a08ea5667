package matching

import (
	"testing"

	"resume-screener/internal/domain/match"
)

func TestClassifyDefaultThresholds(t *testing.T) {
	c := NewClassifier(0.75, 0.50)

	cases := []struct {
		score float64
		want  match.Category
	}{
		{100, match.CategoryPotential},
		{75.01, match.CategoryPotential},
		{75.0, match.CategoryPotential},
		{74.99, match.CategoryReviewNeeded},
		{50.01, match.CategoryReviewNeeded},
		{50.0, match.CategoryReviewNeeded},
		{49.99, match.CategoryNotSuitable},
		{0, match.CategoryNotSuitable},
	}

	for _, tc := range cases {
		if got := c.Classify(tc.score); got != tc.want {
			t.Fatalf("Classify(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	c := NewClassifier(0.90, 0.60)

	if got := c.Classify(90); got != match.CategoryPotential {
		t.Fatalf("Classify(90) = %v, want potential", got)
	}
	if got := c.Classify(89.99); got != match.CategoryReviewNeeded {
		t.Fatalf("Classify(89.99) = %v, want review_needed", got)
	}
	if got := c.Classify(59.99); got != match.CategoryNotSuitable {
		t.Fatalf("Classify(59.99) = %v, want not_suitable", got)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	c := NewClassifier(0.75, 0.50)

	rank := func(cat match.Category) int {
		switch cat {
		case match.CategoryNotSuitable:
			return 0
		case match.CategoryReviewNeeded:
			return 1
		default:
			return 2
		}
	}

	prev := rank(c.Classify(0))
	for score := 0.5; score <= 100; score += 0.5 {
		cur := rank(c.Classify(score))
		if cur < prev {
			t.Fatalf("category rank decreased at score %v", score)
		}
		prev = cur
	}
}
