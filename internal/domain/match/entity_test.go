package match

import "testing"

func rankingWithCategories(cats ...Category) *Ranking {
	r := &Ranking{}
	for i, c := range cats {
		r.Results = append(r.Results, Result{JobID: string(rune('a' + i)), Score: Score{Category: c}})
		if c == CategoryPotential {
			r.PotentialCount++
		}
	}
	return r
}

func TestPotentialJobs(t *testing.T) {
	r := rankingWithCategories(CategoryPotential, CategoryNotSuitable, CategoryPotential, CategoryReviewNeeded)

	got := r.PotentialJobs()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, res := range got {
		if res.Score.Category != CategoryPotential {
			t.Fatalf("non-potential result %v", res.Score.Category)
		}
	}
}

func TestTopN(t *testing.T) {
	r := rankingWithCategories(CategoryPotential, CategoryReviewNeeded, CategoryNotSuitable)

	if got := r.TopN(2); len(got) != 2 {
		t.Fatalf("TopN(2) len = %d", len(got))
	}
	if got := r.TopN(10); len(got) != 3 {
		t.Fatalf("TopN(10) len = %d, want all", len(got))
	}
	if got := r.TopN(0); got != nil {
		t.Fatalf("TopN(0) = %v, want nil", got)
	}
}
