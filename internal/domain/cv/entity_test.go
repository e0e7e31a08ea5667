package cv

import (
	"reflect"
	"strings"
	"testing"
)

func TestCombinedSkillsDedupesInOrder(t *testing.T) {
	p := &Profile{
		TechnicalSkills: []string{"Python", "Django"},
		SoftSkills:      []string{"Communication"},
		AllSkills:       []string{"python", "  ", "SQL"},
	}

	got := p.CombinedSkills()
	want := []string{"python", "django", "communication", "sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CombinedSkills = %v, want %v", got, want)
	}
}

func TestSearchableTextIncludesAllSections(t *testing.T) {
	p := &Profile{
		Summary:         "backend developer",
		TechnicalSkills: []string{"python"},
		Experiences: []Experience{
			{Position: "Engineer", Description: "built services", SkillsUsed: []string{"django"}},
		},
		Education: []Education{
			{Degree: "BSc", FieldOfStudy: "computer science"},
		},
		RawText: "full resume text",
	}

	text := p.SearchableText()
	for _, want := range []string{"backend developer", "python", "Engineer", "built services", "django", "computer science", "BSc", "full resume text"} {
		if !strings.Contains(text, want) {
			t.Fatalf("SearchableText missing %q: %q", want, text)
		}
	}
}

func TestEducationLevelRank(t *testing.T) {
	if !EducationPhD.AtLeast(EducationBachelor) {
		t.Fatalf("phd should rank at least bachelor")
	}
	if EducationAssociate.AtLeast(EducationMaster) {
		t.Fatalf("associate should not rank at least master")
	}
	if EducationOther.Rank() != 0 || EducationLevel("??").Rank() != 0 {
		t.Fatalf("unknown levels must rank 0")
	}
}
