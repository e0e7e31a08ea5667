package cv

import (
	"strings"
	"time"
)

type EducationLevel string

const (
	EducationHighSchool EducationLevel = "high_school"
	EducationAssociate  EducationLevel = "associate"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationPhD        EducationLevel = "phd"
	EducationOther      EducationLevel = "other"
)

// Rank returns the ordinal position of the level. "other" and unknown
// values rank below every known level.
func (l EducationLevel) Rank() int {
	switch l {
	case EducationHighSchool:
		return 1
	case EducationAssociate:
		return 2
	case EducationBachelor:
		return 3
	case EducationMaster:
		return 4
	case EducationPhD:
		return 5
	default:
		return 0
	}
}

func (l EducationLevel) AtLeast(other EducationLevel) bool {
	return l.Rank() >= other.Rank()
}

type Education struct {
	Institution  string         `json:"institution,omitempty"`
	Degree       string         `json:"degree,omitempty"`
	Level        EducationLevel `json:"level,omitempty"`
	FieldOfStudy string         `json:"field_of_study,omitempty"`
	StartYear    int            `json:"start_year,omitempty"`
	EndYear      int            `json:"end_year,omitempty"`
}

type Experience struct {
	Company     string   `json:"company,omitempty"`
	Position    string   `json:"position,omitempty"`
	StartYear   int      `json:"start_year,omitempty"`
	EndYear     int      `json:"end_year,omitempty"`
	IsCurrent   bool     `json:"is_current,omitempty"`
	Description string   `json:"description,omitempty"`
	SkillsUsed  []string `json:"skills_used,omitempty"`
}

// Profile is a structured candidate resume. Parsing from PDF/DOCX happens
// upstream; the matching core consumes the extracted form only.
type Profile struct {
	ID string `json:"cv_id"`

	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`

	Summary string `json:"summary,omitempty"`

	TechnicalSkills []string `json:"technical_skills,omitempty"`
	SoftSkills      []string `json:"soft_skills,omitempty"`
	AllSkills       []string `json:"all_skills,omitempty"`

	Experiences          []Experience `json:"experiences,omitempty"`
	TotalExperienceYears float64      `json:"total_experience_years"`

	Education        []Education    `json:"education,omitempty"`
	HighestEducation EducationLevel `json:"highest_education,omitempty"`

	RawText string `json:"raw_text,omitempty"`

	ExtractedAt time.Time `json:"extracted_at,omitempty"`
}

// CombinedSkills merges technical, soft and pre-tagged skills, lowercased
// and deduplicated. First-seen order is preserved so downstream set math
// stays deterministic.
func (p *Profile) CombinedSkills() []string {
	if p == nil {
		return nil
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, len(p.TechnicalSkills)+len(p.SoftSkills)+len(p.AllSkills))
	add := func(skills []string) {
		for _, s := range skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	add(p.TechnicalSkills)
	add(p.SoftSkills)
	add(p.AllSkills)
	return out
}

// SearchableText concatenates every free-text field used for vectorization
// and skill extraction: summary, skill lists, experience entries, education
// fields, then the raw resume text.
func (p *Profile) SearchableText() string {
	if p == nil {
		return ""
	}

	parts := make([]string, 0, 8)
	if p.Summary != "" {
		parts = append(parts, p.Summary)
	}
	parts = append(parts, p.TechnicalSkills...)
	parts = append(parts, p.SoftSkills...)

	for _, exp := range p.Experiences {
		if exp.Position != "" {
			parts = append(parts, exp.Position)
		}
		if exp.Description != "" {
			parts = append(parts, exp.Description)
		}
		parts = append(parts, exp.SkillsUsed...)
	}

	for _, edu := range p.Education {
		if edu.FieldOfStudy != "" {
			parts = append(parts, edu.FieldOfStudy)
		}
		if edu.Degree != "" {
			parts = append(parts, edu.Degree)
		}
	}

	if p.RawText != "" {
		parts = append(parts, p.RawText)
	}

	return strings.Join(parts, " ")
}
