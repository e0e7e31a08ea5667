package job

import (
	"strings"
	"time"
)

// Requirements are the extracted demands of a posting. A nil experience
// bound means "no constraint" on that side.
type Requirements struct {
	RequiredSkills     []string `json:"required_skills,omitempty"`
	PreferredSkills    []string `json:"preferred_skills,omitempty"`
	ExperienceYearsMin *int     `json:"experience_years_min,omitempty"`
	ExperienceYearsMax *int     `json:"experience_years_max,omitempty"`
	EducationLevel     string   `json:"education_level,omitempty"`
	Certifications     []string `json:"certifications,omitempty"`
}

type Posting struct {
	ID string `json:"job_id"`

	Title       string `json:"title"`
	CompanyName string `json:"company_name"`

	Location string `json:"location,omitempty"`
	IsRemote bool   `json:"is_remote,omitempty"`

	Description      string `json:"description"`
	RequirementsText string `json:"requirements_text,omitempty"`

	Requirements Requirements `json:"requirements"`

	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency,omitempty"`

	Source    string     `json:"source,omitempty"`
	SourceURL string     `json:"source_url,omitempty"`
	PostedAt  *time.Time `json:"posted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
}

// FullText concatenates title, description, requirements text and both
// skill lists. This is the document the vector space sees for a posting.
func (p *Posting) FullText() string {
	if p == nil {
		return ""
	}

	parts := make([]string, 0, 5)
	for _, s := range []string{
		p.Title,
		p.Description,
		p.RequirementsText,
		strings.Join(p.Requirements.RequiredSkills, " "),
		strings.Join(p.Requirements.PreferredSkills, " "),
	} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
