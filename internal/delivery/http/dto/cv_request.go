package dto

import (
	"resume-screener/internal/domain/cv"
)

type EducationRequest struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	Level        string `json:"level" validate:"omitempty,oneof=high_school associate bachelor master phd other"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    int    `json:"start_year" validate:"omitempty,gte=1900"`
	EndYear      int    `json:"end_year" validate:"omitempty,gte=1900"`
}

type ExperienceRequest struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartYear   int      `json:"start_year" validate:"omitempty,gte=1900"`
	EndYear     int      `json:"end_year" validate:"omitempty,gte=1900"`
	IsCurrent   bool     `json:"is_current"`
	Description string   `json:"description"`
	SkillsUsed  []string `json:"skills_used"`
}

type SaveCVRequest struct {
	CVID string `json:"cv_id"`

	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`

	Summary string `json:"summary"`

	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	AllSkills       []string `json:"all_skills"`

	Experiences          []ExperienceRequest `json:"experiences" validate:"dive"`
	TotalExperienceYears float64             `json:"total_experience_years" validate:"gte=0"`

	Education        []EducationRequest `json:"education" validate:"dive"`
	HighestEducation string             `json:"highest_education" validate:"omitempty,oneof=high_school associate bachelor master phd other"`

	RawText string `json:"raw_text"`
}

func (r SaveCVRequest) ToDomain() *cv.Profile {
	p := &cv.Profile{
		ID:                   r.CVID,
		Name:                 r.Name,
		Email:                r.Email,
		Phone:                r.Phone,
		Location:             r.Location,
		Summary:              r.Summary,
		TechnicalSkills:      r.TechnicalSkills,
		SoftSkills:           r.SoftSkills,
		AllSkills:            r.AllSkills,
		TotalExperienceYears: r.TotalExperienceYears,
		HighestEducation:     cv.EducationLevel(r.HighestEducation),
		RawText:              r.RawText,
	}

	for _, e := range r.Experiences {
		p.Experiences = append(p.Experiences, cv.Experience{
			Company:     e.Company,
			Position:    e.Position,
			StartYear:   e.StartYear,
			EndYear:     e.EndYear,
			IsCurrent:   e.IsCurrent,
			Description: e.Description,
			SkillsUsed:  e.SkillsUsed,
		})
	}
	for _, e := range r.Education {
		p.Education = append(p.Education, cv.Education{
			Institution:  e.Institution,
			Degree:       e.Degree,
			Level:        cv.EducationLevel(e.Level),
			FieldOfStudy: e.FieldOfStudy,
			StartYear:    e.StartYear,
			EndYear:      e.EndYear,
		})
	}
	return p
}
