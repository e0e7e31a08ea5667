package dto

import (
	"time"

	"resume-screener/internal/domain/job"
)

type JobRequirementsRequest struct {
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	ExperienceYearsMin *int     `json:"experience_years_min" validate:"omitempty,gte=0"`
	ExperienceYearsMax *int     `json:"experience_years_max" validate:"omitempty,gte=0"`
	EducationLevel     string   `json:"education_level" validate:"omitempty,oneof=high_school associate bachelor master phd other"`
	Certifications     []string `json:"certifications"`
}

type CreateJobRequest struct {
	JobID string `json:"job_id"`

	Title       string `json:"title" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`

	Location string `json:"location"`
	IsRemote bool   `json:"is_remote"`

	Description      string `json:"description"`
	RequirementsText string `json:"requirements_text"`

	Requirements JobRequirementsRequest `json:"requirements"`

	SalaryMin      *float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salary_max" validate:"omitempty,gte=0"`
	SalaryCurrency string   `json:"salary_currency"`

	SourceURL string     `json:"source_url" validate:"omitempty,url"`
	PostedAt  *time.Time `json:"posted_at"`
}

func (r CreateJobRequest) ToDomain() *job.Posting {
	return &job.Posting{
		ID:               r.JobID,
		Title:            r.Title,
		CompanyName:      r.CompanyName,
		Location:         r.Location,
		IsRemote:         r.IsRemote,
		Description:      r.Description,
		RequirementsText: r.RequirementsText,
		Requirements: job.Requirements{
			RequiredSkills:     r.Requirements.RequiredSkills,
			PreferredSkills:    r.Requirements.PreferredSkills,
			ExperienceYearsMin: r.Requirements.ExperienceYearsMin,
			ExperienceYearsMax: r.Requirements.ExperienceYearsMax,
			EducationLevel:     r.Requirements.EducationLevel,
			Certifications:     r.Requirements.Certifications,
		},
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		SalaryCurrency: r.SalaryCurrency,
		SourceURL:      r.SourceURL,
		PostedAt:       r.PostedAt,
	}
}
