package dto

import (
	"time"

	"github.com/google/uuid"
)

type SkillRequirementRequest struct {
	SkillID            uuid.UUID `json:"skill_id"`
	MinimumProficiency int       `json:"minimum_proficiency"`
}

type LanguageRequirementRequest struct {
	LanguageID   uuid.UUID `json:"language_id"`
	MinimumLevel string    `json:"minimum_level"`
}

type JobRequest struct {
	Title               string                       `json:"title"`
	Description         string                       `json:"description"`
	Status              string                       `json:"status"`
	RegionID            *uuid.UUID                   `json:"region_id"`
	WorkModality        string                       `json:"work_modality"`
	IsRemoteAllowed     bool                         `json:"is_remote_allowed"`
	SalaryMin           *int                         `json:"salary_min"`
	SalaryMax           *int                         `json:"salary_max"`
	YearsExperienceMin  *int                         `json:"years_experience_min"`
	YearsExperienceMax  *int                         `json:"years_experience_max"`
	AgeMin              *int                         `json:"age_min"`
	AgeMax              *int                         `json:"age_max"`
	EducationLevel      string                       `json:"education_level"`
	ApplicationDeadline *time.Time                   `json:"application_deadline"`
	Accommodations      []string                     `json:"accommodations"`
	RequiredSkills      []SkillRequirementRequest    `json:"required_skills"`
	PreferredSkills     []SkillRequirementRequest    `json:"preferred_skills"`
	RequiredLanguages   []LanguageRequirementRequest `json:"required_languages"`
}

type JobResponse struct {
	ID                     uuid.UUID  `json:"id"`
	CompanyID              uuid.UUID  `json:"company_id"`
	Title                  string     `json:"title"`
	Status                 string     `json:"status"`
	WorkModality           string     `json:"work_modality"`
	ApplicationDeadline    *time.Time `json:"application_deadline"`
	Matchable              bool       `json:"matchable"`
	CompletenessPercentage int        `json:"completeness_percentage"`
	UpdatedAt              time.Time  `json:"updated_at"`
}
