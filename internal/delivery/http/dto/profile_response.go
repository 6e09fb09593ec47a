package dto

import (
	"time"

	"github.com/google/uuid"
)

type EducationRecordRequest struct {
	Level       string `json:"level"`
	Institution string `json:"institution"`
	Completed   bool   `json:"completed"`
}

type ProfileRequest struct {
	FirstName         string                   `json:"first_name"`
	LastName          string                   `json:"last_name"`
	Phone             string                   `json:"phone"`
	RegionID          *uuid.UUID               `json:"region_id"`
	Headline          string                   `json:"headline"`
	Bio               string                   `json:"bio"`
	YearsOfExperience int                      `json:"years_of_experience"`
	HasCV             bool                     `json:"has_cv"`
	Education         []EducationRecordRequest `json:"education"`
}

type ProfileResponse struct {
	ID                     uuid.UUID  `json:"id"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	Phone                  string     `json:"phone"`
	RegionID               *uuid.UUID `json:"region_id"`
	Headline               string     `json:"headline"`
	Bio                    string     `json:"bio"`
	YearsOfExperience      int        `json:"years_of_experience"`
	HasCV                  bool       `json:"has_cv"`
	CompletenessPercentage int        `json:"completeness_percentage"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

type PreferencesRequest struct {
	Visibility         string `json:"visibility"`
	ShowDisabilityInfo bool   `json:"show_disability_info"`
}

type PreferencesResponse struct {
	Visibility             string `json:"visibility"`
	ShowDisabilityInfo     bool   `json:"show_disability_info"`
	CompletenessPercentage int    `json:"completeness_percentage"`
}
