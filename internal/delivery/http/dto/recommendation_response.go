package dto

import (
	"time"

	"github.com/google/uuid"
)

type JobRecommendationResponse struct {
	JobID        uuid.UUID              `json:"job_id"`
	CompanyID    uuid.UUID              `json:"company_id"`
	CompanyName  string                 `json:"company_name"`
	Title        string                 `json:"title"`
	RegionID     *uuid.UUID             `json:"region_id"`
	WorkModality string                 `json:"work_modality"`
	Deadline     *time.Time             `json:"application_deadline"`
	Score        int                    `json:"score"`
	Breakdown    ScoreBreakdownResponse `json:"breakdown"`
}

type CandidateRecommendationResponse struct {
	SeekerID            uuid.UUID              `json:"seeker_id"`
	FirstName           string                 `json:"first_name"`
	LastName            string                 `json:"last_name"`
	Headline            string                 `json:"headline"`
	RegionID            *uuid.UUID             `json:"region_id"`
	ProfileCompleteness int                    `json:"profile_completeness"`
	Score               int                    `json:"score"`
	Breakdown           ScoreBreakdownResponse `json:"breakdown"`
}
