package dto

import "github.com/google/uuid"

type SkillRefResponse struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
}

type LanguageRefResponse struct {
	LanguageID   uuid.UUID `json:"language_id"`
	LanguageName string    `json:"language_name"`
}

type SkillsBreakdownResponse struct {
	Score            int                `json:"score"`
	MaxScore         int                `json:"max_score"`
	MatchedRequired  []SkillRefResponse `json:"matched_required"`
	MissingRequired  []SkillRefResponse `json:"missing_required"`
	MatchedPreferred []SkillRefResponse `json:"matched_preferred"`
}

type LanguagesBreakdownResponse struct {
	Score           int                   `json:"score"`
	MaxScore        int                   `json:"max_score"`
	MatchedRequired []LanguageRefResponse `json:"matched_required"`
	MissingRequired []LanguageRefResponse `json:"missing_required"`
}

type LocationBreakdownResponse struct {
	Score              int  `json:"score"`
	MaxScore           int  `json:"max_score"`
	IsSameRegion       bool `json:"is_same_region"`
	IsRemoteCompatible bool `json:"is_remote_compatible"`
}

type ExperienceBreakdownResponse struct {
	Score       int  `json:"score"`
	MaxScore    int  `json:"max_score"`
	SeekerYears int  `json:"seeker_years"`
	RequiredMin *int `json:"required_min"`
	RequiredMax *int `json:"required_max"`
}

type EducationBreakdownResponse struct {
	Score         int    `json:"score"`
	MaxScore      int    `json:"max_score"`
	SeekerLevel   string `json:"seeker_level"`
	RequiredLevel string `json:"required_level"`
}

type AccommodationsBreakdownResponse struct {
	Score       int      `json:"score"`
	MaxScore    int      `json:"max_score"`
	Evaluated   bool     `json:"evaluated"`
	MatchedTags []string `json:"matched_tags,omitempty"`
}

type ScoreBreakdownResponse struct {
	Total          int                             `json:"total"`
	WeightsVersion string                          `json:"weights_version"`
	Skills         SkillsBreakdownResponse         `json:"skills"`
	Languages      LanguagesBreakdownResponse      `json:"languages"`
	Location       LocationBreakdownResponse       `json:"location"`
	Experience     ExperienceBreakdownResponse     `json:"experience"`
	Education      EducationBreakdownResponse      `json:"education"`
	Accommodations AccommodationsBreakdownResponse `json:"accommodations"`
}

type MatchResponse struct {
	JobID               uuid.UUID              `json:"job_id"`
	Score               int                    `json:"score"`
	AlreadyApplied      bool                   `json:"already_applied"`
	JobMatchable        bool                   `json:"job_matchable"`
	ProfileCompleteness int                    `json:"profile_completeness"`
	Breakdown           ScoreBreakdownResponse `json:"breakdown"`
}
