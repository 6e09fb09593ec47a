package matching

import (
	"talent-match/internal/domain/level"

	"github.com/google/uuid"
)

type CategoryScore struct {
	Score    int
	MaxScore int
}

type SkillRef struct {
	SkillID   uuid.UUID
	SkillName string
}

type LanguageRef struct {
	LanguageID   uuid.UUID
	LanguageName string
}

type SkillsBreakdown struct {
	CategoryScore
	MatchedRequired  []SkillRef
	MissingRequired  []SkillRef
	MatchedPreferred []SkillRef
}

type LanguagesBreakdown struct {
	CategoryScore
	MatchedRequired []LanguageRef
	MissingRequired []LanguageRef
}

type LocationBreakdown struct {
	CategoryScore
	IsSameRegion       bool
	IsRemoteCompatible bool
}

type ExperienceBreakdown struct {
	CategoryScore
	SeekerYears int
	RequiredMin *int
	RequiredMax *int
}

type EducationBreakdown struct {
	CategoryScore
	SeekerLevel   level.Education
	RequiredLevel level.Education
}

// AccommodationsBreakdown only carries tags when the seeker discloses disability information.
type AccommodationsBreakdown struct {
	CategoryScore
	Evaluated   bool
	MatchedTags []string
}

// ScoreBreakdown is additive: Total always equals the sum of the category scores.
type ScoreBreakdown struct {
	Total          int
	WeightsVersion string
	Skills         SkillsBreakdown
	Languages      LanguagesBreakdown
	Location       LocationBreakdown
	Experience     ExperienceBreakdown
	Education      EducationBreakdown
	Accommodations AccommodationsBreakdown
}

func (b ScoreBreakdown) Categories() []CategoryScore {
	return []CategoryScore{
		b.Skills.CategoryScore,
		b.Languages.CategoryScore,
		b.Location.CategoryScore,
		b.Experience.CategoryScore,
		b.Education.CategoryScore,
		b.Accommodations.CategoryScore,
	}
}

func (b ScoreBreakdown) Sum() int {
	total := 0
	for _, c := range b.Categories() {
		total += c.Score
	}
	return total
}
