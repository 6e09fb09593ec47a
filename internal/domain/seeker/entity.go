package seeker

import (
	"fmt"
	"strings"
	"time"

	"talent-match/internal/domain/level"

	"github.com/google/uuid"
)

type Visibility string

const (
	VisibilityPublic      Visibility = "public"
	VisibilityHidden      Visibility = "hidden"
	VisibilityAppliedOnly Visibility = "applied_only"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityHidden, VisibilityAppliedOnly:
		return true
	}
	return false
}

func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown profile visibility %q", level.ErrInvalidRange, s)
	}
	return v, nil
}

type Profile struct {
	ID                     uuid.UUID
	FirstName              string
	LastName               string
	Phone                  string
	RegionID               *uuid.UUID
	Headline               string
	Bio                    string
	YearsOfExperience      int
	HasCV                  bool
	Education              []EducationRecord
	CompletenessPercentage int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type EducationRecord struct {
	Level       level.Education
	Institution string
	Completed   bool
}

type Skill struct {
	SkillID           uuid.UUID
	SkillName         string
	Proficiency       int
	YearsOfExperience *int
}

type Language struct {
	LanguageID   uuid.UUID
	LanguageName string
	Level        level.Language
}

type Disability struct {
	Category               string
	RequiresAccommodations bool
	Accommodations         []string
}

type Preferences struct {
	Visibility         Visibility
	ShowDisabilityInfo bool
}

func DefaultPreferences() Preferences {
	return Preferences{Visibility: VisibilityPublic, ShowDisabilityInfo: false}
}

// Aggregate is a fully hydrated seeker as returned by the profile store.
type Aggregate struct {
	Profile     Profile
	Skills      []Skill
	Languages   []Language
	Disability  *Disability
	Preferences Preferences
}

// HighestEducation returns the most senior completed education level.
func (a Aggregate) HighestEducation() level.Education {
	best := level.EducationNone
	for _, e := range a.Profile.Education {
		if !e.Completed || !e.Level.Valid() {
			continue
		}
		if e.Level > best {
			best = e.Level
		}
	}
	return best
}

// Revision changes on every write to the profile or any of its relations.
func (a Aggregate) Revision() int64 {
	return a.Profile.UpdatedAt.UnixNano()
}

func (a Aggregate) Validate() error {
	if a.Profile.YearsOfExperience < 0 {
		return fmt.Errorf("%w: years of experience %d", level.ErrInvalidRange, a.Profile.YearsOfExperience)
	}
	for _, s := range a.Skills {
		if !level.ValidProficiency(s.Proficiency) {
			return fmt.Errorf("%w: skill %s proficiency %d", level.ErrInvalidRange, s.SkillID, s.Proficiency)
		}
		if s.YearsOfExperience != nil && *s.YearsOfExperience < 0 {
			return fmt.Errorf("%w: skill %s years %d", level.ErrInvalidRange, s.SkillID, *s.YearsOfExperience)
		}
	}
	for _, l := range a.Languages {
		if !l.Level.Valid() {
			return fmt.Errorf("%w: language %s level %d", level.ErrInvalidRange, l.LanguageID, int(l.Level))
		}
	}
	for _, e := range a.Profile.Education {
		if !e.Level.Valid() {
			return fmt.Errorf("%w: education level %d", level.ErrInvalidRange, int(e.Level))
		}
	}
	if a.Preferences.Visibility != "" && !a.Preferences.Visibility.Valid() {
		return fmt.Errorf("%w: profile visibility %q", level.ErrInvalidRange, a.Preferences.Visibility)
	}
	return nil
}
