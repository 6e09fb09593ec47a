package job

import (
	"fmt"
	"strings"
	"time"

	"talent-match/internal/domain/level"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusActive          Status = "active"
	StatusPaused          Status = "paused"
	StatusRejected        Status = "rejected"
	StatusClosed          Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusActive, StatusPaused, StatusRejected, StatusClosed:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown job status %q", level.ErrInvalidRange, s)
	}
	return st, nil
}

type WorkModality string

const (
	ModalityOnSite WorkModality = "on_site"
	ModalityRemote WorkModality = "remote"
	ModalityHybrid WorkModality = "hybrid"
)

func (m WorkModality) Valid() bool {
	switch m {
	case ModalityOnSite, ModalityRemote, ModalityHybrid:
		return true
	}
	return false
}

func ParseWorkModality(s string) (WorkModality, error) {
	m := WorkModality(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown work modality %q", level.ErrInvalidRange, s)
	}
	return m, nil
}

// Matchable reports whether a posting in the given state may be shown or scored.
func Matchable(status Status, deadline *time.Time, now time.Time) bool {
	switch status {
	case StatusActive:
		return deadline != nil && deadline.After(now)
	case StatusDraft, StatusPendingApproval, StatusPaused, StatusRejected, StatusClosed:
		return false
	}
	return false
}

type Job struct {
	ID                     uuid.UUID
	CompanyID              uuid.UUID
	Title                  string
	Description            string
	Status                 Status
	RegionID               *uuid.UUID
	WorkModality           WorkModality
	IsRemoteAllowed        bool
	SalaryMin              *int
	SalaryMax              *int
	YearsExperienceMin     *int
	YearsExperienceMax     *int
	AgeMin                 *int
	AgeMax                 *int
	EducationLevel         level.Education
	ApplicationDeadline    *time.Time
	Accommodations         []string
	CompletenessPercentage int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (j Job) IsMatchable(now time.Time) bool {
	return Matchable(j.Status, j.ApplicationDeadline, now)
}

type SkillRequirement struct {
	SkillID            uuid.UUID
	SkillName          string
	MinimumProficiency int
}

type LanguageRequirement struct {
	LanguageID   uuid.UUID
	LanguageName string
	MinimumLevel level.Language
}

// Aggregate is a fully hydrated posting with its requirement sets.
type Aggregate struct {
	Job               Job
	RequiredSkills    []SkillRequirement
	PreferredSkills   []SkillRequirement
	RequiredLanguages []LanguageRequirement
}

func (a Aggregate) Revision() int64 {
	return a.Job.UpdatedAt.UnixNano()
}

func (a Aggregate) Validate() error {
	j := a.Job
	if j.Status != "" && !j.Status.Valid() {
		return fmt.Errorf("%w: job status %q", level.ErrInvalidRange, j.Status)
	}
	if j.WorkModality != "" && !j.WorkModality.Valid() {
		return fmt.Errorf("%w: work modality %q", level.ErrInvalidRange, j.WorkModality)
	}
	if !j.EducationLevel.Valid() {
		return fmt.Errorf("%w: education level %d", level.ErrInvalidRange, int(j.EducationLevel))
	}
	if err := validateRange("years of experience", j.YearsExperienceMin, j.YearsExperienceMax); err != nil {
		return err
	}
	if err := validateRange("salary", j.SalaryMin, j.SalaryMax); err != nil {
		return err
	}
	if err := validateRange("age", j.AgeMin, j.AgeMax); err != nil {
		return err
	}
	for _, set := range [][]SkillRequirement{a.RequiredSkills, a.PreferredSkills} {
		for _, r := range set {
			if !level.ValidProficiency(r.MinimumProficiency) {
				return fmt.Errorf("%w: skill %s minimum proficiency %d", level.ErrInvalidRange, r.SkillID, r.MinimumProficiency)
			}
		}
	}
	for _, r := range a.RequiredLanguages {
		if !r.MinimumLevel.Valid() {
			return fmt.Errorf("%w: language %s minimum level %d", level.ErrInvalidRange, r.LanguageID, int(r.MinimumLevel))
		}
	}
	return nil
}

func validateRange(name string, minV, maxV *int) error {
	if minV != nil && *minV < 0 {
		return fmt.Errorf("%w: %s minimum %d", level.ErrInvalidRange, name, *minV)
	}
	if maxV != nil && *maxV < 0 {
		return fmt.Errorf("%w: %s maximum %d", level.ErrInvalidRange, name, *maxV)
	}
	if minV != nil && maxV != nil && *maxV < *minV {
		return fmt.Errorf("%w: %s range [%d,%d]", level.ErrInvalidRange, name, *minV, *maxV)
	}
	return nil
}
