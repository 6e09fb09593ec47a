package usecase

import (
	"context"
	"errors"
	"fmt"

	"talent-match/internal/domain/completeness"
	"talent-match/internal/domain/level"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileInput struct {
	FirstName         string
	LastName          string
	Phone             string
	RegionID          *uuid.UUID
	Headline          string
	Bio               string
	YearsOfExperience int
	HasCV             bool
	Education         []seeker.EducationRecord
}

type PreferencesResult struct {
	Preferences            seeker.Preferences
	CompletenessPercentage int
}

type AddUserSkillInput struct {
	SkillID          uuid.UUID
	ProficiencyLevel int
	YearsExperience  *int
}

type UpdateUserSkillInput struct {
	ProficiencyLevel int
	YearsExperience  *int
}

type UserSkillItem struct {
	ID               uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
	YearsExperience  *int
}

type UserSkillResult struct {
	Skill                  UserSkillItem
	CompletenessPercentage int
}

// ProfileUsecase covers every seeker-side write. Each write recomputes the
// profile completeness in the same transaction and reports the fresh value.
type ProfileUsecase interface {
	SaveProfile(ctx context.Context, seekerID uuid.UUID, in ProfileInput) (seeker.Profile, error)
	SavePreferences(ctx context.Context, seekerID uuid.UUID, prefs seeker.Preferences) (PreferencesResult, error)
	ListSkills(ctx context.Context, seekerID uuid.UUID) ([]UserSkillItem, error)
	AddSkill(ctx context.Context, seekerID uuid.UUID, in AddUserSkillInput) (UserSkillResult, error)
	UpdateSkill(ctx context.Context, seekerID, skillID uuid.UUID, in UpdateUserSkillInput) (UserSkillResult, error)
	RemoveSkill(ctx context.Context, seekerID, skillID uuid.UUID) (int, error)
}

type Profile struct {
	tx      repository.Transactor
	skills  repository.UserSkillRepository
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

func NewProfileUsecase(tx repository.Transactor, skills repository.UserSkillRepository, catalog repository.CatalogRepository, logger *zap.Logger) *Profile {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Profile{tx: tx, skills: skills, catalog: catalog, logger: logger}
}

func (u *Profile) SaveProfile(ctx context.Context, seekerID uuid.UUID, in ProfileInput) (seeker.Profile, error) {
	if seekerID == uuid.Nil {
		return seeker.Profile{}, ErrInvalidInput
	}
	if in.YearsOfExperience < 0 {
		return seeker.Profile{}, fmt.Errorf("%w: years of experience %d", ErrInvalidRange, in.YearsOfExperience)
	}
	for _, e := range in.Education {
		if !e.Level.Valid() {
			return seeker.Profile{}, fmt.Errorf("%w: education level %d", ErrInvalidRange, int(e.Level))
		}
	}
	if in.RegionID != nil && *in.RegionID != uuid.Nil {
		ok, err := u.catalog.RegionExists(ctx, *in.RegionID)
		if err != nil {
			return seeker.Profile{}, dataAccess("region exists", err)
		}
		if !ok {
			return seeker.Profile{}, ErrRegionNotFound
		}
	}

	var saved seeker.Profile
	pct, err := u.write(ctx, seekerID, false, func(s repository.Stores) error {
		var err error
		saved, err = s.Profiles.SaveProfile(ctx, seeker.Profile{
			ID:                seekerID,
			FirstName:         in.FirstName,
			LastName:          in.LastName,
			Phone:             in.Phone,
			RegionID:          in.RegionID,
			Headline:          in.Headline,
			Bio:               in.Bio,
			YearsOfExperience: in.YearsOfExperience,
			HasCV:             in.HasCV,
			Education:         in.Education,
		})
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrSeekerNotFound
			}
			return dataAccess("save profile", err)
		}
		return nil
	})
	if err != nil {
		return seeker.Profile{}, err
	}
	saved.CompletenessPercentage = pct
	return saved, nil
}

func (u *Profile) SavePreferences(ctx context.Context, seekerID uuid.UUID, prefs seeker.Preferences) (PreferencesResult, error) {
	if seekerID == uuid.Nil {
		return PreferencesResult{}, ErrInvalidInput
	}
	if !prefs.Visibility.Valid() {
		return PreferencesResult{}, fmt.Errorf("%w: profile visibility %q", ErrInvalidInput, prefs.Visibility)
	}
	pct, err := u.write(ctx, seekerID, true, func(s repository.Stores) error {
		if err := s.Profiles.SavePreferences(ctx, seekerID, prefs); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrSeekerNotFound
			}
			return dataAccess("save preferences", err)
		}
		return nil
	})
	if err != nil {
		return PreferencesResult{}, err
	}
	return PreferencesResult{Preferences: prefs, CompletenessPercentage: pct}, nil
}

func (u *Profile) ListSkills(ctx context.Context, seekerID uuid.UUID) ([]UserSkillItem, error) {
	items, err := u.skills.FindByUserID(ctx, seekerID)
	if err != nil {
		return nil, dataAccess("list user skills", err)
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toUserSkillItem(it))
	}
	return out, nil
}

func (u *Profile) AddSkill(ctx context.Context, seekerID uuid.UUID, in AddUserSkillInput) (UserSkillResult, error) {
	if seekerID == uuid.Nil || in.SkillID == uuid.Nil {
		return UserSkillResult{}, ErrInvalidInput
	}
	if err := validateUserSkill(in.ProficiencyLevel, in.YearsExperience); err != nil {
		return UserSkillResult{}, err
	}

	exists, err := u.catalog.SkillExists(ctx, in.SkillID)
	if err != nil {
		return UserSkillResult{}, dataAccess("skill exists", err)
	}
	if !exists {
		return UserSkillResult{}, ErrSkillNotFound
	}

	var created repository.UserSkill
	pct, err := u.write(ctx, seekerID, true, func(s repository.Stores) error {
		var err error
		created, err = s.UserSkills.Create(ctx, repository.UserSkill{
			ID:               uuid.New(),
			UserID:           seekerID,
			SkillID:          in.SkillID,
			ProficiencyLevel: in.ProficiencyLevel,
			YearsExperience:  in.YearsExperience,
		})
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicate):
				return ErrSkillAlreadyExists
			case errors.Is(err, repository.ErrNotFound):
				return ErrSeekerNotFound
			}
			return dataAccess("create user skill", err)
		}
		return nil
	})
	if err != nil {
		return UserSkillResult{}, err
	}
	return UserSkillResult{Skill: toUserSkillItem(created), CompletenessPercentage: pct}, nil
}

func (u *Profile) UpdateSkill(ctx context.Context, seekerID, skillID uuid.UUID, in UpdateUserSkillInput) (UserSkillResult, error) {
	if seekerID == uuid.Nil || skillID == uuid.Nil {
		return UserSkillResult{}, ErrInvalidInput
	}
	if err := validateUserSkill(in.ProficiencyLevel, in.YearsExperience); err != nil {
		return UserSkillResult{}, err
	}

	var updated repository.UserSkill
	pct, err := u.write(ctx, seekerID, true, func(s repository.Stores) error {
		var err error
		updated, err = s.UserSkills.Update(ctx, repository.UserSkill{
			UserID:           seekerID,
			SkillID:          skillID,
			ProficiencyLevel: in.ProficiencyLevel,
			YearsExperience:  in.YearsExperience,
		})
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrSkillNotFound
			}
			return dataAccess("update user skill", err)
		}
		return nil
	})
	if err != nil {
		return UserSkillResult{}, err
	}
	return UserSkillResult{Skill: toUserSkillItem(updated), CompletenessPercentage: pct}, nil
}

func (u *Profile) RemoveSkill(ctx context.Context, seekerID, skillID uuid.UUID) (int, error) {
	if seekerID == uuid.Nil || skillID == uuid.Nil {
		return 0, ErrInvalidInput
	}
	return u.write(ctx, seekerID, true, func(s repository.Stores) error {
		if err := s.UserSkills.DeleteUserSkill(ctx, seekerID, skillID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrSkillNotFound
			}
			return dataAccess("delete user skill", err)
		}
		return nil
	})
}

// write runs fn and the completeness refresh in one transaction with the
// profile row locked, so concurrent writers cannot store a percentage computed
// from data the other one replaced. SaveProfile may create the row and so
// passes requireProfile false.
func (u *Profile) write(ctx context.Context, seekerID uuid.UUID, requireProfile bool, fn func(s repository.Stores) error) (int, error) {
	var (
		pct int
		agg seeker.Aggregate
	)
	err := u.tx.InTx(ctx, func(s repository.Stores) error {
		if err := s.Profiles.Lock(ctx, seekerID); err != nil {
			switch {
			case !errors.Is(err, repository.ErrNotFound):
				return dataAccess("lock profile", err)
			case requireProfile:
				return ErrSeekerNotFound
			}
		}
		if err := fn(s); err != nil {
			return err
		}

		var err error
		if agg, err = loadSeeker(ctx, s.Profiles, seekerID); err != nil {
			return err
		}
		pct = completeness.Seeker(agg)
		if err := s.Profiles.UpdateCompleteness(ctx, seekerID, pct); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrSeekerNotFound
			}
			return dataAccess("update completeness", err)
		}
		return nil
	})
	if err != nil {
		return 0, txError("profile transaction", err)
	}

	u.logger.Debug("completeness refreshed",
		zap.String("table", completeness.SeekerTable().Kind()),
		zap.String("seeker_id", seekerID.String()),
		zap.Int("completeness", pct),
		zap.Strings("missing", completeness.SeekerTable().Missing(agg)),
	)
	return pct, nil
}

func validateUserSkill(proficiency int, years *int) error {
	if !level.ValidProficiency(proficiency) {
		return fmt.Errorf("%w: proficiency %d", ErrInvalidRange, proficiency)
	}
	if years != nil && *years < 0 {
		return fmt.Errorf("%w: years of experience %d", ErrInvalidRange, *years)
	}
	return nil
}

func toUserSkillItem(us repository.UserSkill) UserSkillItem {
	return UserSkillItem{
		ID:               us.ID,
		SkillID:          us.SkillID,
		SkillName:        us.SkillName,
		ProficiencyLevel: us.ProficiencyLevel,
		YearsExperience:  us.YearsExperience,
	}
}
