package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talent-match/internal/domain/completeness"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/level"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobInput struct {
	Title               string
	Description         string
	Status              job.Status
	RegionID            *uuid.UUID
	WorkModality        job.WorkModality
	IsRemoteAllowed     bool
	SalaryMin           *int
	SalaryMax           *int
	YearsExperienceMin  *int
	YearsExperienceMax  *int
	AgeMin              *int
	AgeMax              *int
	EducationLevel      level.Education
	ApplicationDeadline *time.Time
	Accommodations      []string
	RequiredSkills      []job.SkillRequirement
	PreferredSkills     []job.SkillRequirement
	RequiredLanguages   []job.LanguageRequirement
}

type JobUsecase interface {
	SaveJob(ctx context.Context, companyID, jobID uuid.UUID, in JobInput) (job.Aggregate, error)
}

type Jobs struct {
	tx        repository.Transactor
	companies repository.CompanyRepository
	catalog   repository.CatalogRepository
	logger    *zap.Logger
}

func NewJobUsecase(tx repository.Transactor, companies repository.CompanyRepository, catalog repository.CatalogRepository, logger *zap.Logger) *Jobs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Jobs{tx: tx, companies: companies, catalog: catalog, logger: logger}
}

// SaveJob creates or replaces a posting owned by companyID and returns it
// with its freshly computed completeness. The posting and its percentage are
// written in one transaction; the upsert holds the job row until commit.
func (u *Jobs) SaveJob(ctx context.Context, companyID, jobID uuid.UUID, in JobInput) (job.Aggregate, error) {
	if companyID == uuid.Nil || jobID == uuid.Nil {
		return job.Aggregate{}, ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = job.StatusDraft
	}
	if in.WorkModality == "" {
		in.WorkModality = job.ModalityOnSite
	}

	agg := job.Aggregate{
		Job: job.Job{
			ID:                  jobID,
			CompanyID:           companyID,
			Title:               in.Title,
			Description:         in.Description,
			Status:              in.Status,
			RegionID:            in.RegionID,
			WorkModality:        in.WorkModality,
			IsRemoteAllowed:     in.IsRemoteAllowed,
			SalaryMin:           in.SalaryMin,
			SalaryMax:           in.SalaryMax,
			YearsExperienceMin:  in.YearsExperienceMin,
			YearsExperienceMax:  in.YearsExperienceMax,
			AgeMin:              in.AgeMin,
			AgeMax:              in.AgeMax,
			EducationLevel:      in.EducationLevel,
			ApplicationDeadline: in.ApplicationDeadline,
			Accommodations:      in.Accommodations,
		},
		RequiredSkills:    in.RequiredSkills,
		PreferredSkills:   in.PreferredSkills,
		RequiredLanguages: in.RequiredLanguages,
	}
	if err := agg.Validate(); err != nil {
		return job.Aggregate{}, err
	}
	if err := u.checkReferences(ctx, agg); err != nil {
		return job.Aggregate{}, err
	}

	var saved job.Aggregate
	err := u.tx.InTx(ctx, func(s repository.Stores) error {
		var err error
		saved, err = s.Jobs.Save(ctx, agg)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrJobNotFound
			}
			return dataAccess("save job", err)
		}
		saved.Job.CompletenessPercentage = completeness.Job(saved)
		if err := s.Jobs.UpdateCompleteness(ctx, saved.Job.ID, saved.Job.CompletenessPercentage); err != nil {
			return dataAccess("update job completeness", err)
		}
		return nil
	})
	if err != nil {
		return job.Aggregate{}, txError("job transaction", err)
	}
	pct := saved.Job.CompletenessPercentage

	u.logger.Debug("job saved",
		zap.String("job_id", saved.Job.ID.String()),
		zap.String("status", string(saved.Job.Status)),
		zap.Int("completeness", pct),
		zap.Strings("missing", completeness.JobTable().Missing(saved)),
	)
	return saved, nil
}

func (u *Jobs) checkReferences(ctx context.Context, agg job.Aggregate) error {
	if _, err := u.companies.Get(ctx, agg.Job.CompanyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return dataAccess("load company", err)
	}
	if id := agg.Job.RegionID; id != nil && *id != uuid.Nil {
		ok, err := u.catalog.RegionExists(ctx, *id)
		if err != nil {
			return dataAccess("region exists", err)
		}
		if !ok {
			return ErrRegionNotFound
		}
	}
	for _, set := range [][]job.SkillRequirement{agg.RequiredSkills, agg.PreferredSkills} {
		for _, r := range set {
			ok, err := u.catalog.SkillExists(ctx, r.SkillID)
			if err != nil {
				return dataAccess("skill exists", err)
			}
			if !ok {
				return fmt.Errorf("%w: %s", ErrSkillNotFound, r.SkillID)
			}
		}
	}
	for _, r := range agg.RequiredLanguages {
		ok, err := u.catalog.LanguageExists(ctx, r.LanguageID)
		if err != nil {
			return dataAccess("language exists", err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrLanguageNotFound, r.LanguageID)
		}
	}
	return nil
}
