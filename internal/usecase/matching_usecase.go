package usecase

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type MatchResult struct {
	Score               int
	Breakdown           matching.ScoreBreakdown
	AlreadyApplied      bool
	JobMatchable        bool
	ProfileCompleteness int
}

type MatchingUsecase interface {
	MatchScore(ctx context.Context, seekerID, jobID uuid.UUID) (MatchResult, error)
}

type Matching struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	apps     repository.ApplicationRepository
	scoring  *Scoring
	now      func() time.Time
}

func NewMatchingUsecase(profiles repository.ProfileRepository, jobs repository.JobRepository, apps repository.ApplicationRepository, scoring *Scoring) *Matching {
	return &Matching{profiles: profiles, jobs: jobs, apps: apps, scoring: scoring, now: time.Now}
}

// MatchScore scores one pair. The job does not need to be matchable; callers
// use JobMatchable and AlreadyApplied to decide what to allow next.
func (u *Matching) MatchScore(ctx context.Context, seekerID, jobID uuid.UUID) (MatchResult, error) {
	if seekerID == uuid.Nil || jobID == uuid.Nil {
		return MatchResult{}, ErrInvalidInput
	}

	var (
		sk      seeker.Aggregate
		jb      job.Aggregate
		applied bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sk, err = loadSeeker(gctx, u.profiles, seekerID)
		return err
	})
	g.Go(func() error {
		var err error
		jb, err = loadJob(gctx, u.jobs, jobID)
		return err
	})
	g.Go(func() error {
		var err error
		applied, err = u.apps.Exists(gctx, jobID, seekerID)
		if err != nil {
			return dataAccess("application exists", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return MatchResult{}, err
	}

	b, err := u.scoring.score(ctx, sk, jb)
	if err != nil {
		return MatchResult{}, err
	}

	return MatchResult{
		Score:               b.Total,
		Breakdown:           b,
		AlreadyApplied:      applied,
		JobMatchable:        jb.Job.IsMatchable(u.now()),
		ProfileCompleteness: sk.Profile.CompletenessPercentage,
	}, nil
}

func loadSeeker(ctx context.Context, repo repository.ProfileRepository, seekerID uuid.UUID) (seeker.Aggregate, error) {
	sk, err := repo.Get(ctx, seekerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return seeker.Aggregate{}, ErrSeekerNotFound
		}
		return seeker.Aggregate{}, dataAccess("load seeker", err)
	}
	return sk, nil
}

func loadJob(ctx context.Context, repo repository.JobRepository, jobID uuid.UUID) (job.Aggregate, error) {
	jb, err := repo.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.Aggregate{}, ErrJobNotFound
		}
		return job.Aggregate{}, dataAccess("load job", err)
	}
	return jb, nil
}
