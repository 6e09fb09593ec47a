package usecase

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/domain/visibility"
	"talent-match/internal/ranking"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobFilters struct {
	// nil means true
	ExcludeApplied *bool
	RegionID       *uuid.UUID
	Modality       job.WorkModality
}

func (f JobFilters) excludeApplied() bool {
	return f.ExcludeApplied == nil || *f.ExcludeApplied
}

type JobRecommendation struct {
	Job       repository.JobRef
	Breakdown matching.ScoreBreakdown
}

type JobRecommendationPage struct {
	Items      []JobRecommendation
	TotalCount int
	HasMore    bool
	// effective page after defaults and clamping
	Limit  int
	Offset int
	// the configured pool cap cut eligible postings; TotalCount is a lower bound
	PoolTruncated bool
}

type CandidateRecommendation struct {
	Candidate repository.CandidateRef
	Breakdown matching.ScoreBreakdown
}

type CandidateRecommendationPage struct {
	Items      []CandidateRecommendation
	TotalCount int
	HasMore    bool
	// effective page after defaults and clamping
	Limit  int
	Offset int
	// the configured pool cap cut visible candidates; TotalCount is a lower bound
	PoolTruncated bool
}

type RecommendationUsecase interface {
	RecommendedJobsForSeeker(ctx context.Context, seekerID uuid.UUID, f JobFilters, p Page) (JobRecommendationPage, error)
	RecommendedCandidatesForJob(ctx context.Context, jobID uuid.UUID, p Page) (CandidateRecommendationPage, error)
}

type RecommendationOptions struct {
	Page PageConfig
	// PoolMax caps how many listed entities are ranked per request, newest
	// first. Zero ranks all of them.
	PoolMax int
	Logger  *zap.Logger
}

type Recommendation struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	apps     repository.ApplicationRepository
	scoring  *Scoring
	engine   *ranking.Engine
	pageCfg  PageConfig
	poolMax  int
	logger   *zap.Logger
	now      func() time.Time
}

func NewRecommendationUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	apps repository.ApplicationRepository,
	scoring *Scoring,
	engine *ranking.Engine,
	opts RecommendationOptions,
) *Recommendation {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommendation{
		profiles: profiles,
		jobs:     jobs,
		apps:     apps,
		scoring:  scoring,
		engine:   engine,
		pageCfg:  opts.Page.withDefaults(),
		poolMax:  opts.PoolMax,
		logger:   logger,
		now:      time.Now,
	}
}

func (u *Recommendation) RecommendedJobsForSeeker(ctx context.Context, seekerID uuid.UUID, f JobFilters, p Page) (JobRecommendationPage, error) {
	if seekerID == uuid.Nil {
		return JobRecommendationPage{}, ErrInvalidInput
	}
	if f.Modality != "" && !f.Modality.Valid() {
		return JobRecommendationPage{}, ErrInvalidInput
	}
	page, err := u.pageCfg.normalize(p)
	if err != nil {
		return JobRecommendationPage{}, err
	}

	sk, err := loadSeeker(ctx, u.profiles, seekerID)
	if err != nil {
		return JobRecommendationPage{}, err
	}
	if err := sk.Validate(); err != nil {
		return JobRecommendationPage{}, err
	}

	now := u.now()
	refs, err := u.jobs.ListActiveRefs(ctx, repository.JobFilter{
		RegionID: f.RegionID,
		Modality: f.Modality,
		Now:      now,
		Limit:    u.poolLimit(),
	})
	if err != nil {
		return JobRecommendationPage{}, dataAccess("list active jobs", err)
	}
	refs, truncated := capPool(refs, u.poolMax)
	if truncated {
		u.logger.Warn("job pool truncated",
			zap.String("seeker_id", seekerID.String()),
			zap.Int("pool_max", u.poolMax),
		)
	}

	filters := []ranking.Filter[repository.JobRef]{
		ranking.NewFilter("eligibility", func(r repository.JobRef) bool {
			return job.Matchable(r.Status, r.Deadline, now)
		}),
	}
	if f.excludeApplied() {
		ids, err := u.apps.JobIDsForApplicant(ctx, seekerID)
		if err != nil {
			return JobRecommendationPage{}, dataAccess("list applications", err)
		}
		applied := idSet(ids)
		filters = append(filters, ranking.NewFilter("exclusion", func(r repository.JobRef) bool {
			_, done := applied[r.ID]
			return !done
		}))
	}

	score := func(ctx context.Context, r repository.JobRef) (matching.ScoreBreakdown, error) {
		k := ScoreKey{
			SeekerID:       sk.Profile.ID,
			SeekerRevision: sk.Revision(),
			JobID:          r.ID,
			JobRevision:    r.UpdatedAt.UnixNano(),
			Disclose:       visibility.DisclosesDisability(sk.Preferences),
		}
		if b, ok := u.scoring.cached(ctx, k); ok {
			return b, nil
		}
		if err := u.engine.Throttle(ctx); err != nil {
			return matching.ScoreBreakdown{}, err
		}
		jb, err := u.jobs.Get(ctx, r.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return matching.ScoreBreakdown{}, ranking.ErrDropped
			}
			return matching.ScoreBreakdown{}, dataAccess("load job", err)
		}
		if !jb.Job.IsMatchable(now) {
			return matching.ScoreBreakdown{}, ranking.ErrDropped
		}
		return u.scoring.score(ctx, sk, jb)
	}

	key := func(r repository.JobRef) ranking.Key {
		return ranking.Key{ID: r.ID, Recency: recency(r.CreatedAt, r.UpdatedAt)}
	}

	res, err := ranking.Rank(ctx, u.engine, refs, filters, score, key, page)
	if err != nil {
		return JobRecommendationPage{}, err
	}

	out := JobRecommendationPage{
		Items:         make([]JobRecommendation, 0, len(res.Items)),
		TotalCount:    res.TotalCount,
		HasMore:       res.HasMore,
		Limit:         page.Limit,
		Offset:        page.Offset,
		PoolTruncated: truncated,
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, JobRecommendation{Job: it.Entity, Breakdown: it.Breakdown})
	}
	return out, nil
}

// RecommendedCandidatesForJob returns an empty page for a job that is not
// currently matchable.
func (u *Recommendation) RecommendedCandidatesForJob(ctx context.Context, jobID uuid.UUID, p Page) (CandidateRecommendationPage, error) {
	if jobID == uuid.Nil {
		return CandidateRecommendationPage{}, ErrInvalidInput
	}
	page, err := u.pageCfg.normalize(p)
	if err != nil {
		return CandidateRecommendationPage{}, err
	}

	jb, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return CandidateRecommendationPage{}, err
	}
	if err := jb.Validate(); err != nil {
		return CandidateRecommendationPage{}, err
	}
	now := u.now()
	if !jb.Job.IsMatchable(now) {
		u.logger.Debug("job not matchable, no candidates", zap.String("job_id", jobID.String()), zap.String("status", string(jb.Job.Status)))
		return CandidateRecommendationPage{Items: []CandidateRecommendation{}, Limit: page.Limit, Offset: page.Offset}, nil
	}

	refs, err := u.profiles.ListCandidateRefs(ctx, repository.CandidateFilter{JobID: jobID, Limit: u.poolLimit()})
	if err != nil {
		return CandidateRecommendationPage{}, dataAccess("list candidates", err)
	}
	refs, truncated := capPool(refs, u.poolMax)
	if truncated {
		u.logger.Warn("candidate pool truncated",
			zap.String("job_id", jobID.String()),
			zap.Int("pool_max", u.poolMax),
		)
	}
	ids, err := u.apps.ApplicantIDsForJob(ctx, jobID)
	if err != nil {
		return CandidateRecommendationPage{}, dataAccess("list applicants", err)
	}
	applicants := idSet(ids)
	hasApplied := func(id uuid.UUID) bool {
		_, ok := applicants[id]
		return ok
	}

	filters := []ranking.Filter[repository.CandidateRef]{
		ranking.NewFilter("eligibility", func(c repository.CandidateRef) bool {
			return c.HasProfile
		}),
		ranking.NewFilter("visibility", func(c repository.CandidateRef) bool {
			prefs := seeker.Preferences{Visibility: c.Visibility, ShowDisabilityInfo: c.ShowDisabilityInfo}
			return visibility.IsVisible(prefs, c.SeekerID, jobID, hasApplied(c.SeekerID))
		}),
	}

	score := func(ctx context.Context, c repository.CandidateRef) (matching.ScoreBreakdown, error) {
		k := ScoreKey{
			SeekerID:       c.SeekerID,
			SeekerRevision: c.UpdatedAt.UnixNano(),
			JobID:          jb.Job.ID,
			JobRevision:    jb.Revision(),
			Disclose:       visibility.DisclosesDisability(seeker.Preferences{ShowDisabilityInfo: c.ShowDisabilityInfo}),
		}
		if b, ok := u.scoring.cached(ctx, k); ok {
			return b, nil
		}
		if err := u.engine.Throttle(ctx); err != nil {
			return matching.ScoreBreakdown{}, err
		}
		sk, err := u.profiles.Get(ctx, c.SeekerID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return matching.ScoreBreakdown{}, ranking.ErrDropped
			}
			return matching.ScoreBreakdown{}, dataAccess("load seeker", err)
		}
		// preferences may have changed since the pool was listed
		if !visibility.IsVisible(sk.Preferences, c.SeekerID, jobID, hasApplied(c.SeekerID)) {
			return matching.ScoreBreakdown{}, ranking.ErrDropped
		}
		return u.scoring.score(ctx, sk, jb)
	}

	key := func(c repository.CandidateRef) ranking.Key {
		return ranking.Key{ID: c.SeekerID, Recency: recency(c.CreatedAt, c.UpdatedAt)}
	}

	res, err := ranking.Rank(ctx, u.engine, refs, filters, score, key, page)
	if err != nil {
		return CandidateRecommendationPage{}, err
	}

	out := CandidateRecommendationPage{
		Items:         make([]CandidateRecommendation, 0, len(res.Items)),
		TotalCount:    res.TotalCount,
		HasMore:       res.HasMore,
		Limit:         page.Limit,
		Offset:        page.Offset,
		PoolTruncated: truncated,
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, CandidateRecommendation{Candidate: it.Entity, Breakdown: it.Breakdown})
	}
	return out, nil
}

// poolLimit asks the store for one row past the cap so that a cut shows up
// in capPool instead of passing silently.
func (u *Recommendation) poolLimit() int {
	if u.poolMax <= 0 {
		return 0
	}
	return u.poolMax + 1
}

func capPool[T any](refs []T, n int) ([]T, bool) {
	if n > 0 && len(refs) > n {
		return refs[:n], true
	}
	return refs, false
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// recency is the later of created and updated.
func recency(created, updated time.Time) time.Time {
	if updated.After(created) {
		return updated
	}
	return created
}
