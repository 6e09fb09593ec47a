package usecase

import (
	"context"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/domain/visibility"
)

// Scoring wraps the pure scorer with the revision-keyed memo.
type Scoring struct {
	scorer *matching.Scorer
	cache  *ScoreCache
}

func NewScoring(scorer *matching.Scorer, cache *ScoreCache) *Scoring {
	return &Scoring{scorer: scorer, cache: cache}
}

func keyFor(sk seeker.Aggregate, jb job.Aggregate) ScoreKey {
	return ScoreKey{
		SeekerID:       sk.Profile.ID,
		SeekerRevision: sk.Revision(),
		JobID:          jb.Job.ID,
		JobRevision:    jb.Revision(),
		Disclose:       visibility.DisclosesDisability(sk.Preferences),
	}
}

func (s *Scoring) cached(ctx context.Context, k ScoreKey) (matching.ScoreBreakdown, bool) {
	return s.cache.Get(ctx, k)
}

func (s *Scoring) score(ctx context.Context, sk seeker.Aggregate, jb job.Aggregate) (matching.ScoreBreakdown, error) {
	k := keyFor(sk, jb)
	if b, ok := s.cache.Get(ctx, k); ok {
		return b, nil
	}
	b, err := s.scorer.Score(sk, jb)
	if err != nil {
		return matching.ScoreBreakdown{}, err
	}
	s.cache.Put(ctx, k, b)
	return b, nil
}
