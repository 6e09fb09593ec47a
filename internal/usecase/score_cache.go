package usecase

import (
	"context"
	"time"

	"talent-match/internal/domain/matching"

	"go.uber.org/zap"
)

type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// ScoreCache memoises breakdowns by content revision. A nil *ScoreCache is a
// valid cache that never hits. Backend errors are logged and treated as misses.
// Keys carry the weights fingerprint, so entries computed under a different
// table are never looked up.
type ScoreCache struct {
	cache       JSONCache
	ttl         time.Duration
	version     string
	fingerprint string
	logger      *zap.Logger
}

func NewScoreCache(c JSONCache, ttl time.Duration, w matching.Weights, logger *zap.Logger) *ScoreCache {
	if c == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreCache{cache: c, ttl: ttl, version: w.Version, fingerprint: w.Fingerprint(), logger: logger}
}

func (s *ScoreCache) Get(ctx context.Context, k ScoreKey) (matching.ScoreBreakdown, bool) {
	if s == nil {
		return matching.ScoreBreakdown{}, false
	}
	var b matching.ScoreBreakdown
	hit, err := s.cache.GetJSON(ctx, k.String(s.fingerprint), &b)
	if err != nil {
		s.logger.Debug("score cache get failed", zap.Error(err))
		return matching.ScoreBreakdown{}, false
	}
	if !hit || b.WeightsVersion != s.version {
		return matching.ScoreBreakdown{}, false
	}
	return b, true
}

func (s *ScoreCache) Put(ctx context.Context, k ScoreKey, b matching.ScoreBreakdown) {
	if s == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, k.String(s.fingerprint), b, s.ttl); err != nil {
		s.logger.Debug("score cache set failed", zap.Error(err))
	}
}
