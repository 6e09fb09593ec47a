package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

func TestScoreKey_String(t *testing.T) {
	base := ScoreKey{SeekerID: uuid.New(), SeekerRevision: 1, JobID: uuid.New(), JobRevision: 2}
	k := base.String("2024.1")
	if !strings.HasPrefix(k, ScoreKeyPrefix+"2024.1:") {
		t.Fatalf("unexpected key prefix: %s", k)
	}
	if k != base.String("2024.1") {
		t.Fatalf("expected stable key")
	}

	variants := map[string]ScoreKey{}
	v := base
	v.SeekerRevision = 3
	variants["seeker revision"] = v
	v = base
	v.JobRevision = 3
	variants["job revision"] = v
	v = base
	v.Disclose = true
	variants["disclosure"] = v
	for name, other := range variants {
		if other.String("2024.1") == k {
			t.Fatalf("expected %s to change the key", name)
		}
	}
	if base.String("2025.1") == k {
		t.Fatalf("expected weights version to change the key")
	}
}

func TestScoreCache_NilIsNoop(t *testing.T) {
	var sc *ScoreCache
	sc.Put(context.Background(), ScoreKey{}, matching.ScoreBreakdown{Total: 10})
	if _, ok := sc.Get(context.Background(), ScoreKey{}); ok {
		t.Fatalf("expected nil cache to miss")
	}
	if NewScoreCache(nil, time.Minute, matching.DefaultWeights(), nil) != nil {
		t.Fatalf("expected nil backend to yield nil cache")
	}
}

func TestScoreCache_RoundTripAndVersion(t *testing.T) {
	c := newMapCache()
	sc := NewScoreCache(c, time.Minute, matching.DefaultWeights(), nil)
	k := ScoreKey{SeekerID: uuid.New(), JobID: uuid.New()}
	ctx := context.Background()

	sc.Put(ctx, k, matching.ScoreBreakdown{WeightsVersion: "2024.1", Total: 64})
	got, ok := sc.Get(ctx, k)
	if !ok || got.Total != 64 {
		t.Fatalf("expected hit with total 64, got ok=%v total=%d", ok, got.Total)
	}

	// entries written under another table must not be served
	stale := NewScoreCache(c, time.Minute, matching.DefaultWeights(), nil)
	stale.Put(ctx, k, matching.ScoreBreakdown{WeightsVersion: "2023.9", Total: 12})
	if _, ok := sc.Get(ctx, k); ok {
		t.Fatalf("expected version mismatch to miss")
	}
}

func TestScoreCache_BackendFailureIsMiss(t *testing.T) {
	c := newMapCache()
	c.err = errors.New("redis down")
	sc := NewScoreCache(c, time.Minute, matching.DefaultWeights(), nil)
	sc.Put(context.Background(), ScoreKey{}, matching.ScoreBreakdown{WeightsVersion: "2024.1"})
	if _, ok := sc.Get(context.Background(), ScoreKey{}); ok {
		t.Fatalf("expected backend failure to miss")
	}
}

func TestScoreCache_KeyedOnEveryWeight(t *testing.T) {
	c := newMapCache()
	ctx := context.Background()
	k := ScoreKey{SeekerID: uuid.New(), JobID: uuid.New()}

	base := matching.DefaultWeights()
	edited := base
	edited.Skills, edited.Location = base.Skills+5, base.Location-5
	if edited.Version != base.Version || edited.Fingerprint() == base.Fingerprint() {
		t.Fatalf("expected same version with a different fingerprint, got %q and %q", base.Fingerprint(), edited.Fingerprint())
	}

	NewScoreCache(c, time.Minute, base, nil).Put(ctx, k, matching.ScoreBreakdown{WeightsVersion: base.Version, Total: 70})
	if _, ok := NewScoreCache(c, time.Minute, edited, nil).Get(ctx, k); ok {
		t.Fatalf("expected a miss for a breakdown computed under other weights")
	}
	if _, ok := NewScoreCache(c, time.Minute, base, nil).Get(ctx, k); !ok {
		t.Fatalf("expected a hit under the original weights")
	}
}
