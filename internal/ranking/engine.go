package ranking

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrDropped may be returned by a ScoreFunc when the candidate disappeared or
// became ineligible between listing and hydration. The candidate is removed
// before counting; any other error aborts the page.
var ErrDropped = errors.New("candidate dropped")

type Page struct {
	Limit  int
	Offset int
}

type Key struct {
	ID      uuid.UUID
	Recency time.Time
}

type ScoreFunc[T any] func(ctx context.Context, c T) (matching.ScoreBreakdown, error)

type KeyFunc[T any] func(c T) Key

type Item[T any] struct {
	Entity    T
	Breakdown matching.ScoreBreakdown
}

type Result[T any] struct {
	Items      []Item[T]
	TotalCount int
	HasMore    bool
}

type Config struct {
	Workers        int
	HydrationRPS   float64
	HydrationBurst int
}

type Engine struct {
	workers int
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	var lim *rate.Limiter
	if cfg.HydrationRPS > 0 {
		burst := cfg.HydrationBurst
		if burst <= 0 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(cfg.HydrationRPS), burst)
	}
	return &Engine{workers: workers, limiter: lim, logger: logger}
}

func (e *Engine) Workers() int {
	if e == nil {
		return 1
	}
	return e.workers
}

// Throttle blocks until the hydration limiter admits one more data-access call.
// Score functions call it right before hitting the store.
func (e *Engine) Throttle(ctx context.Context) error {
	if e == nil || e.limiter == nil {
		return ctx.Err()
	}
	return e.limiter.Wait(ctx)
}

// Rank filters the pool, scores every survivor on a bounded pool, orders by
// (score desc, recency desc, id asc) and slices the requested page.
// No partial result is ever returned: any failure or cancellation yields an error.
func Rank[T any](ctx context.Context, e *Engine, pool []T, filters []Filter[T], score ScoreFunc[T], key KeyFunc[T], page Page) (Result[T], error) {
	if e == nil {
		e = NewEngine(Config{}, nil)
	}
	if score == nil || key == nil {
		return Result[T]{}, fmt.Errorf("ranking: score and key functions are required")
	}
	start := time.Now()

	survivors, steps := applyFilters(pool, filters)
	for _, st := range steps {
		e.logger.Debug("filter step",
			zap.String("name", st.Name),
			zap.Int("initial", st.Initial),
			zap.Int("dropped", st.Dropped),
			zap.Int("left", st.Left),
		)
	}
	if err := ctx.Err(); err != nil {
		return Result[T]{}, err
	}

	type scored struct {
		item    Item[T]
		key     Key
		dropped bool
	}
	results := make([]scored, len(survivors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range survivors {
		c := survivors[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			k := key(c)
			b, err := score(gctx, c)
			if err != nil {
				if errors.Is(err, ErrDropped) {
					results[i] = scored{key: k, dropped: true}
					return nil
				}
				return fmt.Errorf("score candidate %s: %w", k.ID, err)
			}
			results[i] = scored{item: Item[T]{Entity: c, Breakdown: b}, key: k}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result[T]{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result[T]{}, err
	}

	kept := make([]scored, 0, len(results))
	for _, r := range results {
		if r.dropped {
			continue
		}
		kept = append(kept, r)
	}
	if d := len(results) - len(kept); d > 0 {
		e.logger.Debug("filter step",
			zap.String("name", "hydration"),
			zap.Int("initial", len(results)),
			zap.Int("dropped", d),
			zap.Int("left", len(kept)),
		)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.item.Breakdown.Total != b.item.Breakdown.Total {
			return a.item.Breakdown.Total > b.item.Breakdown.Total
		}
		if !a.key.Recency.Equal(b.key.Recency) {
			return a.key.Recency.After(b.key.Recency)
		}
		return bytes.Compare(a.key.ID[:], b.key.ID[:]) < 0
	})

	total := len(kept)
	lo, hi := bounds(page, total)
	items := make([]Item[T], 0, hi-lo)
	for _, r := range kept[lo:hi] {
		items = append(items, r.item)
	}

	res := Result[T]{
		Items:      items,
		TotalCount: total,
		HasMore:    page.Offset+page.Limit < total,
	}
	e.logger.Info("ranked page",
		zap.Int("pool", len(pool)),
		zap.Int("total_count", res.TotalCount),
		zap.Int("returned", len(res.Items)),
		zap.Int("offset", page.Offset),
		zap.Int("limit", page.Limit),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

func bounds(p Page, total int) (int, int) {
	lo := p.Offset
	if lo < 0 {
		lo = 0
	}
	if lo > total {
		lo = total
	}
	limit := p.Limit
	if limit < 0 {
		limit = 0
	}
	hi := lo + limit
	if hi > total {
		hi = total
	}
	return lo, hi
}
