package seeder

import (
	"context"
	"fmt"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/logger"

	"go.uber.org/zap"
)

// Seeder loads one reference catalog. Implementations must be idempotent.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run executes the seeders in order and stops at the first failure.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNilDB
	}
	log := logger.OrNop(r.Logger)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeded", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}
