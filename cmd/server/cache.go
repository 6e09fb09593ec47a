package main

import (
	"context"
	"time"

	"talent-match/internal/infrastructure/cache"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const scoreKeyPattern = "score:*"

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the score cache",
}

var cacheFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Delete every cached score breakdown",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		rc := cache.NewRedis(ctx, cfg.Redis, log)
		defer func() { _ = rc.Close() }()
		if !rc.Enabled() {
			log.Warn("cache is not available, nothing to flush")
			return nil
		}

		n, err := rc.DeleteByPattern(ctx, scoreKeyPattern)
		if err != nil {
			return err
		}
		log.Info("score cache flushed", zap.Int("deleted", n))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheFlushCmd)
	rootCmd.AddCommand(cacheCmd)
}
