package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/database/migration"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/database/seeder"
	"talent-match/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return withDB(cmd.Context(), cfg, func(ctx context.Context, db database.DB) error {
			return runMigrations(ctx, cfg, db, log)
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert reference data (regions, skills, languages)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return withDB(cmd.Context(), cfg, func(ctx context.Context, db database.DB) error {
			seeders := seeder.Defaults()
			if err := (seeder.Runner{Seeders: seeders, Logger: log}).Run(ctx, db); err != nil {
				return err
			}
			log.Info("seed complete", zap.Int("seeders", len(seeders)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func withDB(parent context.Context, cfg config.Config, fn func(ctx context.Context, db database.DB) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return fn(ctx, db)
}

// runMigrations reads app.migrations_dir when set, otherwise the embedded files.
func runMigrations(ctx context.Context, cfg config.Config, db database.DB, log *zap.Logger) error {
	r := migration.Runner{Logger: log.Named("migration")}
	if dir := strings.TrimSpace(cfg.App.MigrationsDir); dir != "" {
		r.Dir = dir
	} else {
		r.FS = migrations.FS
	}

	applied, err := r.Run(ctx, db)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("migrations up to date", zap.Int("applied", len(applied)))
	return nil
}
