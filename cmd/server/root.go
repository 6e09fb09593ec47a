package main

import (
	"fmt"

	"talent-match/internal/config"
	"talent-match/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "talent-match"

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "talent-match scores seekers against job postings and ranks recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a YAML config file; TALENT_MATCH_* environment variables override it")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
}

// setup loads the configuration and builds the logger. Flags win over the
// app.log_* settings when they are passed explicitly.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.App.LogDebug, _ = flags.GetBool("debug")
	}
	if flags.Changed("json") {
		cfg.App.LogJSON, _ = flags.GetBool("json")
	}

	log, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("creating a logger: %w", err)
	}

	v := config.Validate(cfg)
	for _, w := range v.Warnings {
		log.Warn("config warning", zap.String("warning", w))
	}
	if err := v.Err(); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log.With(zap.String("app", cfg.App.AppName), zap.String("env", cfg.App.Environment)), nil
}
