package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"talent-match/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("migrate", false, "apply pending migrations before serving")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "grace period for in-flight requests")
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Warn("cleanup error", zap.Error(err))
		}
	}()

	if ok, _ := cmd.Flags().GetBool("migrate"); ok {
		if err := runMigrations(cmd.Context(), cfg, bootstrap.Container.DB, log); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
			return err
		}
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		timeout, _ := cmd.Flags().GetDuration("shutdown-timeout")
		if err := bootstrap.Shutdown(timeout); err != nil {
			log.Warn("shutdown error", zap.Error(err))
		}
	}
	return nil
}
