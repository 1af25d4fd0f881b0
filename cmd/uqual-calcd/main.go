// Command uqual-calcd serves the financial calculator API.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/drewTuzson/uqual-financial-calculators/internal/analytics"
	"github.com/drewTuzson/uqual-financial-calculators/internal/config"
	"github.com/drewTuzson/uqual-financial-calculators/internal/server"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/calculator"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*configPath, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(configPath string, logger *zap.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var tracker *analytics.Tracker
	if cfg.Analytics {
		db, err := analytics.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		tracker = analytics.NewTracker(db, logger)
		logger.Info("analytics enabled", zap.String("db", cfg.DBPath))
	}

	registry := calculator.NewDefaultRegistry(calculator.Settings{
		CTAURL:  cfg.CTA.URL,
		CTAText: cfg.CTA.Text,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.New(registry, tracker, logger).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Strings("calculators", registry.Types()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
