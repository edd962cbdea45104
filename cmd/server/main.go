package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"askthem/internal/directory"
	dirmetrics "askthem/internal/directory/metrics"
	"askthem/internal/platform/config"
	"askthem/internal/platform/httpserver"
	"askthem/internal/platform/logger"
	"askthem/internal/platform/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)

	stores, err := directory.OpenStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer func() {
		if err := stores.Close(context.WithoutCancel(ctx)); err != nil {
			log.Warn("close stores", "error", err)
		}
	}()

	locker, closeLocker, err := directory.NewLocker(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer func() { _ = closeLocker() }()

	app, err := directory.Build(cfg, directory.Options{
		Stores:  stores,
		Locker:  locker,
		Logger:  log,
		Metrics: dirmetrics.New(),
	})
	if err != nil {
		return err
	}
	if cfg.AdminToken == "" {
		log.Warn("DIRECTORY_ADMIN_TOKEN is empty; admin routes will reject every request")
	}

	srv := httpserver.New(cfg.Addr, newRouter(app.Handler, log, metrics.New()))
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting askthem directory", "addr", cfg.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
