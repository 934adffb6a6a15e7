// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/tableside/docs" // Import generated swagger docs
	"github.com/tomtom215/tableside/internal/api"
	"github.com/tomtom215/tableside/internal/config"
	"github.com/tomtom215/tableside/internal/database"
	"github.com/tomtom215/tableside/internal/logging"
	"github.com/tomtom215/tableside/internal/qrcode"
	"github.com/tomtom215/tableside/internal/supervisor"
	"github.com/tomtom215/tableside/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("database", cfg.Database.Name).
		Str("qr_base_url", cfg.QR.BaseURL).
		Msg("Starting Tableside")

	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	store, err := database.New(connectCtx, &cfg.Database)
	connectCancel()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to document store")
	}
	defer closeStore(store)

	if cfg.Database.SeedMenu {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
		_, err := store.SeedMenu(seedCtx, database.DefaultMenu())
		seedCancel()
		if err != nil {
			closeStore(store)
			logging.Fatal().Err(err).Msg("Failed to seed menu")
		}
	}

	generator, err := qrcode.NewGenerator(&cfg.QR)
	if err != nil {
		closeStore(store)
		logging.Fatal().Err(err).Msg("Failed to configure QR generator")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(store, generator, &cfg.API, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		closeStore(store)
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewStoreMonitorService(store, cfg.Database.HealthInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The channel delivers exactly one result when the root supervisor stops.
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// closeStore disconnects from MongoDB, giving in-flight operations a few
// seconds to finish.
func closeStore(store *database.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		logging.Error().Err(err).Msg("Error closing document store")
	}
}
