// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocritic // Sequential startup; any Fatal exits before serving
func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
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
		Str("movies_path", cfg.Catalog.MoviesPath).
		Str("similarity_path", cfg.Catalog.SimilarityPath).
		Bool("metadata_active", cfg.Metadata.Active()).
		Msg("Starting Reelmatch")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cat, err := catalog.Load(ctx, catalog.LoadConfig{
		MoviesPath:     cfg.Catalog.MoviesPath,
		SimilarityPath: cfg.Catalog.SimilarityPath,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	enricher, err := metadata.NewFromConfig(ctx, &cfg.Metadata, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize metadata enricher")
	}
	defer func() {
		if err := enricher.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing metadata cache")
		}
	}()
	if !enricher.Online() {
		logging.Warn().Msg("Metadata API key not configured, cards will show placeholders")
	}

	handler, err := api.NewHandler(cat, enricher, cfg.Recommend)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Metadata.Persistent() {
		tree.AddCacheService(services.NewCacheMaintenanceService(enricher, cfg.Metadata.CacheGCInterval, logging.Logger()))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// The channel carries exactly one value and is never closed.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for services to stop")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Reelmatch stopped")
}
