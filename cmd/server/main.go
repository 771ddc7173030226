// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

// Package main is the entry point for the Brewfinder server.
//
// Brewfinder is a location-based coffee shop discovery service. It
// scores every shop in the catalog against usage scenes (Study, Remote
// Work, Date, Meeting), serves filtered and sorted listings, builds
// personalized recommendations from a user's favorites and visits, and
// runs a moderation queue for user-submitted shops and abuse reports.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Database: Initialize DuckDB and create the catalog schema
//  3. Recommendation engine: Per-user cached scene-grouped rankings
//  4. HTTP server: Chi-routed REST API under /api/v1
//  5. Supervisor tree: Suture-supervised HTTP server and background jobs
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, a config file (config.yaml or
// CONFIG_PATH), then built-in defaults.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests to complete
// (10s timeout), then closes the database.
//
// # Example Usage
//
// Development with the built-in catalog:
//
//	export SEED_MOCK_DATA=true
//	export DUCKDB_PATH=:memory:
//	./brewfinder
//
// Production:
//
//	export DUCKDB_PATH=/data/brewfinder.duckdb
//	export HTTP_PORT=8432
//	export CORS_ORIGINS=https://app.example.com
//	./brewfinder
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

	"github.com/tomtom215/brewfinder/internal/api"
	"github.com/tomtom215/brewfinder/internal/config"
	"github.com/tomtom215/brewfinder/internal/database"
	"github.com/tomtom215/brewfinder/internal/logging"
	"github.com/tomtom215/brewfinder/internal/recommend"
	"github.com/tomtom215/brewfinder/internal/supervisor"
	"github.com/tomtom215/brewfinder/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
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
		Str("db_path", cfg.Database.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting Brewfinder")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedMockData {
		logging.Info().Msg("Mock data seeding enabled")
		if err := db.SeedMockData(context.Background()); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				logging.Error().Err(closeErr).Msg("Error closing database")
			}
			logging.Fatal().Err(err).Msg("Failed to seed mock data")
		}
	}

	engine, err := recommend.NewEngine(&recommend.Config{
		TopN:        cfg.Recommend.TopN,
		BucketCap:   cfg.Recommend.BucketCap,
		BucketMin:   cfg.Recommend.BucketMin,
		VisitWindow: cfg.Recommend.VisitWindow,
		CacheTTL:    cfg.Recommend.CacheTTL,
		CacheSize:   cfg.Recommend.CacheSize,
	}, logging.Logger(), db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	router := api.NewRouter(db, engine, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	if cfg.RatingRefresh.Enabled {
		tree.AddDataService(services.NewRatingRefreshService(db, services.RatingRefreshServiceConfig{
			Interval:         cfg.RatingRefresh.Interval,
			RefreshOnStartup: true,
		}, logging.Logger()))
		logging.Info().Dur("interval", cfg.RatingRefresh.Interval).Msg("Rating refresh service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
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
