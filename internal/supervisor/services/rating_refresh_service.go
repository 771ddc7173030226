// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/brewfinder/internal/metrics"
)

// RatingRefresher re-aggregates shop ratings from reviews.
// Satisfied by *database.DB.
type RatingRefresher interface {
	RefreshAllShopRatings(ctx context.Context) error
}

// RatingRefreshServiceConfig holds configuration for the rating refresh
// service.
type RatingRefreshServiceConfig struct {
	// Interval is how often ratings are re-aggregated. Default: 1h.
	Interval time.Duration

	// RefreshOnStartup runs one refresh pass when the service starts,
	// catching up after downtime.
	RefreshOnStartup bool
}

// RatingRefreshService periodically recomputes every shop's aggregate
// rating from its reviews. Ratings are also refreshed inline on review
// insert; this job is the safety net that repairs drift after partial
// failures.
type RatingRefreshService struct {
	refresher RatingRefresher
	config    RatingRefreshServiceConfig
	logger    zerolog.Logger
	name      string
}

// NewRatingRefreshService creates a new rating refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRatingRefreshService(refresher RatingRefresher, cfg RatingRefreshServiceConfig, logger zerolog.Logger) *RatingRefreshService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &RatingRefreshService{
		refresher: refresher,
		config:    cfg,
		logger:    logger.With().Str("service", "rating-refresh").Logger(),
		name:      "rating-refresh",
	}
}

// Serve implements the suture.Service interface. It runs the refresh
// loop until the context is canceled.
func (s *RatingRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("refresh_on_startup", s.config.RefreshOnStartup).
		Msg("rating refresh service starting")

	if s.config.RefreshOnStartup {
		if err := s.refresh(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("startup rating refresh failed (will retry on schedule)")
		}
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("rating refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled rating refresh failed")
			}
		}
	}
}

// refresh performs one refresh pass with a bounded timeout and records
// the outcome.
func (s *RatingRefreshService) refresh(ctx context.Context) error {
	refreshCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	start := time.Now()
	err := s.refresher.RefreshAllShopRatings(refreshCtx)
	metrics.RecordRatingRefresh(time.Since(start), err)
	if err != nil {
		return err
	}

	s.logger.Debug().
		Dur("duration", time.Since(start)).
		Msg("rating refresh complete")
	return nil
}

// String returns the service name for logging.
func (s *RatingRefreshService) String() string {
	return s.name
}
