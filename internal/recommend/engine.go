// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/brewfinder/internal/cache"
	"github.com/tomtom215/brewfinder/internal/metrics"
	"github.com/tomtom215/brewfinder/internal/models"
)

// DataProvider defines the interface for fetching the user signals and
// candidate catalog the ranker consumes. Implemented by the database layer;
// the interface lives here to avoid a circular import.
type DataProvider interface {
	// GetFavoriteShops returns the shops the user has favorited.
	GetFavoriteShops(ctx context.Context, userID string) ([]models.Shop, error)

	// GetRecentVisits returns the user's most recent visits, newest first,
	// capped at limit.
	GetRecentVisits(ctx context.Context, userID string, limit int) ([]models.Visit, error)

	// GetApprovedShopsExcluding returns every approved shop whose ID is
	// not in excludeIDs.
	GetApprovedShopsExcluding(ctx context.Context, excludeIDs []string) ([]models.Shop, error)
}

// Engine produces scene-grouped recommendations. It is safe for concurrent
// use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	data   DataProvider

	responseCache *cache.LRUCache[*Response]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
}

// NewEngine creates a recommendation engine. A nil config uses defaults.
func NewEngine(cfg *Config, logger zerolog.Logger, data DataProvider) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("data provider is required")
	}

	return &Engine{
		config:        cfg,
		logger:        logger.With().Str("component", "recommend").Logger(),
		data:          data,
		responseCache: cache.NewLRUCache[*Response](cfg.CacheSize, cfg.CacheTTL),
	}, nil
}

// Recommend returns the recommendation payload for one user, serving from
// the per-user cache when a fresh response exists.
func (e *Engine) Recommend(ctx context.Context, userID string) (*Response, error) {
	e.requestCount.Add(1)

	if resp, ok := e.responseCache.Get(userID); ok {
		e.cacheHits.Add(1)
		metrics.RecommendCacheHits.Inc()
		return resp, nil
	}
	e.cacheMisses.Add(1)
	metrics.RecommendCacheMisses.Inc()

	start := time.Now()

	var (
		favorites []models.Shop
		visits    []models.Visit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		favorites, err = e.data.GetFavoriteShops(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch favorites: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		visits, err = e.data.GetRecentVisits(gctx, userID, e.config.VisitWindow)
		if err != nil {
			return fmt.Errorf("fetch visits: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profile := DeriveProfile(favorites)

	excluded := make(map[string]bool, len(favorites)+len(visits))
	excludeIDs := make([]string, 0, len(favorites)+len(visits))
	for _, shop := range favorites {
		if !excluded[shop.ID] {
			excluded[shop.ID] = true
			excludeIDs = append(excludeIDs, shop.ID)
		}
	}
	for _, visit := range visits {
		if !excluded[visit.ShopID] {
			excluded[visit.ShopID] = true
			excludeIDs = append(excludeIDs, visit.ShopID)
		}
	}

	candidates, err := e.data.GetApprovedShopsExcluding(ctx, excludeIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	scored := scoreCandidates(candidates, profile)
	resp := &Response{
		Recommendations: bucketize(scored, e.config.TopN, e.config.BucketCap, e.config.BucketMin),
		UserPreferences: profile,
		Stats: Stats{
			FavoritesCount: len(favorites),
			VisitsCount:    len(visits),
		},
	}

	e.responseCache.Add(userID, resp)
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())

	e.logger.Debug().
		Str("user_id", userID).
		Int("favorites", len(favorites)).
		Int("visits", len(visits)).
		Int("candidates", len(candidates)).
		Dur("elapsed", time.Since(start)).
		Msg("computed recommendations")

	return resp, nil
}

// InvalidateUser drops the cached response for one user. Called after
// favorite or visit mutations when fresher results are worth the recompute.
func (e *Engine) InvalidateUser(userID string) {
	e.responseCache.Remove(userID)
}

// CacheStats returns cumulative request, hit, and miss counts.
func (e *Engine) CacheStats() (requests, hits, misses int64) {
	return e.requestCount.Load(), e.cacheHits.Load(), e.cacheMisses.Load()
}
