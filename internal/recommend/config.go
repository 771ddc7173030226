// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package recommend

import (
	"fmt"
	"time"
)

// Config controls the recommendation engine's ranking and caching behavior.
type Config struct {
	// TopN is how many globally top-scored candidates are distributed into
	// scene buckets before backfill.
	TopN int `koanf:"top_n"`

	// BucketCap is the maximum shops per scene bucket during the initial
	// distribution pass.
	BucketCap int `koanf:"bucket_cap"`

	// BucketMin is the minimum shops per scene bucket; thin buckets are
	// backfilled to this size from the full candidate set.
	BucketMin int `koanf:"bucket_min"`

	// VisitWindow is how many of the user's most recent visits count
	// toward the exclusion set.
	VisitWindow int `koanf:"visit_window"`

	// CacheTTL bounds how stale a cached response may be.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheSize is the maximum number of per-user responses held in the
	// LRU cache.
	CacheSize int `koanf:"cache_size"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		TopN:        20,
		BucketCap:   5,
		BucketMin:   3,
		VisitWindow: 20,
		CacheTTL:    5 * time.Minute,
		CacheSize:   1024,
	}
}

// Validate checks the config for values that would break ranking.
func (c *Config) Validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.BucketCap <= 0 {
		return fmt.Errorf("bucket_cap must be positive, got %d", c.BucketCap)
	}
	if c.BucketMin < 0 {
		return fmt.Errorf("bucket_min must be non-negative, got %d", c.BucketMin)
	}
	if c.BucketMin > c.BucketCap {
		return fmt.Errorf("bucket_min %d exceeds bucket_cap %d", c.BucketMin, c.BucketCap)
	}
	if c.VisitWindow <= 0 {
		return fmt.Errorf("visit_window must be positive, got %d", c.VisitWindow)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative, got %v", c.CacheTTL)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	return nil
}
