// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

// Package config loads and validates Brewfinder's configuration.
//
// Configuration is layered with koanf v2: built-in defaults, then an
// optional YAML config file, then environment variables. Later layers win.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the server.
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Database      DatabaseConfig      `koanf:"database"`
	API           APIConfig           `koanf:"api"`
	Recommend     RecommendConfig     `koanf:"recommend"`
	RatingRefresh RatingRefreshConfig `koanf:"rating_refresh"`
	Logging       LoggingConfig       `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig configures the DuckDB store.
type DatabaseConfig struct {
	// Path is the DuckDB file path. ":memory:" runs fully in memory.
	Path string `koanf:"path"`
	// MaxMemory caps DuckDB's memory usage, e.g. "2GB".
	MaxMemory string `koanf:"max_memory"`
	// Threads is the DuckDB thread count; 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`
	// SeedMockData loads the built-in three-city catalog at startup.
	SeedMockData bool `koanf:"seed_mock_data"`
}

// APIConfig configures request handling defaults and limits.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`

	// RateLimitReqs requests per RateLimitWindow per client IP.
	RateLimitReqs   int           `koanf:"rate_limit_requests"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	// WriteRateLimitReqs is the stricter budget for mutating endpoints.
	WriteRateLimitReqs int `koanf:"write_rate_limit_requests"`
	// RateLimitDisabled turns limiting off entirely, for local
	// development and load testing.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	TopN        int           `koanf:"top_n"`
	BucketCap   int           `koanf:"bucket_cap"`
	BucketMin   int           `koanf:"bucket_min"`
	VisitWindow int           `koanf:"visit_window"`
	CacheTTL    time.Duration `koanf:"cache_ttl"`
	CacheSize   int           `koanf:"cache_size"`
}

// RatingRefreshConfig configures the background job that re-aggregates shop
// ratings from reviews.
type RatingRefreshConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would prevent a clean
// start. It returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("database.threads must be non-negative, got %d", c.Database.Threads)
	}

	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size %d is below api.default_page_size %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.API.RateLimitReqs < 1 {
		return fmt.Errorf("api.rate_limit_requests must be positive, got %d", c.API.RateLimitReqs)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive, got %v", c.API.RateLimitWindow)
	}
	if c.API.WriteRateLimitReqs < 1 {
		return fmt.Errorf("api.write_rate_limit_requests must be positive, got %d", c.API.WriteRateLimitReqs)
	}

	if c.Recommend.TopN < 1 {
		return fmt.Errorf("recommend.top_n must be positive, got %d", c.Recommend.TopN)
	}
	if c.Recommend.BucketCap < 1 {
		return fmt.Errorf("recommend.bucket_cap must be positive, got %d", c.Recommend.BucketCap)
	}
	if c.Recommend.BucketMin > c.Recommend.BucketCap {
		return fmt.Errorf("recommend.bucket_min %d exceeds recommend.bucket_cap %d",
			c.Recommend.BucketMin, c.Recommend.BucketCap)
	}
	if c.Recommend.VisitWindow < 1 {
		return fmt.Errorf("recommend.visit_window must be positive, got %d", c.Recommend.VisitWindow)
	}
	if c.Recommend.CacheTTL < 0 {
		return fmt.Errorf("recommend.cache_ttl must be non-negative, got %v", c.Recommend.CacheTTL)
	}
	if c.Recommend.CacheSize < 1 {
		return fmt.Errorf("recommend.cache_size must be positive, got %d", c.Recommend.CacheSize)
	}

	if c.RatingRefresh.Enabled && c.RatingRefresh.Interval < time.Minute {
		return fmt.Errorf("rating_refresh.interval must be at least 1m, got %v", c.RatingRefresh.Interval)
	}

	return nil
}
