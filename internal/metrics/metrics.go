// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

// Package metrics provides Prometheus instrumentation for production
// observability:
//   - API endpoint latency and throughput
//   - Database query performance (DuckDB)
//   - Recommendation cache efficiency
//   - Suitability scoring volume
//   - Rating refresh job health
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Database metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Recommendation metrics
	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_computation_duration_seconds",
			Help:    "Duration of full recommendation computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Scoring metrics
	SuitabilityComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suitability_computations_total",
			Help: "Total number of suitability score computations",
		},
		[]string{"scene"},
	)

	// Rating refresh job metrics
	RatingRefreshRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rating_refresh_runs_total",
			Help: "Total number of rating refresh job runs",
		},
		[]string{"result"}, // "success" or "error"
	)

	RatingRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rating_refresh_duration_seconds",
			Help:    "Duration of rating refresh job runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RatingRefreshLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rating_refresh_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful rating refresh",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDBQuery records a database query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRatingRefresh records one rating refresh job run.
func RecordRatingRefresh(duration time.Duration, err error) {
	RatingRefreshDuration.Observe(duration.Seconds())
	if err != nil {
		RatingRefreshRuns.WithLabelValues("error").Inc()
		return
	}
	RatingRefreshRuns.WithLabelValues("success").Inc()
	RatingRefreshLastSuccess.Set(float64(time.Now().Unix()))
}
