// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/brewfinder/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request
// is logged as slow.
const DefaultSlowRequestThreshold = time.Second

// SlowRequestLogger creates middleware that emits a warning log for
// any request whose handler latency exceeds the threshold. Prometheus
// histograms carry the full latency distribution; this surfaces the
// outliers in the application log where operators actually look first.
func SlowRequestLogger(threshold time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if threshold <= 0 {
		threshold = DefaultSlowRequestThreshold
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap ResponseWriter to capture status code
			wrapper := &metricsResponseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next(wrapper, r)

			duration := time.Since(start)
			if duration > threshold {
				logging.Ctx(r.Context()).Warn().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", wrapper.statusCode).
					Int64("duration_ms", duration.Milliseconds()).
					Int64("threshold_ms", threshold.Milliseconds()).
					Msg("Slow request detected")
			}
		}
	}
}
