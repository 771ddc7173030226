// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, request ID
tracking, slow-request logging, and Prometheus metrics integration. These
components sit under the Chi router's ecosystem middleware (CORS, rate
limiting) to form the complete middleware stack for HTTP request processing.

Key Components:

  - Compression: Gzip compression for responses
  - Request ID: UUID-based request tracking for distributed tracing
  - Prometheus Metrics: HTTP request/response instrumentation
  - Slow Request Logging: Latency threshold warnings via zerolog

Middleware Stack:

The typical middleware stack for an endpoint is:

	cors.Handler(              // Layer 1: CORS headers
	    httprate.LimitByIP(    // Layer 2: Rate limiting
	        middleware.PrometheusMetrics( // Layer 3: Metrics
	            middleware.Compression(    // Layer 4: Gzip
	                middleware.RequestID(  // Layer 5: Request tracking
	                    handler,           // Layer 6: Business logic
	                ),
	            ),
	        ),
	    ),
	)

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled gzip writers
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
