// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/brewfinder/internal/config"
	"github.com/tomtom215/brewfinder/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
// This allows our existing middleware to work with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router for the given store and recommendation
// engine.
func NewRouter(store Store, engine Recommender, cfg *config.Config) *Router {
	return &Router{
		handler: NewHandler(store, engine, cfg),
		chiMiddleware: NewChiMiddleware(&ChiMiddlewareConfig{
			CORSAllowedOrigins:     cfg.API.CORSOrigins,
			CORSMaxAge:             86400,
			RateLimitRequests:      cfg.API.RateLimitReqs,
			WriteRateLimitRequests: cfg.API.WriteRateLimitReqs,
			RateLimitWindow:        cfg.API.RateLimitWindow,
			RateLimitDisabled:      cfg.API.RateLimitDisabled,
		}),
	}
}

// Setup configures all HTTP routes using Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order. CORS must be
	// global to handle OPTIONS preflight.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints: permissive rate limit, no metrics or
	// compression overhead.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/health", router.handler.HandleHealth)
		r.Get("/ready", router.handler.HandleReady)
	})

	// Prometheus scrape endpoint.
	r.Handle("/metrics", promhttp.Handler())

	// Read endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(middleware.SlowRequestLogger(middleware.DefaultSlowRequestThreshold)))

		r.Get("/shops", router.handler.HandleListShops)
		r.Get("/shops/{id}", router.handler.HandleGetShop)
		r.Get("/recommendations", router.handler.HandleRecommendations)
		r.Get("/favorites", router.handler.HandleListFavorites)
		r.Get("/visits", router.handler.HandleListVisits)
		r.Get("/reviews", router.handler.HandleListReviews)

		// Write endpoints carry the stricter limit on top of the
		// group limit.
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitWrite())

			r.Post("/shops/submit", router.handler.HandleSubmitShop)
			r.Post("/favorites", router.handler.HandleAddFavorite)
			r.Delete("/favorites", router.handler.HandleRemoveFavorite)
			r.Post("/visits", router.handler.HandleLogVisit)
			r.Post("/reviews", router.handler.HandleCreateReview)
			r.Post("/reports", router.handler.HandleCreateReport)
		})

		// Admin endpoints. Role enforcement happens in the handlers so
		// failures produce the standard error envelope.
		r.Route("/admin", func(r chi.Router) {
			r.Get("/submissions", router.handler.HandleAdminListSubmissions)
			r.Patch("/submissions/{id}", router.handler.HandleAdminDecideSubmission)
			r.Get("/reports", router.handler.HandleAdminListReports)
			r.Patch("/reports/{id}", router.handler.HandleAdminDecideReport)
			r.Get("/analytics", router.handler.HandleAdminAnalytics)
		})
	})

	return r
}
