// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"net/http"
	"time"
)

// HandleHealth serves GET /health: process liveness only, no
// dependency checks.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
	}, time.Now())
}

// HandleReady serves GET /ready: liveness plus a database ping, for
// load balancer readiness checks.
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATABASE_ERROR", "Database unavailable", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
	}, start)
}
