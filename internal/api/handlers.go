// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"net/http"

	"github.com/tomtom215/brewfinder/internal/config"
)

// Identity headers set by the fronting proxy after authentication.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	store  Store
	engine Recommender
	cfg    *config.Config
}

// NewHandler creates a Handler backed by the given store and
// recommendation engine.
func NewHandler(store Store, engine Recommender, cfg *config.Config) *Handler {
	return &Handler{
		store:  store,
		engine: engine,
		cfg:    cfg,
	}
}

// requireUser extracts the authenticated user ID from the request.
// Writes a 401 response and returns false when the header is absent.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(headerUserID)
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return "", false
	}
	return userID, true
}

// requireAdmin extracts the authenticated user ID and verifies the admin
// role. Writes a 401 or 403 response and returns false on failure.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return "", false
	}
	if r.Header.Get(headerUserRole) != roleAdmin {
		respondError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required", nil)
		return "", false
	}
	return userID, true
}
