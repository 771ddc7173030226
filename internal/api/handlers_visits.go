// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/brewfinder/internal/models"
)

// visitHistoryLimit caps how many visits the history endpoint returns.
const visitHistoryLimit = 50

// visitRequest is the body of POST /api/v1/visits.
type visitRequest struct {
	ShopID string `json:"shop_id" validate:"required,uuid"`
}

// HandleListVisits serves GET /api/v1/visits: the authenticated user's
// most recent visits, newest first.
func (h *Handler) HandleListVisits(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	visits, err := h.store.GetRecentVisits(r.Context(), userID, visitHistoryLimit)
	if err != nil {
		respondStoreError(w, err, "Visits not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"visits": visits,
	}, start)
}

// HandleLogVisit serves POST /api/v1/visits. Visits are append-only;
// repeat visits to the same shop are expected.
func (h *Handler) HandleLogVisit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req visitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	visit := &models.Visit{ShopID: req.ShopID, UserID: userID}
	if err := h.store.InsertVisit(r.Context(), visit); err != nil {
		respondStoreError(w, err, "Shop not found", "")
		return
	}

	// Recent visits feed the recommendation exclusion set.
	h.engine.InvalidateUser(userID)

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"visit": visit,
	}, start)
}
