// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"net/http"
	"time"
)

// HandleRecommendations serves GET /api/v1/recommendations: scene-grouped
// personalized recommendations for the authenticated user.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.engine.Recommend(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Recommendation failed", err)
		return
	}

	respondSuccess(w, http.StatusOK, resp, start)
}
