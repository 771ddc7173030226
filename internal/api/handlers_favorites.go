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

// favoriteRequest is the body of POST /api/v1/favorites.
type favoriteRequest struct {
	ShopID string `json:"shop_id" validate:"required,uuid"`
}

// HandleListFavorites serves GET /api/v1/favorites for the
// authenticated user.
func (h *Handler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	favorites, err := h.store.ListFavorites(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err, "Favorites not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"favorites": favorites,
	}, start)
}

// HandleAddFavorite serves POST /api/v1/favorites. Adding an already
// favorited shop returns 409 CONFLICT.
func (h *Handler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req favoriteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := h.store.AddFavorite(r.Context(), req.ShopID, userID); err != nil {
		respondStoreError(w, err, "Shop not found", "Shop already favorited")
		return
	}

	// Favorites drive the preference profile, so the cached
	// recommendations are stale now.
	h.engine.InvalidateUser(userID)

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"favorite": models.Favorite{
			ShopID:    req.ShopID,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		},
	}, start)
}

// HandleRemoveFavorite serves DELETE /api/v1/favorites?shop_id=...
func (h *Handler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	req := favoriteRequest{ShopID: r.URL.Query().Get("shop_id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := h.store.RemoveFavorite(r.Context(), req.ShopID, userID); err != nil {
		respondStoreError(w, err, "Favorite not found", "")
		return
	}

	h.engine.InvalidateUser(userID)

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"removed": true,
	}, start)
}
