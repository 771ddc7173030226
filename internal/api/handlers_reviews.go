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

// reviewRatingsRequest mirrors models.ReviewRatings with validation
// tags. Every attribute is required on the 1-5 scale.
type reviewRatingsRequest struct {
	Noise    int `json:"noise" validate:"min=1,max=5"`
	Outlets  int `json:"outlets" validate:"min=1,max=5"`
	Wifi     int `json:"wifi" validate:"min=1,max=5"`
	Seating  int `json:"seating" validate:"min=1,max=5"`
	Lighting int `json:"lighting" validate:"min=1,max=5"`
	Privacy  int `json:"privacy" validate:"min=1,max=5"`
	Busyness int `json:"busyness" validate:"min=1,max=5"`
}

// reviewRequest is the body of POST /api/v1/reviews.
type reviewRequest struct {
	ShopID  string               `json:"shop_id" validate:"required,uuid"`
	Ratings reviewRatingsRequest `json:"ratings"`
	Text    string               `json:"text" validate:"omitempty,max=2000"`
}

// HandleListReviews serves GET /api/v1/reviews filtered by shop_id or
// user_id. Exactly one filter is required.
func (h *Handler) HandleListReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	shopID := r.URL.Query().Get("shop_id")
	userID := r.URL.Query().Get("user_id")
	if (shopID == "") == (userID == "") {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Exactly one of shop_id or user_id is required", nil)
		return
	}

	var (
		reviews []models.Review
		err     error
	)
	if shopID != "" {
		reviews, err = h.store.ListReviewsByShop(r.Context(), shopID)
	} else {
		reviews, err = h.store.ListReviewsByUser(r.Context(), userID)
	}
	if err != nil {
		respondStoreError(w, err, "Reviews not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
	}, start)
}

// HandleCreateReview serves POST /api/v1/reviews. One review per user
// per shop; a second attempt returns 409 CONFLICT. The shop's aggregate
// rating is refreshed as part of the insert.
func (h *Handler) HandleCreateReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	review := &models.Review{
		ShopID: req.ShopID,
		UserID: userID,
		Ratings: models.ReviewRatings{
			Noise:    req.Ratings.Noise,
			Outlets:  req.Ratings.Outlets,
			Wifi:     req.Ratings.Wifi,
			Seating:  req.Ratings.Seating,
			Lighting: req.Ratings.Lighting,
			Privacy:  req.Ratings.Privacy,
			Busyness: req.Ratings.Busyness,
		},
		Text: req.Text,
	}
	if err := h.store.InsertReview(r.Context(), review); err != nil {
		respondStoreError(w, err, "Shop not found", "Shop already reviewed")
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"review": review,
	}, start)
}
