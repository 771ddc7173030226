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

// submissionFeaturesRequest mirrors models.ShopFeatures with
// validation tags.
type submissionFeaturesRequest struct {
	Noise    int `json:"noise" validate:"min=1,max=5"`
	Outlets  int `json:"outlets" validate:"min=1,max=5"`
	Wifi     int `json:"wifi" validate:"min=1,max=5"`
	Seating  int `json:"seating" validate:"min=1,max=5"`
	Lighting int `json:"lighting" validate:"min=1,max=5"`
	Privacy  int `json:"privacy" validate:"min=1,max=5"`
}

// submissionRequest is the body of POST /api/v1/shops/submit.
type submissionRequest struct {
	Name       string                    `json:"name" validate:"required,max=200"`
	Address    string                    `json:"address" validate:"required,max=500"`
	City       string                    `json:"city" validate:"required,city"`
	Latitude   float64                   `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64                   `json:"longitude" validate:"min=-180,max=180"`
	PriceLevel int                       `json:"price_level" validate:"min=1,max=4"`
	Tags       []string                  `json:"tags" validate:"max=10,dive,max=50"`
	Features   submissionFeaturesRequest `json:"features"`
}

// HandleSubmitShop serves POST /api/v1/shops/submit: a user-proposed
// listing that enters the moderation queue as pending. Re-submitting
// the same name and address returns 409 CONFLICT.
func (h *Handler) HandleSubmitShop(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req submissionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	sub := &models.Submission{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		PriceLevel: req.PriceLevel,
		Tags:       req.Tags,
		Features: models.ShopFeatures{
			Noise:    req.Features.Noise,
			Outlets:  req.Features.Outlets,
			Wifi:     req.Features.Wifi,
			Seating:  req.Features.Seating,
			Lighting: req.Features.Lighting,
			Privacy:  req.Features.Privacy,
		},
		SubmittedBy: userID,
	}
	if err := h.store.InsertSubmission(r.Context(), sub); err != nil {
		respondStoreError(w, err, "Submission not found", "Shop already submitted")
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"submission": sub,
	}, start)
}
