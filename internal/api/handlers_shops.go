// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/brewfinder/internal/listing"
	"github.com/tomtom215/brewfinder/internal/models"
	"github.com/tomtom215/brewfinder/internal/scoring"
)

// shopListRequest carries the validated query parameters of a listing
// request. Scene, sort, and coordinates are pre-parsed by the handler.
type shopListRequest struct {
	City     string  `validate:"omitempty,city"`
	Page     int     `validate:"min=1"`
	PageSize int     `validate:"min=1"`
	Lat      float64 `validate:"min=-90,max=90"`
	Lng      float64 `validate:"min=-180,max=180"`
}

// shopListResponse is the data payload of GET /api/v1/shops.
type shopListResponse struct {
	Shops      []listing.Entry       `json:"shops"`
	Pagination models.PaginationInfo `json:"pagination"`
}

// shopDetailResponse is the data payload of GET /api/v1/shops/{id}:
// the shop plus its suitability for every scene and its reviews.
type shopDetailResponse struct {
	Shop        *models.Shop              `json:"shop"`
	Suitability []models.SuitabilityScore `json:"suitability"`
	Reviews     []models.Review           `json:"reviews"`
}

// HandleListShops serves GET /api/v1/shops with optional city, scene,
// coordinate, sort, and pagination parameters.
func (h *Handler) HandleListShops(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := shopListRequest{
		City:     r.URL.Query().Get("city"),
		Page:     getIntParam(r, "page", 1),
		PageSize: getIntParam(r, "page_size", h.cfg.API.DefaultPageSize),
	}
	req.PageSize = clampPageSize(req.PageSize, h.cfg.API.MaxPageSize)

	opts := listing.Options{
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		scene, err := models.ParseScene(sceneName)
		if err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid scene", nil)
			return
		}
		opts.Scene = &scene
	}

	sort, ok := listing.ParseSortMode(r.URL.Query().Get("sort"))
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid sort mode", nil)
		return
	}
	opts.Sort = sort

	lat, hasLat := getFloatParam(r, "lat")
	lng, hasLng := getFloatParam(r, "lng")
	if hasLat != hasLng {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "lat and lng must be provided together", nil)
		return
	}
	if hasLat {
		req.Lat = lat
		req.Lng = lng
		opts.Origin = &listing.Point{Latitude: lat, Longitude: lng}
	}
	if opts.Sort == listing.SortDistance && opts.Origin == nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Distance sort requires lat and lng", nil)
		return
	}

	bounds, ok := parseBounds(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid bounds: expected min_lat, min_lng, max_lat, max_lng with min <= max", nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	shops, err := h.store.ListApprovedShops(r.Context(), req.City, bounds)
	if err != nil {
		respondStoreError(w, err, "Shops not found", "")
		return
	}

	entries, total := listing.Apply(shops, opts)

	respondSuccess(w, http.StatusOK, shopListResponse{
		Shops: entries,
		Pagination: models.PaginationInfo{
			Page:       req.Page,
			PageSize:   req.PageSize,
			TotalCount: total,
			HasMore:    req.Page*req.PageSize < total,
		},
	}, start)
}

// parseBounds reads the optional viewport parameters. All four must be
// present together, in coordinate range, with min <= max on both axes.
// Returns (nil, true) when no bounds parameters are present.
func parseBounds(r *http.Request) (*models.BoundingBox, bool) {
	minLat, hasMinLat := getFloatParam(r, "min_lat")
	minLng, hasMinLng := getFloatParam(r, "min_lng")
	maxLat, hasMaxLat := getFloatParam(r, "max_lat")
	maxLng, hasMaxLng := getFloatParam(r, "max_lng")

	present := 0
	for _, has := range []bool{hasMinLat, hasMinLng, hasMaxLat, hasMaxLng} {
		if has {
			present++
		}
	}
	switch present {
	case 0:
		return nil, true
	case 4:
	default:
		return nil, false
	}

	if minLat < -90 || maxLat > 90 || minLng < -180 || maxLng > 180 {
		return nil, false
	}
	if minLat > maxLat || minLng > maxLng {
		return nil, false
	}

	return &models.BoundingBox{
		MinLat: minLat,
		MinLng: minLng,
		MaxLat: maxLat,
		MaxLng: maxLng,
	}, true
}

// HandleGetShop serves GET /api/v1/shops/{id}: the shop, per-scene
// suitability scores, and its reviews.
func (h *Handler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	shopID := chi.URLParam(r, "id")
	shop, err := h.store.GetShop(r.Context(), shopID)
	if err != nil {
		respondStoreError(w, err, "Shop not found", "")
		return
	}

	reviews, err := h.store.ListReviewsByShop(r.Context(), shopID)
	if err != nil {
		respondStoreError(w, err, "Shop not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, shopDetailResponse{
		Shop:        shop,
		Suitability: scoring.ComputeAll(shop.Features, shop.Rating),
		Reviews:     reviews,
	}, start)
}
