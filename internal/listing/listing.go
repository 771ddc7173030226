// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

// Package listing assembles shop listing pages: per-scene suitability
// annotation, distance from a reference point, sorting, and pagination.
//
// The pipeline is stateless and operates on shops already narrowed by the
// storage layer (city and bounding-box filters happen in SQL). It never
// fails: absent inputs simply skip their stage.
package listing

import (
	"math"
	"sort"

	"github.com/tomtom215/brewfinder/internal/models"
	"github.com/tomtom215/brewfinder/internal/scoring"
)

// SortMode selects the listing sort order.
type SortMode int

const (
	// SortRating orders by aggregate rating, best first.
	SortRating SortMode = iota
	// SortSuitability orders by scene suitability, best first. Requires a
	// scene; shops fall back to rating order when no scene is requested.
	SortSuitability
	// SortDistance orders by distance from the reference point, nearest
	// first. Shops without a computable distance sort last.
	SortDistance
)

// ParseSortMode converts a query-string sort value. Empty defaults to
// rating order.
func ParseSortMode(s string) (SortMode, bool) {
	switch s {
	case "", "rating":
		return SortRating, true
	case "suitability":
		return SortSuitability, true
	case "distance":
		return SortDistance, true
	default:
		return SortRating, false
	}
}

// Point is a geographic reference point in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Options configures one listing request.
type Options struct {
	// Scene, if set, annotates every shop with its suitability for that
	// scene and enables suitability sorting.
	Scene *models.Scene
	// Origin, if set, annotates every shop with its haversine distance.
	Origin *Point
	// Sort selects the ordering applied before pagination.
	Sort SortMode
	// Page is 1-based; PageSize caps entries per page. Both must be
	// positive; the handler layer validates ranges.
	Page     int
	PageSize int
}

// Entry is one shop in a listing page, with optional per-request
// annotations.
type Entry struct {
	models.Shop
	Suitability    *models.SuitabilityScore `json:"suitability,omitempty"`
	DistanceMeters *float64                 `json:"distance_meters,omitempty"`
}

// Apply runs the listing pipeline over shops: annotate, sort, paginate.
// It returns the requested page and the total number of entries before
// pagination.
func Apply(shops []models.Shop, opts Options) ([]Entry, int) {
	entries := make([]Entry, 0, len(shops))
	for _, shop := range shops {
		e := Entry{Shop: shop}
		if opts.Scene != nil {
			s := scoring.Compute(*opts.Scene, shop.Features, shop.Rating)
			e.Suitability = &s
		}
		if opts.Origin != nil {
			d := Haversine(opts.Origin.Latitude, opts.Origin.Longitude, shop.Latitude, shop.Longitude)
			e.DistanceMeters = &d
		}
		entries = append(entries, e)
	}

	sortEntries(entries, opts.Sort)

	total := len(entries)
	page := opts.Page
	if page < 1 {
		page = 1
	}
	size := opts.PageSize
	if size < 1 {
		size = total
	}

	start := (page - 1) * size
	if start >= total {
		return []Entry{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return entries[start:end], total
}

func sortEntries(entries []Entry, mode SortMode) {
	switch mode {
	case SortSuitability:
		sort.SliceStable(entries, func(i, j int) bool {
			return suitabilityOf(entries[i]) > suitabilityOf(entries[j])
		})
	case SortDistance:
		sort.SliceStable(entries, func(i, j int) bool {
			return distanceOf(entries[i]) < distanceOf(entries[j])
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Rating > entries[j].Rating
		})
	}
}

func suitabilityOf(e Entry) int {
	if e.Suitability == nil {
		return -1
	}
	return e.Suitability.Score
}

func distanceOf(e Entry) float64 {
	if e.DistanceMeters == nil {
		return math.Inf(1)
	}
	return *e.DistanceMeters
}
