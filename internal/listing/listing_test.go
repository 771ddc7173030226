// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package listing

import (
	"math"
	"testing"

	"github.com/tomtom215/brewfinder/internal/models"
)

func testShop(id string, rating float64, features models.ShopFeatures) models.Shop {
	return models.Shop{
		ID:       id,
		Name:     "Shop " + id,
		City:     "San Francisco",
		Rating:   rating,
		Features: features,
		Status:   models.ShopStatusApproved,
	}
}

func quietShop(id string, rating float64) models.Shop {
	return testShop(id, rating, models.ShopFeatures{Noise: 1, Outlets: 5, Wifi: 5, Seating: 5, Lighting: 5, Privacy: 5})
}

func loudShop(id string, rating float64) models.Shop {
	return testShop(id, rating, models.ShopFeatures{Noise: 5, Outlets: 1, Wifi: 1, Seating: 1, Lighting: 1, Privacy: 1})
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		input string
		want  SortMode
		ok    bool
	}{
		{"", SortRating, true},
		{"rating", SortRating, true},
		{"suitability", SortSuitability, true},
		{"distance", SortDistance, true},
		{"Rating", SortRating, false},
		{"nearest", SortRating, false},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			got, ok := ParseSortMode(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseSortMode(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestApply_RatingSort(t *testing.T) {
	shops := []models.Shop{
		quietShop("a", 3.1),
		quietShop("b", 4.8),
		quietShop("c", 4.2),
	}

	entries, total := Apply(shops, Options{Sort: SortRating, Page: 1, PageSize: 10})
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	wantOrder := []string{"b", "c", "a"}
	for i, want := range wantOrder {
		if entries[i].ID != want {
			t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, want)
		}
	}
}

func TestApply_SuitabilitySort(t *testing.T) {
	shops := []models.Shop{
		loudShop("loud", 5.0),
		quietShop("quiet", 1.0),
	}
	scene := models.SceneStudy

	entries, _ := Apply(shops, Options{Scene: &scene, Sort: SortSuitability, Page: 1, PageSize: 10})
	if entries[0].ID != "quiet" {
		t.Errorf("entries[0].ID = %q, want quiet shop first for Study", entries[0].ID)
	}
	for _, e := range entries {
		if e.Suitability == nil {
			t.Fatalf("entry %q missing suitability annotation", e.ID)
		}
		if e.Suitability.Scene != models.SceneStudy {
			t.Errorf("entry %q scored for %v, want Study", e.ID, e.Suitability.Scene)
		}
	}
}

func TestApply_DistanceSort(t *testing.T) {
	near := quietShop("near", 3)
	near.Latitude, near.Longitude = 37.7750, -122.4195
	far := quietShop("far", 5)
	far.Latitude, far.Longitude = 37.8044, -122.2712 // Oakland

	entries, _ := Apply([]models.Shop{far, near}, Options{
		Origin: &Point{Latitude: 37.7749, Longitude: -122.4194},
		Sort:   SortDistance,
		Page:   1, PageSize: 10,
	})

	if entries[0].ID != "near" {
		t.Errorf("entries[0].ID = %q, want near", entries[0].ID)
	}
	if entries[0].DistanceMeters == nil || entries[1].DistanceMeters == nil {
		t.Fatal("missing distance annotations")
	}
	if *entries[0].DistanceMeters >= *entries[1].DistanceMeters {
		t.Errorf("distances not ascending: %.0f then %.0f",
			*entries[0].DistanceMeters, *entries[1].DistanceMeters)
	}
}

func TestApply_DistanceSortWithoutOriginSortsStably(t *testing.T) {
	shops := []models.Shop{quietShop("a", 3), quietShop("b", 4)}
	entries, _ := Apply(shops, Options{Sort: SortDistance, Page: 1, PageSize: 10})
	// No origin: every distance is unknown, so input order is preserved.
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("order = %q, %q; want a, b", entries[0].ID, entries[1].ID)
	}
	if entries[0].DistanceMeters != nil {
		t.Error("distance annotated without an origin")
	}
}

func TestSortEntries_UnknownDistanceSortsLast(t *testing.T) {
	meters := func(m float64) *float64 { return &m }
	entries := []Entry{
		{Shop: quietShop("far", 2), DistanceMeters: meters(2400)},
		{Shop: quietShop("unknown", 5)}, // best rating, no distance
		{Shop: quietShop("near", 3), DistanceMeters: meters(120)},
	}

	sortEntries(entries, SortDistance)

	wantOrder := []string{"near", "far", "unknown"}
	for i, want := range wantOrder {
		if entries[i].ID != want {
			t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, want)
		}
	}
}

func TestApply_Pagination(t *testing.T) {
	shops := make([]models.Shop, 7)
	for i := range shops {
		shops[i] = quietShop(string(rune('a'+i)), float64(7-i))
	}

	tests := []struct {
		name     string
		page     int
		pageSize int
		wantIDs  []string
		total    int
	}{
		{"first page", 1, 3, []string{"a", "b", "c"}, 7},
		{"middle page", 2, 3, []string{"d", "e", "f"}, 7},
		{"short last page", 3, 3, []string{"g"}, 7},
		{"past the end", 4, 3, []string{}, 7},
		{"zero page treated as first", 0, 3, []string{"a", "b", "c"}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, total := Apply(shops, Options{Sort: SortRating, Page: tt.page, PageSize: tt.pageSize})
			if total != tt.total {
				t.Errorf("total = %d, want %d", total, tt.total)
			}
			if len(entries) != len(tt.wantIDs) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if entries[i].ID != want {
					t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, want)
				}
			}
		})
	}
}

func TestApply_EmptyInput(t *testing.T) {
	entries, total := Apply(nil, Options{Sort: SortRating, Page: 1, PageSize: 20})
	if total != 0 || len(entries) != 0 {
		t.Errorf("Apply(nil) = %d entries, total %d; want empty", len(entries), total)
	}
}

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantMeters             float64
		tolerance              float64
	}{
		{"same point", 37.7749, -122.4194, 37.7749, -122.4194, 0, 0.1},
		{"sf to la", 34.0522, -118.2437, 37.7749, -122.4194, 559120, 5000},
		{"one degree latitude", 0, 0, 1, 0, 111195, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.wantMeters) > tt.tolerance {
				t.Errorf("Haversine = %.0f m, want %.0f ± %.0f", got, tt.wantMeters, tt.tolerance)
			}
		})
	}
}
