// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package models

import (
	"fmt"
	"time"
)

// Scene identifies a usage scenario a coffee shop can be scored against.
// The zero value is SceneStudy. Declaration order is significant: ties in
// per-scene comparisons resolve to the earliest declared scene.
type Scene int

const (
	// SceneStudy favors quiet rooms with outlets and steady seating.
	SceneStudy Scene = iota
	// SceneRemoteWork favors reliable wifi and all-day workability.
	SceneRemoteWork
	// SceneDate favors privacy, lighting, and overall quality.
	SceneDate
	// SceneMeeting favors seating capacity and moderate noise.
	SceneMeeting
)

// sceneNames maps scenes to their canonical wire representation.
var sceneNames = [...]string{
	SceneStudy:      "Study",
	SceneRemoteWork: "Remote Work",
	SceneDate:       "Date",
	SceneMeeting:    "Meeting",
}

// String returns the canonical name for the scene, or "Unknown" for
// out-of-range values.
func (s Scene) String() string {
	if s < 0 || int(s) >= len(sceneNames) {
		return "Unknown"
	}
	return sceneNames[s]
}

// Valid reports whether the scene is one of the declared values.
func (s Scene) Valid() bool {
	return s >= SceneStudy && s <= SceneMeeting
}

// MarshalJSON encodes the scene as its canonical name.
func (s Scene) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a scene from its canonical name.
func (s *Scene) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid scene: %s", data)
	}
	parsed, err := ParseScene(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseScene converts a canonical scene name to its Scene value.
func ParseScene(name string) (Scene, error) {
	for i, n := range sceneNames {
		if n == name {
			return Scene(i), nil
		}
	}
	return SceneStudy, fmt.Errorf("unknown scene: %q", name)
}

// AllScenes returns every scene in declaration order.
func AllScenes() []Scene {
	return []Scene{SceneStudy, SceneRemoteWork, SceneDate, SceneMeeting}
}

// SupportedCities lists the cities the catalog covers. Listings, submissions,
// and seed data are constrained to this set.
var SupportedCities = []string{"Los Angeles", "San Francisco", "New York"}

// ValidCity reports whether city is one of the supported cities.
func ValidCity(city string) bool {
	for _, c := range SupportedCities {
		if c == city {
			return true
		}
	}
	return false
}

// Shop status values. Only approved shops appear in listings and
// recommendations.
const (
	ShopStatusApproved = "approved"
	ShopStatusPending  = "pending"
	ShopStatusRemoved  = "removed"
)

// ShopFeatures holds the six rated attributes of a shop, each on a 1-5
// scale. These drive suitability scoring and preference matching.
//
// Scale semantics:
//   - Noise: 1 = silent, 5 = loud
//   - Outlets, Wifi, Seating, Lighting, Privacy: 1 = poor, 5 = excellent
type ShopFeatures struct {
	Noise    int `json:"noise"`
	Outlets  int `json:"outlets"`
	Wifi     int `json:"wifi"`
	Seating  int `json:"seating"`
	Lighting int `json:"lighting"`
	Privacy  int `json:"privacy"`
}

// Shop represents a coffee shop in the catalog.
//
// Fields:
//   - ID: UUID primary key
//   - Rating: aggregate 0-5 rating recomputed from reviews
//   - Tags: free-form descriptors ("specialty coffee", "pet friendly")
//   - Features: the six 1-5 rated attributes
//   - Status: lifecycle state; only "approved" shops are listed
//
// Example:
//
//	{
//	  "id": "7f9c...",
//	  "name": "Verve Roasters",
//	  "city": "San Francisco",
//	  "price_level": 2,
//	  "rating": 4.3,
//	  "features": {"noise": 2, "outlets": 4, ...}
//	}
type Shop struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Address    string       `json:"address"`
	City       string       `json:"city"`
	Latitude   float64      `json:"latitude"`
	Longitude  float64      `json:"longitude"`
	PriceLevel int          `json:"price_level"`
	Rating     float64      `json:"rating"`
	Tags       []string     `json:"tags"`
	Features   ShopFeatures `json:"features"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

// BoundingBox is a geographic viewport filter. Min/Max pairs are
// inclusive; callers validate that Min <= Max on both axes.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// SuitabilityScore is the result of scoring a shop for a scene: an overall
// 0-100 score plus the weighted component breakdown that produced it.
// Computed on demand, never persisted.
type SuitabilityScore struct {
	Scene     Scene            `json:"scene"`
	Score     int              `json:"score"`
	Breakdown []ScoreComponent `json:"breakdown"`
}

// ScoreComponent is one weighted term of a suitability score. Contribution
// is expressed in score points (weight * normalized value * 100), and
// breakdowns are sorted by it in descending order.
type ScoreComponent struct {
	Feature         string  `json:"feature"`
	Weight          float64 `json:"weight"`
	NormalizedValue float64 `json:"normalized_value"`
	Contribution    float64 `json:"contribution"`
}
