// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package recommend

import (
	"github.com/tomtom215/brewfinder/internal/models"
)

// UserPreferenceProfile captures what a user appears to value, derived from
// the shops they have favorited. It is recomputed on every request and
// never persisted.
//
// Boolean preferences use the mean of the corresponding feature over all
// favorited shops: quiet triggers at mean noise <= 2.5, the others at a
// mean of 4 or higher. With no favorites every preference is false and the
// price level defaults to the middle of the 1-4 range.
type UserPreferenceProfile struct {
	// PrefersQuiet is set when the user's favorites average noise <= 2.5.
	PrefersQuiet bool `json:"prefers_quiet"`
	// PrefersNaturalLight is set when favorites average lighting >= 4.
	PrefersNaturalLight bool `json:"prefers_natural_light"`
	// PrefersLargeTables is set when favorites average seating >= 4.
	PrefersLargeTables bool `json:"prefers_large_tables"`
	// PrefersOutlets is set when favorites average outlets >= 4.
	PrefersOutlets bool `json:"prefers_outlets"`
	// PrefersFastWifi is set when favorites average wifi >= 4.
	PrefersFastWifi bool `json:"prefers_fast_wifi"`
	// PreferredPriceLevel is the rounded mean price level of favorites,
	// or 3 when the user has none.
	PreferredPriceLevel int `json:"preferred_price_level"`
	// PreferredScenes lists scenes the profile applies to. Currently all
	// scenes once the user has at least one favorite.
	PreferredScenes []models.Scene `json:"preferred_scenes"`
}

// RecommendedShop is a shop placed in a scene bucket, annotated with the
// suitability score for that bucket's scene, the preference-match
// recommendation score, and how many of the user's boolean preferences the
// shop satisfied.
type RecommendedShop struct {
	models.Shop
	Suitability         int     `json:"suitability"`
	RecommendationScore float64 `json:"recommendation_score"`
	MatchCount          int     `json:"match_count"`
}

// SceneRecommendations is one scene's bucket of recommended shops, best
// match first.
type SceneRecommendations struct {
	Scene models.Scene      `json:"scene"`
	Shops []RecommendedShop `json:"shops"`
}

// Stats summarizes the signals the recommendations were derived from.
type Stats struct {
	FavoritesCount int `json:"favorites_count"`
	VisitsCount    int `json:"visits_count"`
}

// Response is the full recommendation payload for one user: a bucket per
// scene in declaration order, the derived profile, and the input stats.
type Response struct {
	Recommendations []SceneRecommendations `json:"recommendations"`
	UserPreferences UserPreferenceProfile  `json:"user_preferences"`
	Stats           Stats                  `json:"stats"`
}
