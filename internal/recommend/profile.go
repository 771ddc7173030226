// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package recommend

import (
	"math"

	"github.com/tomtom215/brewfinder/internal/models"
)

// Preference thresholds. Noise inverts: low means quiet.
const (
	quietThreshold = 2.5
	likeThreshold  = 4.0

	// neutralPriceLevel is assumed for users with no favorites.
	neutralPriceLevel = 3
)

// DeriveProfile computes a preference profile from the user's favorited
// shops. An empty favorites list produces the neutral profile: no boolean
// preferences and the neutral price level.
func DeriveProfile(favorites []models.Shop) UserPreferenceProfile {
	profile := UserPreferenceProfile{
		PreferredPriceLevel: neutralPriceLevel,
		PreferredScenes:     []models.Scene{},
	}
	if len(favorites) == 0 {
		return profile
	}

	var noise, lighting, seating, outlets, wifi, price float64
	for _, shop := range favorites {
		noise += float64(shop.Features.Noise)
		lighting += float64(shop.Features.Lighting)
		seating += float64(shop.Features.Seating)
		outlets += float64(shop.Features.Outlets)
		wifi += float64(shop.Features.Wifi)
		price += float64(shop.PriceLevel)
	}
	n := float64(len(favorites))

	profile.PrefersQuiet = noise/n <= quietThreshold
	profile.PrefersNaturalLight = lighting/n >= likeThreshold
	profile.PrefersLargeTables = seating/n >= likeThreshold
	profile.PrefersOutlets = outlets/n >= likeThreshold
	profile.PrefersFastWifi = wifi/n >= likeThreshold
	profile.PreferredPriceLevel = int(math.Round(price / n))
	profile.PreferredScenes = models.AllScenes()

	return profile
}
