// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/brewfinder/internal/logging"
	"github.com/tomtom215/brewfinder/internal/models"
)

// SeedMockData seeds the catalog with a built-in three-city shop set for
// demos and local development. Seeding is idempotent: a non-empty shops
// table is left untouched.
func (db *DB) SeedMockData(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM shops`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing shops: %w", err)
	}
	if count > 0 {
		logging.Debug().Int("existing_shops", count).Msg("Skipping seed, catalog not empty")
		return nil
	}

	shops := seedShops()
	logging.Info().Int("count", len(shops)).Msg("Seeding mock shop catalog...")

	for i := range shops {
		if err := db.InsertShop(ctx, &shops[i]); err != nil {
			return fmt.Errorf("failed to seed shop %q: %w", shops[i].Name, err)
		}
	}

	logging.Info().Int("count", len(shops)).Msg("Mock shop catalog seeded")
	return nil
}

// seedShops returns the built-in catalog: four shops in each supported
// city, spanning the feature space so every scene has strong and weak
// candidates.
func seedShops() []models.Shop {
	return []models.Shop{
		// Los Angeles
		{
			Name: "Dayglow Silver Lake", Address: "3206 W Sunset Blvd", City: "Los Angeles",
			Latitude: 34.0871, Longitude: -118.2737, PriceLevel: 3,
			Tags:     []string{"specialty coffee", "bright", "minimal"},
			Features: models.ShopFeatures{Noise: 3, Outlets: 2, Wifi: 4, Seating: 3, Lighting: 5, Privacy: 2},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Maru Coffee Arts District", Address: "1019 S Santa Fe Ave", City: "Los Angeles",
			Latitude: 34.0331, Longitude: -118.2310, PriceLevel: 3,
			Tags:     []string{"pour over", "quiet", "minimal"},
			Features: models.ShopFeatures{Noise: 2, Outlets: 2, Wifi: 3, Seating: 2, Lighting: 4, Privacy: 3},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Highland Cafe & Workspace", Address: "5715 N Figueroa St", City: "Los Angeles",
			Latitude: 34.1108, Longitude: -118.1925, PriceLevel: 2,
			Tags:     []string{"laptop friendly", "outlets everywhere", "all day"},
			Features: models.ShopFeatures{Noise: 2, Outlets: 5, Wifi: 5, Seating: 5, Lighting: 4, Privacy: 3},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Echo Park Social", Address: "1551 Echo Park Ave", City: "Los Angeles",
			Latitude: 34.0782, Longitude: -118.2606, PriceLevel: 2,
			Tags:     []string{"lively", "patio", "pet friendly"},
			Features: models.ShopFeatures{Noise: 5, Outlets: 1, Wifi: 2, Seating: 4, Lighting: 3, Privacy: 1},
			Status:   models.ShopStatusApproved,
		},

		// San Francisco
		{
			Name: "Sightglass SoMa", Address: "270 7th St", City: "San Francisco",
			Latitude: 37.7767, Longitude: -122.4085, PriceLevel: 3,
			Tags:     []string{"roastery", "industrial", "specialty coffee"},
			Features: models.ShopFeatures{Noise: 4, Outlets: 2, Wifi: 3, Seating: 4, Lighting: 4, Privacy: 2},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Anchor Point Coffee", Address: "829 Valencia St", City: "San Francisco",
			Latitude: 37.7599, Longitude: -122.4213, PriceLevel: 2,
			Tags:     []string{"quiet", "laptop friendly", "study spot"},
			Features: models.ShopFeatures{Noise: 1, Outlets: 4, Wifi: 4, Seating: 4, Lighting: 4, Privacy: 4},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Fog Lifter Cafe", Address: "1234 9th Ave", City: "San Francisco",
			Latitude: 37.7645, Longitude: -122.4662, PriceLevel: 1,
			Tags:     []string{"neighborhood", "cheap eats", "cozy"},
			Features: models.ShopFeatures{Noise: 3, Outlets: 3, Wifi: 3, Seating: 3, Lighting: 2, Privacy: 3},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Marina Corner Roasters", Address: "2201 Chestnut St", City: "San Francisco",
			Latitude: 37.8007, Longitude: -122.4389, PriceLevel: 3,
			Tags:     []string{"date spot", "wine after 5", "warm lighting"},
			Features: models.ShopFeatures{Noise: 2, Outlets: 1, Wifi: 2, Seating: 3, Lighting: 5, Privacy: 5},
			Status:   models.ShopStatusApproved,
		},

		// New York
		{
			Name: "Devocion Williamsburg", Address: "69 Grand St", City: "New York",
			Latitude: 40.7149, Longitude: -73.9634, PriceLevel: 3,
			Tags:     []string{"skylight", "plants", "specialty coffee"},
			Features: models.ShopFeatures{Noise: 4, Outlets: 2, Wifi: 3, Seating: 5, Lighting: 5, Privacy: 2},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Greenpoint Study Hall", Address: "110 Meserole Ave", City: "New York",
			Latitude: 40.7272, Longitude: -73.9532, PriceLevel: 2,
			Tags:     []string{"study spot", "quiet", "long tables"},
			Features: models.ShopFeatures{Noise: 1, Outlets: 5, Wifi: 5, Seating: 4, Lighting: 4, Privacy: 3},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Bowery Espresso Bar", Address: "308 Bowery", City: "New York",
			Latitude: 40.7253, Longitude: -73.9920, PriceLevel: 2,
			Tags:     []string{"standing room", "espresso", "quick stop"},
			Features: models.ShopFeatures{Noise: 5, Outlets: 1, Wifi: 1, Seating: 1, Lighting: 3, Privacy: 1},
			Status:   models.ShopStatusApproved,
		},
		{
			Name: "Upper West Reading Room", Address: "484 Amsterdam Ave", City: "New York",
			Latitude: 40.7851, Longitude: -73.9754, PriceLevel: 2,
			Tags:     []string{"books", "cozy", "date spot"},
			Features: models.ShopFeatures{Noise: 2, Outlets: 3, Wifi: 3, Seating: 3, Lighting: 5, Privacy: 4},
			Status:   models.ShopStatusApproved,
		},
	}
}
