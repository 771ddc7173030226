// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package models

import "time"

// ReviewRatings holds the per-attribute ratings a user assigns in a review.
// Each value is on a 1-5 scale. Busyness is informational only: it is shown
// to users but excluded from the shop's aggregate rating.
type ReviewRatings struct {
	Noise    int `json:"noise"`
	Outlets  int `json:"outlets"`
	Wifi     int `json:"wifi"`
	Seating  int `json:"seating"`
	Lighting int `json:"lighting"`
	Privacy  int `json:"privacy"`
	Busyness int `json:"busyness"`
}

// FeatureAverage returns the mean of the six core attribute ratings.
// Busyness is excluded; it describes a point in time, not the venue.
func (r ReviewRatings) FeatureAverage() float64 {
	sum := r.Noise + r.Outlets + r.Wifi + r.Seating + r.Lighting + r.Privacy
	return float64(sum) / 6.0
}

// Review is a user's structured review of a shop. At most one review exists
// per (shop, user) pair.
type Review struct {
	ID        string        `json:"id"`
	ShopID    string        `json:"shop_id"`
	UserID    string        `json:"user_id"`
	Ratings   ReviewRatings `json:"ratings"`
	Text      string        `json:"text,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Favorite marks a shop as favorited by a user. Unique per (shop, user).
type Favorite struct {
	ShopID    string    `json:"shop_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Visit records that a user visited a shop. Append-only; users may log any
// number of visits to the same shop.
type Visit struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	UserID    string    `json:"user_id"`
	VisitedAt time.Time `json:"visited_at"`
}
