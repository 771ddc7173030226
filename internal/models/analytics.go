// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package models

// CityCount pairs a city with a count for per-city breakdowns.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// ShopRanking pairs a shop with a count for leaderboard-style breakdowns.
type ShopRanking struct {
	ShopID string `json:"shop_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// AdminAnalytics is the admin dashboard summary. Every figure is computed
// from the store at request time; nothing here is sampled or estimated.
type AdminAnalytics struct {
	TotalShops    int `json:"total_shops"`
	ApprovedShops int `json:"approved_shops"`

	TotalReviews   int `json:"total_reviews"`
	TotalFavorites int `json:"total_favorites"`
	TotalVisits    int `json:"total_visits"`

	// ActiveUsers counts distinct users with at least one favorite,
	// visit, or review.
	ActiveUsers int `json:"active_users"`

	PendingSubmissions int `json:"pending_submissions"`
	PendingReports     int `json:"pending_reports"`

	// AverageRating is the mean aggregate rating across approved shops
	// that have at least one review.
	AverageRating float64 `json:"average_rating"`

	ShopsByCity   []CityCount   `json:"shops_by_city"`
	ReviewsByCity []CityCount   `json:"reviews_by_city"`
	TopFavorited  []ShopRanking `json:"top_favorited"`
}
