// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/brewfinder/internal/metrics"
	"github.com/tomtom215/brewfinder/internal/models"
)

// topFavoritedLimit caps the favorited-shops leaderboard.
const topFavoritedLimit = 10

// GetAdminAnalytics computes the admin dashboard summary directly from
// the store. Every figure reflects the current state of the data; there
// are no sampled or precomputed metrics.
func (db *DB) GetAdminAnalytics(ctx context.Context) (*models.AdminAnalytics, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	analytics, err := db.computeAdminAnalytics(ctx)
	metrics.RecordDBQuery("select", "analytics", time.Since(start), err)
	return analytics, err
}

func (db *DB) computeAdminAnalytics(ctx context.Context) (*models.AdminAnalytics, error) {
	a := &models.AdminAnalytics{
		ShopsByCity:   []models.CityCount{},
		ReviewsByCity: []models.CityCount{},
		TopFavorited:  []models.ShopRanking{},
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM shops`, &a.TotalShops},
		{`SELECT COUNT(*) FROM shops WHERE status = 'approved'`, &a.ApprovedShops},
		{`SELECT COUNT(*) FROM reviews`, &a.TotalReviews},
		{`SELECT COUNT(*) FROM favorites`, &a.TotalFavorites},
		{`SELECT COUNT(*) FROM visits`, &a.TotalVisits},
		{`SELECT COUNT(*) FROM submissions WHERE status = 'pending'`, &a.PendingSubmissions},
		{`SELECT COUNT(*) FROM reports WHERE status = 'pending'`, &a.PendingReports},
		{`SELECT COUNT(DISTINCT user_id) FROM (
			SELECT user_id FROM favorites
			UNION SELECT user_id FROM visits
			UNION SELECT user_id FROM reviews
		)`, &a.ActiveUsers},
	}
	for _, c := range counts {
		if err := db.conn.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to compute count: %s: %w", c.query, err)
		}
	}

	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(AVG(rating), 0)
		FROM shops WHERE status = 'approved' AND rating > 0`).Scan(&a.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}

	a.ShopsByCity, err = db.cityCounts(ctx,
		`SELECT city, COUNT(*) FROM shops WHERE status = 'approved'
		 GROUP BY city ORDER BY COUNT(*) DESC, city`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute shops by city: %w", err)
	}

	a.ReviewsByCity, err = db.cityCounts(ctx,
		`SELECT s.city, COUNT(*) FROM reviews r
		 JOIN shops s ON s.id = r.shop_id
		 GROUP BY s.city ORDER BY COUNT(*) DESC, s.city`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute reviews by city: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT s.id, s.name, COUNT(*) FROM favorites f
		 JOIN shops s ON s.id = f.shop_id
		 GROUP BY s.id, s.name
		 ORDER BY COUNT(*) DESC, s.name
		 LIMIT ?`, topFavoritedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top favorited: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var ranking models.ShopRanking
		if err := rows.Scan(&ranking.ShopID, &ranking.Name, &ranking.Count); err != nil {
			return nil, fmt.Errorf("failed to scan ranking: %w", err)
		}
		a.TopFavorited = append(a.TopFavorited, ranking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rankings: %w", err)
	}

	return a, nil
}

// cityCounts runs a (city, count) aggregation query.
func (db *DB) cityCounts(ctx context.Context, query string) ([]models.CityCount, error) {
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(rows)

	counts := []models.CityCount{}
	for rows.Next() {
		var cc models.CityCount
		if err := rows.Scan(&cc.City, &cc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}
