// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/brewfinder/internal/logging"
	"github.com/tomtom215/brewfinder/internal/metrics"
	"github.com/tomtom215/brewfinder/internal/models"
)

// reviewColumns is the canonical column list for review scans. Keep in
// sync with scanReview.
const reviewColumns = `id, shop_id, user_id, noise, outlets, wifi, seating,
	lighting, privacy, busyness, review_text, created_at`

// InsertReview stores a user's review of a shop and refreshes the shop's
// aggregate rating. At most one review exists per (shop, user) pair:
// a second insert returns ErrDuplicate. Returns ErrNotFound if the shop
// does not exist.
func (db *DB) InsertReview(ctx context.Context, review *models.Review) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var shopExists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM shops WHERE id = ?)`, review.ShopID).Scan(&shopExists)
	if err != nil {
		return fmt.Errorf("failed to check shop existence: %w", err)
	}
	if !shopExists {
		return fmt.Errorf("shop %s: %w", review.ShopID, ErrNotFound)
	}

	var reviewExists bool
	err = db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE shop_id = ? AND user_id = ?)`,
		review.ShopID, review.UserID).Scan(&reviewExists)
	if err != nil {
		return fmt.Errorf("failed to check review existence: %w", err)
	}
	if reviewExists {
		return fmt.Errorf("review for shop %s: %w", review.ShopID, ErrDuplicate)
	}

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	start := time.Now()
	_, err = db.conn.ExecContext(ctx, `INSERT INTO reviews (
		id, shop_id, user_id, noise, outlets, wifi, seating, lighting, privacy,
		busyness, review_text, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		review.ID, review.ShopID, review.UserID,
		review.Ratings.Noise, review.Ratings.Outlets, review.Ratings.Wifi,
		review.Ratings.Seating, review.Ratings.Lighting, review.Ratings.Privacy,
		review.Ratings.Busyness, review.Text, review.CreatedAt,
	)
	metrics.RecordDBQuery("insert", "reviews", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	// Keep the aggregate current so listings reflect the new review
	// immediately; the background refresh job is a safety net, not the
	// primary path.
	if err := db.RefreshShopRating(ctx, review.ShopID); err != nil {
		logging.Warn().Str("shop_id", review.ShopID).Err(err).
			Msg("Failed to refresh shop rating after review insert")
	}

	return nil
}

// ListReviewsByShop returns all reviews for a shop, newest first.
func (db *DB) ListReviewsByShop(ctx context.Context, shopID string) ([]models.Review, error) {
	return db.listReviews(ctx, `shop_id`, shopID)
}

// ListReviewsByUser returns all reviews written by a user, newest first.
func (db *DB) ListReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return db.listReviews(ctx, `user_id`, userID)
}

func (db *DB) listReviews(ctx context.Context, column, value string) ([]models.Review, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE `+column+` = ? ORDER BY created_at DESC`,
		value)
	metrics.RecordDBQuery("select", "reviews", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer closeQuietly(rows)

	reviews := []models.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, *review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}

// RefreshShopRating recomputes one shop's aggregate rating as the mean
// of each review's six-attribute average. Busyness is excluded:
// it describes a moment, not the venue. Shops with no reviews keep a
// rating of 0.
func (db *DB) RefreshShopRating(ctx context.Context, shopID string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, `UPDATE shops SET rating = COALESCE((
		SELECT AVG((noise + outlets + wifi + seating + lighting + privacy) / 6.0)
		FROM reviews WHERE shop_id = shops.id
	), 0) WHERE id = ?`, shopID)
	metrics.RecordDBQuery("update", "shops", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to refresh rating for shop %s: %w", shopID, err)
	}

	return nil
}

// RefreshAllShopRatings recomputes the aggregate rating for every shop
// in a single statement. Called by the background rating refresh job.
func (db *DB) RefreshAllShopRatings(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, `UPDATE shops SET rating = COALESCE((
		SELECT AVG((noise + outlets + wifi + seating + lighting + privacy) / 6.0)
		FROM reviews WHERE shop_id = shops.id
	), 0)`)
	metrics.RecordDBQuery("update", "shops", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to refresh shop ratings: %w", err)
	}

	return nil
}

// scanReview scans a single review row using the reviewColumns order.
func scanReview(row rowScanner) (*models.Review, error) {
	var review models.Review
	var text sql.NullString

	err := row.Scan(
		&review.ID, &review.ShopID, &review.UserID,
		&review.Ratings.Noise, &review.Ratings.Outlets, &review.Ratings.Wifi,
		&review.Ratings.Seating, &review.Ratings.Lighting, &review.Ratings.Privacy,
		&review.Ratings.Busyness, &text, &review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	review.Text = text.String
	return &review, nil
}
