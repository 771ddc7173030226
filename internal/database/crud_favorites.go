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

// AddFavorite records that a user favorited a shop. Returns ErrDuplicate
// if the pair already exists and ErrNotFound if the shop does not exist.
func (db *DB) AddFavorite(ctx context.Context, shopID, userID string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var shopExists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM shops WHERE id = ?)`, shopID).Scan(&shopExists)
	if err != nil {
		return fmt.Errorf("failed to check shop existence: %w", err)
	}
	if !shopExists {
		return fmt.Errorf("shop %s: %w", shopID, ErrNotFound)
	}

	var favExists bool
	err = db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE shop_id = ? AND user_id = ?)`,
		shopID, userID).Scan(&favExists)
	if err != nil {
		return fmt.Errorf("failed to check favorite existence: %w", err)
	}
	if favExists {
		return fmt.Errorf("favorite for shop %s: %w", shopID, ErrDuplicate)
	}

	start := time.Now()
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO favorites (shop_id, user_id, created_at) VALUES (?, ?, ?)`,
		shopID, userID, time.Now().UTC())
	metrics.RecordDBQuery("insert", "favorites", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// RemoveFavorite deletes a (shop, user) favorite pair. Returns
// ErrNotFound when no such pair exists.
func (db *DB) RemoveFavorite(ctx context.Context, shopID, userID string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM favorites WHERE shop_id = ? AND user_id = ?`, shopID, userID)
	metrics.RecordDBQuery("delete", "favorites", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("favorite for shop %s: %w", shopID, ErrNotFound)
	}

	return nil
}

// ListFavorites returns a user's favorite records, newest first.
func (db *DB) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT shop_id, user_id, created_at FROM favorites
		 WHERE user_id = ? ORDER BY created_at DESC`, userID)
	metrics.RecordDBQuery("select", "favorites", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer closeQuietly(rows)

	favorites := []models.Favorite{}
	for rows.Next() {
		var fav models.Favorite
		if err := rows.Scan(&fav.ShopID, &fav.UserID, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return favorites, nil
}

// GetFavoriteShops returns the full shop records a user has favorited,
// newest favorite first. Feeds preference derivation in the
// recommendation engine.
func (db *DB) GetFavoriteShops(ctx context.Context, userID string) ([]models.Shop, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT s.id, s.name, s.address, s.city, s.latitude, s.longitude, s.price_level,
			s.rating, s.tags, s.noise, s.outlets, s.wifi, s.seating, s.lighting, s.privacy,
			s.status, s.created_at
		 FROM favorites f
		 JOIN shops s ON s.id = f.shop_id
		 WHERE f.user_id = ?
		 ORDER BY f.created_at DESC`, userID)
	metrics.RecordDBQuery("select", "favorites", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite shops: %w", err)
	}
	defer closeQuietly(rows)

	return scanShops(rows)
}
