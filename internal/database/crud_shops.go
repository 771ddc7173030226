// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/brewfinder/internal/metrics"
	"github.com/tomtom215/brewfinder/internal/models"
)

// shopColumns is the canonical column list for shop scans. Keep in sync
// with scanShop.
const shopColumns = `id, name, address, city, latitude, longitude, price_level,
	rating, tags, noise, outlets, wifi, seating, lighting, privacy, status, created_at`

// InsertShop inserts a new shop into the catalog. A zero ID is assigned
// a fresh UUID; a zero CreatedAt is set to now.
func (db *DB) InsertShop(ctx context.Context, shop *models.Shop) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = time.Now().UTC()
	}
	if shop.Status == "" {
		shop.Status = models.ShopStatusApproved
	}

	tags, err := encodeTags(shop.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	start := time.Now()
	_, err = db.conn.ExecContext(ctx, `INSERT INTO shops (
		id, name, address, city, latitude, longitude, price_level,
		rating, tags, noise, outlets, wifi, seating, lighting, privacy, status, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		shop.ID, shop.Name, shop.Address, shop.City, shop.Latitude, shop.Longitude,
		shop.PriceLevel, shop.Rating, tags,
		shop.Features.Noise, shop.Features.Outlets, shop.Features.Wifi,
		shop.Features.Seating, shop.Features.Lighting, shop.Features.Privacy,
		shop.Status, shop.CreatedAt,
	)
	metrics.RecordDBQuery("insert", "shops", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert shop: %w", err)
	}

	return nil
}

// GetShop retrieves a single shop by ID. Returns ErrNotFound when the ID
// matches no row.
func (db *DB) GetShop(ctx context.Context, id string) (*models.Shop, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE id = ?`, id)

	shop, err := scanShop(row)
	metrics.RecordDBQuery("select", "shops", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shop %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return shop, nil
}

// ListApprovedShops returns all approved shops, optionally filtered by
// city and viewport. Pass an empty city and a nil bounds for the full
// catalog.
func (db *DB) ListApprovedShops(ctx context.Context, city string, bounds *models.BoundingBox) ([]models.Shop, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ` + shopColumns + ` FROM shops WHERE status = ?`
	args := []interface{}{models.ShopStatusApproved}
	if city != "" {
		query += ` AND city = ?`
		args = append(args, city)
	}
	if bounds != nil {
		query += ` AND latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?`
		args = append(args, bounds.MinLat, bounds.MaxLat, bounds.MinLng, bounds.MaxLng)
	}
	query += ` ORDER BY name`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "shops", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer closeQuietly(rows)

	return scanShops(rows)
}

// GetApprovedShopsExcluding returns every approved shop whose ID is not
// in excludeIDs. This is the recommendation candidate query: the
// exclusion happens here so already-known shops never leave the database.
func (db *DB) GetApprovedShopsExcluding(ctx context.Context, excludeIDs []string) ([]models.Shop, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ` + shopColumns + ` FROM shops WHERE status = ?`
	args := []interface{}{models.ShopStatusApproved}

	if len(excludeIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(excludeIDs)), ", ")
		query += ` AND id NOT IN (` + placeholders + `)`
		for _, id := range excludeIDs {
			args = append(args, id)
		}
	}
	query += ` ORDER BY name`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "shops", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate shops: %w", err)
	}
	defer closeQuietly(rows)

	return scanShops(rows)
}

// UpdateShopStatus sets a shop's lifecycle status. Returns ErrNotFound
// when the ID matches no row.
func (db *DB) UpdateShopStatus(ctx context.Context, id, status string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.conn.ExecContext(ctx,
		`UPDATE shops SET status = ? WHERE id = ?`, status, id)
	metrics.RecordDBQuery("update", "shops", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to update shop status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shop %s: %w", id, ErrNotFound)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanShop scans a single shop row using the shopColumns order.
func scanShop(row rowScanner) (*models.Shop, error) {
	var shop models.Shop
	var tags string

	err := row.Scan(
		&shop.ID, &shop.Name, &shop.Address, &shop.City,
		&shop.Latitude, &shop.Longitude, &shop.PriceLevel,
		&shop.Rating, &tags,
		&shop.Features.Noise, &shop.Features.Outlets, &shop.Features.Wifi,
		&shop.Features.Seating, &shop.Features.Lighting, &shop.Features.Privacy,
		&shop.Status, &shop.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	shop.Tags, err = decodeTags(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tags for shop %s: %w", shop.ID, err)
	}

	return &shop, nil
}

// scanShops drains a result set of shop rows. Returns an empty slice,
// never nil, for zero rows.
func scanShops(rows *sql.Rows) ([]models.Shop, error) {
	shops := []models.Shop{}
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, *shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shops: %w", err)
	}
	return shops, nil
}

// encodeTags serializes a tag list as a JSON array. nil encodes as [].
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := gojson.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeTags parses a JSON array of tags. Empty input decodes as an
// empty slice.
func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := gojson.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
