// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/brewfinder/internal/metrics"
	"github.com/tomtom215/brewfinder/internal/models"
)

// InsertVisit records a shop visit. Visits are append-only: the same
// user may log any number of visits to the same shop. Returns
// ErrNotFound if the shop does not exist.
func (db *DB) InsertVisit(ctx context.Context, visit *models.Visit) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var shopExists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM shops WHERE id = ?)`, visit.ShopID).Scan(&shopExists)
	if err != nil {
		return fmt.Errorf("failed to check shop existence: %w", err)
	}
	if !shopExists {
		return fmt.Errorf("shop %s: %w", visit.ShopID, ErrNotFound)
	}

	if visit.ID == "" {
		visit.ID = uuid.New().String()
	}
	if visit.VisitedAt.IsZero() {
		visit.VisitedAt = time.Now().UTC()
	}

	start := time.Now()
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO visits (id, shop_id, user_id, visited_at) VALUES (?, ?, ?, ?)`,
		visit.ID, visit.ShopID, visit.UserID, visit.VisitedAt)
	metrics.RecordDBQuery("insert", "visits", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}

	return nil
}

// GetRecentVisits returns a user's most recent visits, newest first,
// capped at limit. A limit of 0 or less returns an empty slice.
func (db *DB) GetRecentVisits(ctx context.Context, userID string, limit int) ([]models.Visit, error) {
	if limit <= 0 {
		return []models.Visit{}, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, shop_id, user_id, visited_at FROM visits
		 WHERE user_id = ? ORDER BY visited_at DESC LIMIT ?`, userID, limit)
	metrics.RecordDBQuery("select", "visits", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer closeQuietly(rows)

	visits := []models.Visit{}
	for rows.Next() {
		var v models.Visit
		if err := rows.Scan(&v.ID, &v.ShopID, &v.UserID, &v.VisitedAt); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visits: %w", err)
	}

	return visits, nil
}
