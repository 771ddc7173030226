// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables and indexes
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// tableCreationQueries returns the table creation SQL statements.
// All columns are defined in the initial CREATE TABLE statements: one
// source of truth, no migrations to run on startup.
func tableCreationQueries() []string {
	return []string{
		// Shop catalog. Feature attributes live in dedicated columns so
		// SQL can filter and aggregate them directly; tags are a JSON
		// array since they are opaque to queries. IDs are TEXT, not UUID:
		// the driver hands UUID columns back as raw bytes when scanned
		// into a Go string.
		`CREATE TABLE IF NOT EXISTS shops (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL,
			price_level INTEGER NOT NULL,
			rating DOUBLE NOT NULL DEFAULT 0,
			tags TEXT NOT NULL DEFAULT '[]',
			noise INTEGER NOT NULL,
			outlets INTEGER NOT NULL,
			wifi INTEGER NOT NULL,
			seating INTEGER NOT NULL,
			lighting INTEGER NOT NULL,
			privacy INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'approved',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS favorites (
			shop_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (shop_id, user_id)
		)`,

		`CREATE TABLE IF NOT EXISTS visits (
			id TEXT PRIMARY KEY,
			shop_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			visited_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS reviews (
			id TEXT PRIMARY KEY,
			shop_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			noise INTEGER NOT NULL,
			outlets INTEGER NOT NULL,
			wifi INTEGER NOT NULL,
			seating INTEGER NOT NULL,
			lighting INTEGER NOT NULL,
			privacy INTEGER NOT NULL,
			busyness INTEGER NOT NULL,
			review_text TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (shop_id, user_id)
		)`,

		`CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL,
			price_level INTEGER NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]',
			noise INTEGER NOT NULL,
			outlets INTEGER NOT NULL,
			wifi INTEGER NOT NULL,
			seating INTEGER NOT NULL,
			lighting INTEGER NOT NULL,
			privacy INTEGER NOT NULL,
			submitted_by TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			shop_id TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			reviewed_at TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			report_type TEXT NOT NULL,
			target_id TEXT NOT NULL,
			target_name TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL,
			reported_by TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			resolved_at TIMESTAMP
		)`,

		// Indexes for the hot query paths: status-filtered catalog scans,
		// per-user activity lookups, and moderation queues.
		`CREATE INDEX IF NOT EXISTS idx_shops_status ON shops(status)`,
		`CREATE INDEX IF NOT EXISTS idx_shops_city ON shops(city)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_user_time ON visits(user_id, visited_at)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_shop ON reviews(shop_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions(status)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_status ON reports(status)`,
	}
}
