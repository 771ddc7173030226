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
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/brewfinder/internal/metrics"
	"github.com/tomtom215/brewfinder/internal/models"
)

// submissionColumns is the canonical column list for submission scans.
// Keep in sync with scanSubmission.
const submissionColumns = `id, name, address, city, latitude, longitude, price_level,
	tags, noise, outlets, wifi, seating, lighting, privacy,
	submitted_by, status, shop_id, created_at, reviewed_at`

// InsertSubmission stores a user-proposed shop listing for moderation.
// Returns ErrDuplicate when a shop with the same name, address, and
// city already exists in the catalog, or when an identical submission
// is already queued, regardless of its status.
func (db *DB) InsertSubmission(ctx context.Context, sub *models.Submission) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var shopExists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM shops WHERE name = ? AND address = ? AND city = ?)`,
		sub.Name, sub.Address, sub.City).Scan(&shopExists)
	if err != nil {
		return fmt.Errorf("failed to check shop existence: %w", err)
	}
	if shopExists {
		return fmt.Errorf("shop %q at %q: %w", sub.Name, sub.Address, ErrDuplicate)
	}

	var exists bool
	err = db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM submissions WHERE name = ? AND address = ? AND city = ?)`,
		sub.Name, sub.Address, sub.City).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check submission existence: %w", err)
	}
	if exists {
		return fmt.Errorf("submission %q at %q: %w", sub.Name, sub.Address, ErrDuplicate)
	}

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	if sub.Status == "" {
		sub.Status = models.SubmissionStatusPending
	}

	tags, err := encodeTags(sub.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	start := time.Now()
	_, err = db.conn.ExecContext(ctx, `INSERT INTO submissions (
		id, name, address, city, latitude, longitude, price_level, tags,
		noise, outlets, wifi, seating, lighting, privacy,
		submitted_by, status, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Address, sub.City, sub.Latitude, sub.Longitude,
		sub.PriceLevel, tags,
		sub.Features.Noise, sub.Features.Outlets, sub.Features.Wifi,
		sub.Features.Seating, sub.Features.Lighting, sub.Features.Privacy,
		sub.SubmittedBy, sub.Status, sub.CreatedAt,
	)
	metrics.RecordDBQuery("insert", "submissions", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// GetSubmission retrieves a single submission by ID.
func (db *DB) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)

	sub, err := scanSubmission(row)
	metrics.RecordDBQuery("select", "submissions", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return sub, nil
}

// ListSubmissions returns submissions, newest first, optionally filtered
// by status. Pass an empty status for all.
func (db *DB) ListSubmissions(ctx context.Context, status string) ([]models.Submission, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ` + submissionColumns + ` FROM submissions`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "submissions", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer closeQuietly(rows)

	subs := []models.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return subs, nil
}

// ApproveSubmission approves a pending submission, creates the catalog
// shop from it, and links the shop ID back to the submission. Approving
// an already-approved submission is idempotent and returns the existing
// shop. Approving a rejected submission returns ErrDuplicate.
func (db *DB) ApproveSubmission(ctx context.Context, id string) (*models.Shop, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	sub, err := db.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	switch sub.Status {
	case models.SubmissionStatusApproved:
		if sub.ShopID == nil {
			return nil, fmt.Errorf("approved submission %s has no linked shop", id)
		}
		return db.GetShop(ctx, *sub.ShopID)
	case models.SubmissionStatusRejected:
		return nil, fmt.Errorf("submission %s already rejected: %w", id, ErrDuplicate)
	}

	shop := &models.Shop{
		ID:         uuid.New().String(),
		Name:       sub.Name,
		Address:    sub.Address,
		City:       sub.City,
		Latitude:   sub.Latitude,
		Longitude:  sub.Longitude,
		PriceLevel: sub.PriceLevel,
		Tags:       sub.Tags,
		Features:   sub.Features,
		Status:     models.ShopStatusApproved,
		CreatedAt:  time.Now().UTC(),
	}

	tags, err := encodeTags(shop.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // No-op after commit
	}()

	start := time.Now()
	_, err = tx.ExecContext(ctx, `INSERT INTO shops (
		id, name, address, city, latitude, longitude, price_level,
		rating, tags, noise, outlets, wifi, seating, lighting, privacy, status, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		shop.ID, shop.Name, shop.Address, shop.City, shop.Latitude, shop.Longitude,
		shop.PriceLevel, tags,
		shop.Features.Noise, shop.Features.Outlets, shop.Features.Wifi,
		shop.Features.Seating, shop.Features.Lighting, shop.Features.Privacy,
		shop.Status, shop.CreatedAt,
	)
	if err != nil {
		metrics.RecordDBQuery("insert", "shops", time.Since(start), err)
		return nil, fmt.Errorf("failed to create shop from submission: %w", err)
	}

	reviewedAt := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE submissions SET status = ?, shop_id = ?, reviewed_at = ? WHERE id = ?`,
		models.SubmissionStatusApproved, shop.ID, reviewedAt, id)
	if err != nil {
		metrics.RecordDBQuery("update", "submissions", time.Since(start), err)
		return nil, fmt.Errorf("failed to mark submission approved: %w", err)
	}

	if err := tx.Commit(); err != nil {
		metrics.RecordDBQuery("update", "submissions", time.Since(start), err)
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}
	metrics.RecordDBQuery("update", "submissions", time.Since(start), nil)

	return shop, nil
}

// RejectSubmission marks a pending submission rejected. Rejecting an
// already-reviewed submission returns ErrDuplicate.
func (db *DB) RejectSubmission(ctx context.Context, id string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	sub, err := db.GetSubmission(ctx, id)
	if err != nil {
		return err
	}
	if sub.Status != models.SubmissionStatusPending {
		return fmt.Errorf("submission %s already %s: %w", id, sub.Status, ErrDuplicate)
	}

	start := time.Now()
	_, err = db.conn.ExecContext(ctx,
		`UPDATE submissions SET status = ?, reviewed_at = ? WHERE id = ?`,
		models.SubmissionStatusRejected, time.Now().UTC(), id)
	metrics.RecordDBQuery("update", "submissions", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to reject submission: %w", err)
	}

	return nil
}

// scanSubmission scans a single submission row using the
// submissionColumns order.
func scanSubmission(row rowScanner) (*models.Submission, error) {
	var sub models.Submission
	var tags string
	var shopID sql.NullString
	var reviewedAt sql.NullTime

	err := row.Scan(
		&sub.ID, &sub.Name, &sub.Address, &sub.City,
		&sub.Latitude, &sub.Longitude, &sub.PriceLevel, &tags,
		&sub.Features.Noise, &sub.Features.Outlets, &sub.Features.Wifi,
		&sub.Features.Seating, &sub.Features.Lighting, &sub.Features.Privacy,
		&sub.SubmittedBy, &sub.Status, &shopID, &sub.CreatedAt, &reviewedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Tags, err = decodeTags(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tags for submission %s: %w", sub.ID, err)
	}
	if shopID.Valid {
		sub.ShopID = &shopID.String
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		sub.ReviewedAt = &t
	}

	return &sub, nil
}
