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

// reportColumns is the canonical column list for report scans. Keep in
// sync with scanReport.
const reportColumns = `id, report_type, target_id, target_name, reason,
	reported_by, status, created_at, resolved_at`

// InsertReport files an abuse report. Reports never mutate their target;
// admins act on them through UpdateReportStatus.
func (db *DB) InsertReport(ctx context.Context, report *models.Report) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = models.ReportStatusPending
	}

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, `INSERT INTO reports (
		id, report_type, target_id, target_name, reason, reported_by, status, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID, report.Type, report.TargetID, report.TargetName,
		report.Reason, report.ReportedBy, report.Status, report.CreatedAt,
	)
	metrics.RecordDBQuery("insert", "reports", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

// GetReport retrieves a single report by ID.
func (db *DB) GetReport(ctx context.Context, id string) (*models.Report, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = ?`, id)

	report, err := scanReport(row)
	metrics.RecordDBQuery("select", "reports", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return report, nil
}

// ListReports returns reports, newest first, optionally filtered by
// status. Pass an empty status for all.
func (db *DB) ListReports(ctx context.Context, status string) ([]models.Report, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ` + reportColumns + ` FROM reports`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("select", "reports", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer closeQuietly(rows)

	reports := []models.Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return reports, nil
}

// UpdateReportStatus resolves or dismisses a report, stamping
// resolved_at. Returns ErrNotFound when the ID matches no row.
func (db *DB) UpdateReportStatus(ctx context.Context, id, status string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.conn.ExecContext(ctx,
		`UPDATE reports SET status = ?, resolved_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	metrics.RecordDBQuery("update", "reports", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("report %s: %w", id, ErrNotFound)
	}

	return nil
}

// scanReport scans a single report row using the reportColumns order.
func scanReport(row rowScanner) (*models.Report, error) {
	var report models.Report
	var resolvedAt sql.NullTime

	err := row.Scan(
		&report.ID, &report.Type, &report.TargetID, &report.TargetName,
		&report.Reason, &report.ReportedBy, &report.Status,
		&report.CreatedAt, &resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if resolvedAt.Valid {
		t := resolvedAt.Time
		report.ResolvedAt = &t
	}

	return &report, nil
}
