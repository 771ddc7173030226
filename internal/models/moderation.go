// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package models

import "time"

// Submission status values.
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Submission is a user-proposed shop listing awaiting moderation.
// Approval creates a catalog Shop and records its ID in ShopID; the
// submission itself is immutable apart from its status.
type Submission struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	PriceLevel  int          `json:"price_level"`
	Tags        []string     `json:"tags"`
	Features    ShopFeatures `json:"features"`
	SubmittedBy string       `json:"submitted_by"`
	Status      string       `json:"status"`
	ShopID      *string      `json:"shop_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	ReviewedAt  *time.Time   `json:"reviewed_at,omitempty"`
}

// Report target types.
const (
	ReportTypeReview = "review"
	ReportTypeShop   = "shop"
	ReportTypeUser   = "user"
)

// Report status values.
const (
	ReportStatusPending   = "pending"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// Report is an abuse report filed by a user against a review, shop, or
// user. Admins resolve or dismiss reports; the report never mutates its
// target directly.
type Report struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	TargetID   string     `json:"target_id"`
	TargetName string     `json:"target_name,omitempty"`
	Reason     string     `json:"reason"`
	ReportedBy string     `json:"reported_by"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
