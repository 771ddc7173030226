// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"context"

	"github.com/tomtom215/brewfinder/internal/models"
	"github.com/tomtom215/brewfinder/internal/recommend"
)

// Store is the persistence surface the handlers depend on. The
// concrete implementation is *database.DB; tests substitute a fake.
type Store interface {
	// Shops
	GetShop(ctx context.Context, id string) (*models.Shop, error)
	ListApprovedShops(ctx context.Context, city string, bounds *models.BoundingBox) ([]models.Shop, error)

	// Favorites
	AddFavorite(ctx context.Context, shopID, userID string) error
	RemoveFavorite(ctx context.Context, shopID, userID string) error
	ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error)

	// Visits
	InsertVisit(ctx context.Context, visit *models.Visit) error
	GetRecentVisits(ctx context.Context, userID string, limit int) ([]models.Visit, error)

	// Reviews
	InsertReview(ctx context.Context, review *models.Review) error
	ListReviewsByShop(ctx context.Context, shopID string) ([]models.Review, error)
	ListReviewsByUser(ctx context.Context, userID string) ([]models.Review, error)

	// Submissions
	InsertSubmission(ctx context.Context, sub *models.Submission) error
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)
	ListSubmissions(ctx context.Context, status string) ([]models.Submission, error)
	ApproveSubmission(ctx context.Context, id string) (*models.Shop, error)
	RejectSubmission(ctx context.Context, id string) error

	// Reports
	InsertReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id string) (*models.Report, error)
	ListReports(ctx context.Context, status string) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, id, status string) error

	// Analytics
	GetAdminAnalytics(ctx context.Context) (*models.AdminAnalytics, error)

	// Health
	Ping(ctx context.Context) error
}

// Recommender produces personalized shop recommendations. Implemented
// by *recommend.Engine.
type Recommender interface {
	Recommend(ctx context.Context, userID string) (*recommend.Response, error)
	InvalidateUser(userID string)
}
