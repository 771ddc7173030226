// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/brewfinder/internal/config"
	"github.com/tomtom215/brewfinder/internal/database"
	"github.com/tomtom215/brewfinder/internal/models"
	"github.com/tomtom215/brewfinder/internal/recommend"
)

// fakeStore is an in-memory Store for handler tests. Only the behavior
// the handlers observe is modeled: sentinel errors for missing and
// duplicate rows, plus simple filtered listings.
type fakeStore struct {
	shops       map[string]*models.Shop
	favorites   map[string]map[string]*models.Favorite // userID -> shopID
	visits      []models.Visit
	reviews     []models.Review
	submissions map[string]*models.Submission
	reports     map[string]*models.Report

	// err, when set, is returned by every method to exercise the
	// DATABASE_ERROR path.
	err error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		shops:       make(map[string]*models.Shop),
		favorites:   make(map[string]map[string]*models.Favorite),
		submissions: make(map[string]*models.Submission),
		reports:     make(map[string]*models.Report),
	}
}

func (f *fakeStore) addShop(shop models.Shop) *models.Shop {
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	if shop.Status == "" {
		shop.Status = models.ShopStatusApproved
	}
	f.shops[shop.ID] = &shop
	return &shop
}

func (f *fakeStore) GetShop(_ context.Context, id string) (*models.Shop, error) {
	if f.err != nil {
		return nil, f.err
	}
	shop, ok := f.shops[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return shop, nil
}

func (f *fakeStore) ListApprovedShops(_ context.Context, city string, bounds *models.BoundingBox) ([]models.Shop, error) {
	if f.err != nil {
		return nil, f.err
	}
	shops := []models.Shop{}
	for _, shop := range f.shops {
		if shop.Status != models.ShopStatusApproved {
			continue
		}
		if city != "" && shop.City != city {
			continue
		}
		if bounds != nil {
			if shop.Latitude < bounds.MinLat || shop.Latitude > bounds.MaxLat ||
				shop.Longitude < bounds.MinLng || shop.Longitude > bounds.MaxLng {
				continue
			}
		}
		shops = append(shops, *shop)
	}
	return shops, nil
}

func (f *fakeStore) AddFavorite(_ context.Context, shopID, userID string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.shops[shopID]; !ok {
		return database.ErrNotFound
	}
	if _, ok := f.favorites[userID][shopID]; ok {
		return database.ErrDuplicate
	}
	if f.favorites[userID] == nil {
		f.favorites[userID] = make(map[string]*models.Favorite)
	}
	f.favorites[userID][shopID] = &models.Favorite{
		ShopID:    shopID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeStore) RemoveFavorite(_ context.Context, shopID, userID string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.favorites[userID][shopID]; !ok {
		return database.ErrNotFound
	}
	delete(f.favorites[userID], shopID)
	return nil
}

func (f *fakeStore) ListFavorites(_ context.Context, userID string) ([]models.Favorite, error) {
	if f.err != nil {
		return nil, f.err
	}
	favs := []models.Favorite{}
	for _, fav := range f.favorites[userID] {
		favs = append(favs, *fav)
	}
	return favs, nil
}

func (f *fakeStore) InsertVisit(_ context.Context, visit *models.Visit) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.shops[visit.ShopID]; !ok {
		return database.ErrNotFound
	}
	visit.ID = uuid.New().String()
	visit.VisitedAt = time.Now()
	f.visits = append(f.visits, *visit)
	return nil
}

func (f *fakeStore) GetRecentVisits(_ context.Context, userID string, limit int) ([]models.Visit, error) {
	if f.err != nil {
		return nil, f.err
	}
	visits := []models.Visit{}
	for _, v := range f.visits {
		if v.UserID == userID && len(visits) < limit {
			visits = append(visits, v)
		}
	}
	return visits, nil
}

func (f *fakeStore) InsertReview(_ context.Context, review *models.Review) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.shops[review.ShopID]; !ok {
		return database.ErrNotFound
	}
	for _, existing := range f.reviews {
		if existing.ShopID == review.ShopID && existing.UserID == review.UserID {
			return database.ErrDuplicate
		}
	}
	review.ID = uuid.New().String()
	review.CreatedAt = time.Now()
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeStore) ListReviewsByShop(_ context.Context, shopID string) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	reviews := []models.Review{}
	for _, r := range f.reviews {
		if r.ShopID == shopID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

func (f *fakeStore) ListReviewsByUser(_ context.Context, userID string) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	reviews := []models.Review{}
	for _, r := range f.reviews {
		if r.UserID == userID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

func (f *fakeStore) InsertSubmission(_ context.Context, sub *models.Submission) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.shops {
		if existing.Name == sub.Name && existing.Address == sub.Address && existing.City == sub.City {
			return database.ErrDuplicate
		}
	}
	for _, existing := range f.submissions {
		if existing.Name == sub.Name && existing.Address == sub.Address && existing.City == sub.City {
			return database.ErrDuplicate
		}
	}
	sub.ID = uuid.New().String()
	sub.Status = models.SubmissionStatusPending
	sub.CreatedAt = time.Now()
	f.submissions[sub.ID] = sub
	return nil
}

func (f *fakeStore) GetSubmission(_ context.Context, id string) (*models.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	sub, ok := f.submissions[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return sub, nil
}

func (f *fakeStore) ListSubmissions(_ context.Context, status string) ([]models.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	subs := []models.Submission{}
	for _, sub := range f.submissions {
		if status == "" || sub.Status == status {
			subs = append(subs, *sub)
		}
	}
	return subs, nil
}

func (f *fakeStore) ApproveSubmission(_ context.Context, id string) (*models.Shop, error) {
	if f.err != nil {
		return nil, f.err
	}
	sub, ok := f.submissions[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	switch sub.Status {
	case models.SubmissionStatusApproved:
		return f.shops[*sub.ShopID], nil
	case models.SubmissionStatusRejected:
		return nil, database.ErrDuplicate
	}
	shop := f.addShop(models.Shop{
		Name:     sub.Name,
		Address:  sub.Address,
		City:     sub.City,
		Features: sub.Features,
	})
	now := time.Now()
	sub.Status = models.SubmissionStatusApproved
	sub.ShopID = &shop.ID
	sub.ReviewedAt = &now
	return shop, nil
}

func (f *fakeStore) RejectSubmission(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	sub, ok := f.submissions[id]
	if !ok {
		return database.ErrNotFound
	}
	if sub.Status != models.SubmissionStatusPending {
		return database.ErrDuplicate
	}
	now := time.Now()
	sub.Status = models.SubmissionStatusRejected
	sub.ReviewedAt = &now
	return nil
}

func (f *fakeStore) InsertReport(_ context.Context, report *models.Report) error {
	if f.err != nil {
		return f.err
	}
	report.ID = uuid.New().String()
	report.Status = models.ReportStatusPending
	report.CreatedAt = time.Now()
	f.reports[report.ID] = report
	return nil
}

func (f *fakeStore) GetReport(_ context.Context, id string) (*models.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	report, ok := f.reports[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return report, nil
}

func (f *fakeStore) ListReports(_ context.Context, status string) ([]models.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	reports := []models.Report{}
	for _, report := range f.reports {
		if status == "" || report.Status == status {
			reports = append(reports, *report)
		}
	}
	return reports, nil
}

func (f *fakeStore) UpdateReportStatus(_ context.Context, id, status string) error {
	if f.err != nil {
		return f.err
	}
	report, ok := f.reports[id]
	if !ok {
		return database.ErrNotFound
	}
	now := time.Now()
	report.Status = status
	report.ResolvedAt = &now
	return nil
}

func (f *fakeStore) GetAdminAnalytics(_ context.Context) (*models.AdminAnalytics, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AdminAnalytics{
		TotalShops:   len(f.shops),
		TotalReviews: len(f.reviews),
	}, nil
}

func (f *fakeStore) Ping(_ context.Context) error {
	return f.err
}

// fakeEngine records invalidations and returns a canned response.
type fakeEngine struct {
	response    *recommend.Response
	err         error
	invalidated []string
}

func (f *fakeEngine) Recommend(_ context.Context, _ string) (*recommend.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.response != nil {
		return f.response, nil
	}
	return &recommend.Response{}, nil
}

func (f *fakeEngine) InvalidateUser(userID string) {
	f.invalidated = append(f.invalidated, userID)
}

func shopFixture(name, city string) models.Shop {
	return models.Shop{
		Name:    name,
		Address: "1 Test St",
		City:    city,
		Rating:  4.0,
		Features: models.ShopFeatures{
			Noise: 2, Outlets: 4, Wifi: 4, Seating: 3, Lighting: 3, Privacy: 3,
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DefaultPageSize:    20,
			MaxPageSize:        100,
			RateLimitReqs:      100,
			RateLimitWindow:    time.Minute,
			WriteRateLimitReqs: 30,
		},
	}
}
