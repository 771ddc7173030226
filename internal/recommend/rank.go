// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/brewfinder/internal/models"
	"github.com/tomtom215/brewfinder/internal/scoring"
)

// Preference-match score weights. A full five-preference match with a
// perfect rating and matching price level tops out at 120.
const (
	quietBonus   = 20
	lightBonus   = 20
	seatingBonus = 15
	outletsBonus = 15
	wifiBonus    = 15
	priceBonus   = 10

	ratingMultiplier = 5
)

// scoredShop pairs a candidate with its preference-match score and its
// suitability for every scene.
type scoredShop struct {
	shop        models.Shop
	score       float64
	matchCount  int
	suitability map[models.Scene]int
}

// scoreCandidates computes the preference-match score and per-scene
// suitability for every candidate. Candidates are assumed to already
// exclude favorited and recently visited shops.
func scoreCandidates(candidates []models.Shop, profile UserPreferenceProfile) []scoredShop {
	scored := make([]scoredShop, 0, len(candidates))
	for _, shop := range candidates {
		score := 0.0
		matches := 0

		if profile.PrefersQuiet && float64(shop.Features.Noise) <= quietThreshold {
			score += quietBonus
			matches++
		}
		if profile.PrefersNaturalLight && float64(shop.Features.Lighting) >= likeThreshold {
			score += lightBonus
			matches++
		}
		if profile.PrefersLargeTables && float64(shop.Features.Seating) >= likeThreshold {
			score += seatingBonus
			matches++
		}
		if profile.PrefersOutlets && float64(shop.Features.Outlets) >= likeThreshold {
			score += outletsBonus
			matches++
		}
		if profile.PrefersFastWifi && float64(shop.Features.Wifi) >= likeThreshold {
			score += wifiBonus
			matches++
		}

		// Price proximity counts toward the score but not the match count.
		if math.Abs(float64(shop.PriceLevel-profile.PreferredPriceLevel)) <= 1 {
			score += priceBonus
		}

		score += shop.Rating * ratingMultiplier

		suitability := make(map[models.Scene]int, 4)
		for _, s := range scoring.ComputeAll(shop.Features, shop.Rating) {
			suitability[s.Scene] = s.Score
		}

		scored = append(scored, scoredShop{
			shop:        shop,
			score:       score,
			matchCount:  matches,
			suitability: suitability,
		})
	}
	return scored
}

// bestScene returns the scene the shop is most suitable for. Ties resolve
// to the earliest declared scene.
func (s scoredShop) bestScene() models.Scene {
	best := models.SceneStudy
	bestScore := -1
	for _, scene := range models.AllScenes() {
		if s.suitability[scene] > bestScore {
			best = scene
			bestScore = s.suitability[scene]
		}
	}
	return best
}

// bucketize distributes the top candidates into one bucket per scene.
//
// The globally top-scored topN candidates go to the bucket of their best
// scene, capped at bucketCap per scene. Buckets still below bucketMin are
// then backfilled from the FULL scored set, ordered by suitability for
// that scene, so a strong shop can appear in more than one scene's bucket.
func bucketize(scored []scoredShop, topN, bucketCap, bucketMin int) []SceneRecommendations {
	ranked := make([]scoredShop, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	top := ranked
	if len(top) > topN {
		top = top[:topN]
	}

	buckets := make(map[models.Scene][]scoredShop, 4)
	for _, cand := range top {
		scene := cand.bestScene()
		if len(buckets[scene]) < bucketCap {
			buckets[scene] = append(buckets[scene], cand)
		}
	}

	for _, scene := range models.AllScenes() {
		if len(buckets[scene]) >= bucketMin {
			continue
		}
		buckets[scene] = backfill(buckets[scene], scored, scene, bucketMin)
	}

	result := make([]SceneRecommendations, 0, 4)
	for _, scene := range models.AllScenes() {
		shops := make([]RecommendedShop, 0, len(buckets[scene]))
		for _, cand := range buckets[scene] {
			shops = append(shops, RecommendedShop{
				Shop:                cand.shop,
				Suitability:         cand.suitability[scene],
				RecommendationScore: cand.score,
				MatchCount:          cand.matchCount,
			})
		}
		result = append(result, SceneRecommendations{Scene: scene, Shops: shops})
	}
	return result
}

// backfill tops a thin bucket up to bucketMin with the candidates most
// suitable for the scene, skipping shops already in the bucket.
func backfill(bucket []scoredShop, scored []scoredShop, scene models.Scene, bucketMin int) []scoredShop {
	present := make(map[string]bool, len(bucket))
	for _, cand := range bucket {
		present[cand.shop.ID] = true
	}

	pool := make([]scoredShop, 0, len(scored))
	for _, cand := range scored {
		if !present[cand.shop.ID] {
			pool = append(pool, cand)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].suitability[scene] > pool[j].suitability[scene]
	})

	need := bucketMin - len(bucket)
	if need > len(pool) {
		need = len(pool)
	}
	return append(bucket, pool[:need]...)
}
