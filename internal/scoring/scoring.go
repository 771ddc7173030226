// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

// Package scoring computes scene suitability scores for coffee shops.
//
// A suitability score answers "how good is this shop for this scene?" as an
// integer in [0, 100]. Each scene weights a different subset of the shop's
// rated features; weights within a scene sum to 1.0 or less, so a shop that
// maxes every weighted feature reaches at most 100.
//
// The computation is pure and total: any in-range input produces a score,
// and no errors are returned. Callers are responsible for validating that
// feature values are in [1, 5] and ratings in [0, 5] before scoring.
package scoring

import (
	"math"
	"sort"

	"github.com/tomtom215/brewfinder/internal/metrics"
	"github.com/tomtom215/brewfinder/internal/models"
)

// Feature names as they appear in score breakdowns.
const (
	featureNoise    = "noise"
	featureOutlets  = "outlets"
	featureWifi     = "wifi"
	featureSeating  = "seating"
	featureLighting = "lighting"
	featurePrivacy  = "privacy"
	featureRating   = "rating"
)

// weightedFeature pairs a feature with its weight for one scene.
type weightedFeature struct {
	feature string
	weight  float64
}

// sceneWeights defines the per-scene weight tables. Order within a table is
// presentation order only; breakdowns are re-sorted by contribution.
//
// Noise is inverted before weighting (quiet scores high), and the shop's
// aggregate rating participates only in the Date table.
var sceneWeights = map[models.Scene][]weightedFeature{
	models.SceneStudy: {
		{featureNoise, 0.30},
		{featureOutlets, 0.20},
		{featureSeating, 0.20},
		{featureLighting, 0.15},
		{featureWifi, 0.15},
	},
	models.SceneRemoteWork: {
		{featureWifi, 0.30},
		{featureOutlets, 0.25},
		{featureSeating, 0.20},
		{featureNoise, 0.15},
		{featureLighting, 0.10},
	},
	models.SceneDate: {
		{featurePrivacy, 0.30},
		{featureLighting, 0.25},
		{featureNoise, 0.20},
		{featureSeating, 0.15},
		{featureRating, 0.10},
	},
	models.SceneMeeting: {
		{featureSeating, 0.25},
		{featureNoise, 0.25},
		{featurePrivacy, 0.20},
		{featureWifi, 0.15},
		{featureLighting, 0.15},
	},
}

// normalizedValue maps a feature to its [0, 1] value for scoring.
//
// Feature ratings on the 1-5 scale normalize as (v-1)/4. Noise inverts
// after normalization so that quiet shops score high. The aggregate rating
// is on a 0-5 scale and normalizes as rating/5.
func normalizedValue(feature string, f models.ShopFeatures, rating float64) float64 {
	switch feature {
	case featureNoise:
		return 1.0 - float64(f.Noise-1)/4.0
	case featureOutlets:
		return float64(f.Outlets-1) / 4.0
	case featureWifi:
		return float64(f.Wifi-1) / 4.0
	case featureSeating:
		return float64(f.Seating-1) / 4.0
	case featureLighting:
		return float64(f.Lighting-1) / 4.0
	case featurePrivacy:
		return float64(f.Privacy-1) / 4.0
	case featureRating:
		return rating / 5.0
	default:
		return 0
	}
}

// Compute scores a shop's features for one scene.
//
// The score is the weighted sum of normalized feature values, scaled to
// [0, 100], clamped, and rounded half away from zero. The breakdown lists
// every weighted feature of the scene with its contribution in score
// points, sorted by contribution in descending order.
func Compute(scene models.Scene, features models.ShopFeatures, rating float64) models.SuitabilityScore {
	metrics.SuitabilityComputations.WithLabelValues(scene.String()).Inc()

	weights := sceneWeights[scene]
	breakdown := make([]models.ScoreComponent, 0, len(weights))

	total := 0.0
	for _, wf := range weights {
		nv := normalizedValue(wf.feature, features, rating)
		contribution := wf.weight * nv
		total += contribution
		breakdown = append(breakdown, models.ScoreComponent{
			Feature:         wf.feature,
			Weight:          wf.weight,
			NormalizedValue: nv,
			Contribution:    contribution * 100,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Contribution > breakdown[j].Contribution
	})

	score := math.Round(clamp(total*100, 0, 100))

	return models.SuitabilityScore{
		Scene:     scene,
		Score:     int(score),
		Breakdown: breakdown,
	}
}

// ComputeAll scores a shop for every scene, in scene declaration order.
func ComputeAll(features models.ShopFeatures, rating float64) []models.SuitabilityScore {
	scenes := models.AllScenes()
	scores := make([]models.SuitabilityScore, 0, len(scenes))
	for _, scene := range scenes {
		scores = append(scores, Compute(scene, features, rating))
	}
	return scores
}

// BestScene returns the scene the shop scores highest for, with its score.
// Ties resolve to the earliest declared scene.
func BestScene(features models.ShopFeatures, rating float64) (models.Scene, int) {
	best := models.SceneStudy
	bestScore := -1
	for _, s := range ComputeAll(features, rating) {
		if s.Score > bestScore {
			best = s.Scene
			bestScore = s.Score
		}
	}
	return best, bestScore
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
