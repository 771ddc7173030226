// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestScene_String(t *testing.T) {
	tests := []struct {
		name     string
		scene    Scene
		expected string
	}{
		{"study", SceneStudy, "Study"},
		{"remote work", SceneRemoteWork, "Remote Work"},
		{"date", SceneDate, "Date"},
		{"meeting", SceneMeeting, "Meeting"},
		{"out of range", Scene(99), "Unknown"},
		{"negative", Scene(-1), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.scene.String()
			if result != tt.expected {
				t.Errorf("Scene(%d).String() = %q, want %q", tt.scene, result, tt.expected)
			}
		})
	}
}

func TestParseScene(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Scene
		wantErr bool
	}{
		{"study", "Study", SceneStudy, false},
		{"remote work with space", "Remote Work", SceneRemoteWork, false},
		{"date", "Date", SceneDate, false},
		{"meeting", "Meeting", SceneMeeting, false},
		{"case sensitive", "study", SceneStudy, true},
		{"empty", "", SceneStudy, true},
		{"unknown", "Brunch", SceneStudy, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScene(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScene(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseScene(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScene_JSONRoundTrip(t *testing.T) {
	for _, scene := range AllScenes() {
		data, err := json.Marshal(scene)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", scene, err)
		}
		var got Scene
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if got != scene {
			t.Errorf("round trip = %v, want %v", got, scene)
		}
	}
}

func TestScene_UnmarshalJSONInvalid(t *testing.T) {
	var s Scene
	if err := s.UnmarshalJSON([]byte(`"Brunch"`)); err == nil {
		t.Error("expected error for unknown scene name")
	}
	if err := s.UnmarshalJSON([]byte(`42`)); err == nil {
		t.Error("expected error for non-string scene")
	}
}

func TestAllScenes_DeclarationOrder(t *testing.T) {
	scenes := AllScenes()
	want := []Scene{SceneStudy, SceneRemoteWork, SceneDate, SceneMeeting}
	if len(scenes) != len(want) {
		t.Fatalf("AllScenes() returned %d scenes, want %d", len(scenes), len(want))
	}
	for i, s := range scenes {
		if s != want[i] {
			t.Errorf("AllScenes()[%d] = %v, want %v", i, s, want[i])
		}
	}
}

func TestValidCity(t *testing.T) {
	tests := []struct {
		city string
		want bool
	}{
		{"Los Angeles", true},
		{"San Francisco", true},
		{"New York", true},
		{"new york", false},
		{"Chicago", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			if got := ValidCity(tt.city); got != tt.want {
				t.Errorf("ValidCity(%q) = %v, want %v", tt.city, got, tt.want)
			}
		})
	}
}

func TestReviewRatings_FeatureAverage(t *testing.T) {
	tests := []struct {
		name    string
		ratings ReviewRatings
		want    float64
	}{
		{
			name:    "all ones",
			ratings: ReviewRatings{Noise: 1, Outlets: 1, Wifi: 1, Seating: 1, Lighting: 1, Privacy: 1, Busyness: 5},
			want:    1.0,
		},
		{
			name:    "all fives",
			ratings: ReviewRatings{Noise: 5, Outlets: 5, Wifi: 5, Seating: 5, Lighting: 5, Privacy: 5, Busyness: 1},
			want:    5.0,
		},
		{
			name:    "mixed excludes busyness",
			ratings: ReviewRatings{Noise: 2, Outlets: 4, Wifi: 3, Seating: 5, Lighting: 1, Privacy: 3, Busyness: 5},
			want:    3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ratings.FeatureAverage(); got != tt.want {
				t.Errorf("FeatureAverage() = %f, want %f", got, tt.want)
			}
		})
	}
}
