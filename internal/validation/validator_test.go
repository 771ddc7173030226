// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package validation

import (
	"strings"
	"testing"
)

type listingRequest struct {
	City     string `validate:"omitempty,city"`
	Scene    string `validate:"omitempty,scene"`
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=100"`
}

type reviewRequest struct {
	ShopID string `validate:"required,uuid"`
	Noise  int    `validate:"min=1,max=5"`
	Wifi   int    `validate:"min=1,max=5"`
}

func TestValidateStruct_Valid(t *testing.T) {
	req := listingRequest{City: "New York", Scene: "Remote Work", Page: 1, PageSize: 20}
	if verr := ValidateStruct(&req); verr != nil {
		t.Errorf("ValidateStruct() = %v, want nil", verr)
	}
}

func TestValidateStruct_SceneValidator(t *testing.T) {
	tests := []struct {
		scene string
		valid bool
	}{
		{"Study", true},
		{"Remote Work", true},
		{"Date", true},
		{"Meeting", true},
		{"", true}, // omitempty
		{"study", false},
		{"Brunch", false},
	}

	for _, tt := range tests {
		t.Run("scene="+tt.scene, func(t *testing.T) {
			req := listingRequest{Scene: tt.scene, Page: 1, PageSize: 20}
			verr := ValidateStruct(&req)
			if (verr == nil) != tt.valid {
				t.Errorf("ValidateStruct(scene=%q) valid = %v, want %v", tt.scene, verr == nil, tt.valid)
			}
		})
	}
}

func TestValidateStruct_CityValidator(t *testing.T) {
	req := listingRequest{City: "Chicago", Page: 1, PageSize: 20}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected city validation failure")
	}
	if !strings.Contains(verr.Error(), "supported city") {
		t.Errorf("error = %q, want supported-city message", verr.Error())
	}
}

func TestValidateStruct_RangeErrors(t *testing.T) {
	req := reviewRequest{ShopID: "not-a-uuid", Noise: 0, Wifi: 9}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation failure")
	}
	if len(verr.Errors()) != 3 {
		t.Errorf("got %d errors, want 3", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("multi-error details missing fields list")
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	req := reviewRequest{ShopID: "0b7aa9a2-3b6a-4a72-a1b3-5b9f2f5a1234", Noise: 1, Wifi: 6}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation failure")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Details["field"] != "Wifi" {
		t.Errorf("Details.field = %v, want Wifi", apiErr.Details["field"])
	}
	if !strings.Contains(apiErr.Message, "at most 5") {
		t.Errorf("Message = %q, want max message", apiErr.Message)
	}
}
