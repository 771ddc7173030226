// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/brewfinder/internal/models"
)

// reportRequest is the body of POST /api/v1/reports.
type reportRequest struct {
	Type       string `json:"type" validate:"required,oneof=review shop user"`
	TargetID   string `json:"target_id" validate:"required"`
	TargetName string `json:"target_name" validate:"omitempty,max=200"`
	Reason     string `json:"reason" validate:"required,max=1000"`
}

// HandleCreateReport serves POST /api/v1/reports: files an abuse report
// against a review, shop, or user. Reports enter the moderation queue
// as pending.
func (h *Handler) HandleCreateReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req reportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	report := &models.Report{
		Type:       req.Type,
		TargetID:   req.TargetID,
		TargetName: req.TargetName,
		Reason:     req.Reason,
		ReportedBy: userID,
	}
	if err := h.store.InsertReport(r.Context(), report); err != nil {
		respondStoreError(w, err, "Target not found", "")
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"report": report,
	}, start)
}
