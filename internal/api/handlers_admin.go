// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/brewfinder/internal/logging"
	"github.com/tomtom215/brewfinder/internal/models"
)

// submissionDecisionRequest is the body of
// PATCH /api/v1/admin/submissions/{id}.
type submissionDecisionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// reportDecisionRequest is the body of PATCH /api/v1/admin/reports/{id}.
type reportDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=resolved dismissed"`
}

// HandleAdminListSubmissions serves GET /api/v1/admin/submissions with
// an optional status filter.
func (h *Handler) HandleAdminListSubmissions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	status := r.URL.Query().Get("status")
	switch status {
	case "", models.SubmissionStatusPending, models.SubmissionStatusApproved, models.SubmissionStatusRejected:
	default:
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter", nil)
		return
	}

	subs, err := h.store.ListSubmissions(r.Context(), status)
	if err != nil {
		respondStoreError(w, err, "Submissions not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"submissions": subs,
	}, start)
}

// HandleAdminDecideSubmission serves PATCH /api/v1/admin/submissions/{id}.
// Approval creates the catalog shop; re-approving an approved submission
// is idempotent, while deciding a rejected one returns 409 CONFLICT.
func (h *Handler) HandleAdminDecideSubmission(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	adminID, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	var req submissionDecisionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	subID := chi.URLParam(r, "id")
	if req.Action == "approve" {
		shop, err := h.store.ApproveSubmission(r.Context(), subID)
		if err != nil {
			respondStoreError(w, err, "Submission not found", "Submission already decided")
			return
		}
		logging.Ctx(r.Context()).Info().
			Str("submission_id", sanitizeLogValue(subID)).
			Str("shop_id", shop.ID).
			Str("admin_id", sanitizeLogValue(adminID)).
			Msg("Submission approved")
		respondSuccess(w, http.StatusOK, map[string]interface{}{
			"shop": shop,
		}, start)
		return
	}

	if err := h.store.RejectSubmission(r.Context(), subID); err != nil {
		respondStoreError(w, err, "Submission not found", "Submission already decided")
		return
	}
	logging.Ctx(r.Context()).Info().
		Str("submission_id", sanitizeLogValue(subID)).
		Str("admin_id", sanitizeLogValue(adminID)).
		Msg("Submission rejected")
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"rejected": true,
	}, start)
}

// HandleAdminListReports serves GET /api/v1/admin/reports with an
// optional status filter.
func (h *Handler) HandleAdminListReports(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	status := r.URL.Query().Get("status")
	switch status {
	case "", models.ReportStatusPending, models.ReportStatusResolved, models.ReportStatusDismissed:
	default:
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter", nil)
		return
	}

	reports, err := h.store.ListReports(r.Context(), status)
	if err != nil {
		respondStoreError(w, err, "Reports not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
	}, start)
}

// HandleAdminDecideReport serves PATCH /api/v1/admin/reports/{id}:
// marks a report resolved or dismissed.
func (h *Handler) HandleAdminDecideReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	adminID, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	var req reportDecisionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	reportID := chi.URLParam(r, "id")
	if err := h.store.UpdateReportStatus(r.Context(), reportID, req.Status); err != nil {
		respondStoreError(w, err, "Report not found", "")
		return
	}
	logging.Ctx(r.Context()).Info().
		Str("report_id", sanitizeLogValue(reportID)).
		Str("status", req.Status).
		Str("admin_id", sanitizeLogValue(adminID)).
		Msg("Report decided")

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"updated": true,
	}, start)
}

// HandleAdminAnalytics serves GET /api/v1/admin/analytics: live counts
// and aggregates computed from the catalog.
func (h *Handler) HandleAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	analytics, err := h.store.GetAdminAnalytics(r.Context())
	if err != nil {
		respondStoreError(w, err, "Analytics not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, analytics, start)
}
