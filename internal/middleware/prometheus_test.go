// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/brewfinder/internal/metrics"
)

func TestPrometheusMetrics_RecordsRequest(t *testing.T) {
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/shops", "200"))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := PrometheusMetrics(handler)

	req := httptest.NewRequest(http.MethodGet, "/shops", nil)
	rec := httptest.NewRecorder()
	wrapped(rec, req)

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/shops", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

func TestPrometheusMetrics_CapturesErrorStatus(t *testing.T) {
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("POST", "/reviews", "404"))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	wrapped := PrometheusMetrics(handler)

	req := httptest.NewRequest(http.MethodPost, "/reviews", nil)
	rec := httptest.NewRecorder()
	wrapped(rec, req)

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("POST", "/reviews", "404"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal for 404 = %v, want %v", after, before+1)
	}
}

func TestPrometheusMetrics_DefaultStatusOK(t *testing.T) {
	// Handler that writes body without calling WriteHeader
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/health", "200"))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	wrapped := PrometheusMetrics(handler)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	wrapped(rec, req)

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/health", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

func TestMetricsResponseWriter_WriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapper := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	wrapper.WriteHeader(http.StatusConflict)

	if wrapper.statusCode != http.StatusConflict {
		t.Errorf("statusCode = %d, want %d", wrapper.statusCode, http.StatusConflict)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("recorder code = %d, want %d", rec.Code, http.StatusConflict)
	}
}
