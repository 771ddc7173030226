// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/shops", "200"))

	RecordAPIRequest("GET", "/api/v1/shops", "200", 50*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/shops", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

func TestRecordDBQuery(t *testing.T) {
	errBefore := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "shops"))

	RecordDBQuery("select", "shops", 10*time.Millisecond, nil)
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "shops")); got != errBefore {
		t.Errorf("DBQueryErrors after successful query = %v, want %v", got, errBefore)
	}

	RecordDBQuery("select", "shops", 10*time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "shops")); got != errBefore+1 {
		t.Errorf("DBQueryErrors after failed query = %v, want %v", got, errBefore+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("APIActiveRequests after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("APIActiveRequests after dec = %v, want %v", got, before)
	}
}

func TestRecordRatingRefresh(t *testing.T) {
	okBefore := testutil.ToFloat64(RatingRefreshRuns.WithLabelValues("success"))
	errBefore := testutil.ToFloat64(RatingRefreshRuns.WithLabelValues("error"))

	RecordRatingRefresh(time.Second, nil)
	RecordRatingRefresh(time.Second, errors.New("db unavailable"))

	if got := testutil.ToFloat64(RatingRefreshRuns.WithLabelValues("success")); got != okBefore+1 {
		t.Errorf("success runs = %v, want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(RatingRefreshRuns.WithLabelValues("error")); got != errBefore+1 {
		t.Errorf("error runs = %v, want %v", got, errBefore+1)
	}
	if got := testutil.ToFloat64(RatingRefreshLastSuccess); got == 0 {
		t.Error("RatingRefreshLastSuccess not set after successful run")
	}
}
