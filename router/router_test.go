// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/girigiri/dataset"
	"github.com/danielhkuo/girigiri/db"
	"github.com/danielhkuo/girigiri/middleware"
	"github.com/danielhkuo/girigiri/models"
	"github.com/danielhkuo/girigiri/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	return NewRouter(dataset.New(testutil.SampleDistricts()), testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "girigiri API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/", http.StatusOK},
		{"GET", "/districts", http.StatusOK},
		{"POST", "/query", http.StatusOK}, // empty body means no filters
		{"GET", "/districts/tokyo-1", http.StatusOK},
		{"GET", "/districts/unknown", http.StatusNotFound},
		{"GET", "/runner-ups", http.StatusOK},
		{"GET", "/runner-ups/chart.png", http.StatusOK},
		{"GET", "/parties", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d. Body: %s", tc.expectedStatus, tc.method, tc.path, w.Code, w.Body.String())
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/districts"},
		{"DELETE", "/districts/tokyo-1"},
		{"PUT", "/query"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/districts/osaka-3", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var detail models.DistrictDetail
	testutil.AssertJSON(t, w, &detail)
	if detail.ID != "osaka-3" {
		t.Errorf("Expected district osaka-3, got %q", detail.ID)
	}
	if detail.CanonicalName != "大阪府第3区" {
		t.Errorf("Expected canonical name 大阪府第3区, got %q", detail.CanonicalName)
	}
}

func TestRequestIDOnLoggedRoutes(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/parties", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-42")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "trace-42" {
		t.Errorf("Expected request id trace-42, got %q", got)
	}
}

func TestRouterOverDatabaseDataset(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := db.ReplaceDistricts(ctx, conn, testutil.SampleDistricts()); err != nil {
		t.Fatalf("Failed to import districts: %v", err)
	}
	ds, err := dataset.Load(ctx, conn)
	if err != nil {
		t.Fatalf("Failed to load dataset: %v", err)
	}

	mux := NewRouter(ds, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/districts?max_margin=500", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DistrictListResponse
	testutil.AssertJSON(t, w, &resp)

	expected := []string{"okinawa-1", "osaka-3", "kyoto-2"}
	if len(resp.Districts) != len(expected) {
		t.Fatalf("Expected %d districts, got %d", len(expected), len(resp.Districts))
	}
	for i, id := range expected {
		if resp.Districts[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, resp.Districts[i].ID)
		}
	}
}
