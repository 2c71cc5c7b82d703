// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/simply-time/models"
	"github.com/danielhkuo/simply-time/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	return NewRouter(testutil.SetupTestDB(t), testutil.NewRegistry(t))
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	var resp models.HealthResponse
	code := testutil.DoJSON(t, mux, "GET", "/health", nil, &resp)

	if code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", code)
	}
	if resp.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", resp.Status)
	}
	if resp.Service != "simply-time" {
		t.Errorf("Expected service 'simply-time', got %q", resp.Service)
	}
	if resp.Uptime == "" {
		t.Error("Expected a human-readable uptime")
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
	if !strings.Contains(w.Body.String(), "simply-time API") {
		t.Errorf("Expected banner body, got %q", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

// End-to-end pass through routing, logging, metrics and the core.
func TestConvertEndToEnd(t *testing.T) {
	mux := newTestRouter(t)

	var resp models.ConvertResponse
	code := testutil.DoJSON(t, mux, "POST", "/time/convert", models.ConvertRequest{
		TimeStr:      "13:15:00",
		FromTimezone: "EST",
		ToTimezone:   "PST",
		DateStr:      "2024-07-04",
	}, &resp)

	if code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", code)
	}
	if resp.ConvertedTime != "10:15:00" {
		t.Errorf("Expected 10:15:00, got %q", resp.ConvertedTime)
	}
	if !resp.IsDST {
		t.Error("Pacific observes DST on 2024-07-04")
	}
}

func TestPreferenceEndToEnd(t *testing.T) {
	mux := newTestRouter(t)

	code := testutil.DoJSON(t, mux, "PUT", "/preferences/alice",
		models.SetPreferenceRequest{Timezone: "US/Eastern"}, nil)
	if code != http.StatusOK {
		t.Fatalf("PUT status %d, want 200", code)
	}

	var got models.PreferenceResponse
	code = testutil.DoJSON(t, mux, "GET", "/preferences/alice", nil, &got)
	if code != http.StatusOK {
		t.Fatalf("GET status %d, want 200", code)
	}
	if got.Timezone != "EST" {
		t.Errorf("timezone %q, want normalized EST", got.Timezone)
	}
}
