// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/simply-time/db"
	"github.com/danielhkuo/simply-time/zone"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// :memory: exists per connection; keep the pool to one
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewRegistry builds a zone registry, failing the test on a missing
// tzdata rule set
func NewRegistry(t *testing.T) *zone.Registry {
	t.Helper()

	reg, err := zone.NewRegistry()
	if err != nil {
		t.Fatalf("Failed to build zone registry: %v", err)
	}
	return reg
}

// DoJSON runs a JSON request against a handler and decodes the response
// body into out (pass nil to skip decoding). Returns the status code.
func DoJSON(t *testing.T, h http.Handler, method, target string, body, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if out != nil {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode response body: %v", err)
		}
	}
	return w.Code
}
