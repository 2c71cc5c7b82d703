// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/simply-time/middleware"
	"github.com/danielhkuo/simply-time/models"
	"github.com/danielhkuo/simply-time/zone"
)

type PreferenceHandler struct {
	db  *sql.DB
	reg *zone.Registry
}

func NewPreferenceHandler(db *sql.DB, reg *zone.Registry) *PreferenceHandler {
	return &PreferenceHandler{db: db, reg: reg}
}

// Set handles PUT /preferences/{user}
// Stores the preferred display timezone for an opaque user identifier
func (h *PreferenceHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user identifier required")
		return
	}

	var req models.SetPreferenceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// The stored value is always the normalized abbreviation, so reads
	// never need to re-validate.
	id, err := h.reg.Normalize(req.Timezone)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	now := time.Now().UTC()
	_, err = h.db.Exec(`
		INSERT INTO preference (user_id, timezone, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET timezone = $2, updated_at = $3
	`, userID, string(id), now)
	if err != nil {
		slog.Error("failed to store preference", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("preference stored", "user_id", userID, "timezone", id)
	middleware.JSONResponse(w, http.StatusOK, models.PreferenceResponse{
		UserID:    userID,
		Timezone:  string(id),
		UpdatedAt: now,
	})
}

// Get handles GET /preferences/{user}
// Returns the stored preference, if any
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user identifier required")
		return
	}

	var resp models.PreferenceResponse
	err := h.db.QueryRow(`
		SELECT user_id, timezone, updated_at FROM preference WHERE user_id = $1
	`, userID).Scan(&resp.UserID, &resp.Timezone, &resp.UpdatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No preference stored for this user")
		return
	}
	if err != nil {
		slog.Error("failed to query preference", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
