// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/simply-time/clock"
	"github.com/danielhkuo/simply-time/middleware"
	"github.com/danielhkuo/simply-time/models"
)

type FormatHandler struct{}

func NewFormatHandler() *FormatHandler {
	return &FormatHandler{}
}

// Standard handles POST /format/standard
// Renders a 24-hour time string in 12-hour notation with AM/PM
func (h *FormatHandler) Standard(w http.ResponseWriter, r *http.Request) {
	var req models.FormatRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	t, err := clock.ParseTime24(req.Time)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FormatResponse{
		OriginalTime:  req.Time,
		FormattedTime: clock.FormatTime12(t),
		Format:        "standard",
	})
}
