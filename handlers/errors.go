// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/simply-time/clock"
	"github.com/danielhkuo/simply-time/middleware"
	"github.com/danielhkuo/simply-time/zone"
)

// writeDomainError maps core error kinds to HTTP status codes. Input
// mistakes (bad format, unknown zone, nonexistent time) are 400 and
// carry the core's message verbatim; a zone configuration fault is a
// 500 and logs the detail instead of leaking it.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		formatErr *clock.InvalidFormatError
		zoneErr   *zone.UnknownError
		gapErr    *zone.NonexistentTimeError
		cfgErr    *zone.ConfigurationError
	)

	switch {
	case errors.As(err, &formatErr), errors.As(err, &zoneErr), errors.As(err, &gapErr):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &cfgErr):
		slog.Error("zone configuration fault", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server timezone configuration error")
	default:
		slog.Error("unexpected conversion error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}
