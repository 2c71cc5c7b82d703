// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/simply-time/handlers"
	"github.com/danielhkuo/simply-time/middleware"
	"github.com/danielhkuo/simply-time/models"
	"github.com/danielhkuo/simply-time/zone"
)

func NewRouter(db *sql.DB, reg *zone.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	conv := zone.NewConverter(reg)
	formatHandler := handlers.NewFormatHandler()
	timeHandler := handlers.NewTimeHandler(conv, reg)
	prefHandler := handlers.NewPreferenceHandler(db, reg)

	started := time.Now()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Service: "simply-time",
			Uptime:  humanize.Time(started),
		})
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Formatting
	mux.HandleFunc("POST /format/standard",
		middleware.WithLogging(middleware.WithMetrics("/format/standard", formatHandler.Standard)))

	// Zone conversion
	mux.HandleFunc("POST /time/convert",
		middleware.WithLogging(middleware.WithMetrics("/time/convert", timeHandler.Convert)))
	mux.HandleFunc("GET /time/timezones",
		middleware.WithLogging(timeHandler.Timezones))
	mux.HandleFunc("GET /time/current",
		middleware.WithLogging(middleware.WithMetrics("/time/current", timeHandler.Current)))

	// User preferences
	mux.HandleFunc("PUT /preferences/{user}",
		middleware.WithLogging(prefHandler.Set))
	mux.HandleFunc("GET /preferences/{user}",
		middleware.WithLogging(prefHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]any{
			"message": "simply-time API",
			"endpoints": map[string]string{
				"/format/standard": "POST - Format a 24-hour time in 12-hour AM/PM notation",
				"/time/convert":    "POST - Convert a civil time between EST, CST, PST and UTC",
				"/time/timezones":  "GET - List supported timezones",
				"/time/current":    "GET - Current time in a supported timezone",
				"/preferences":     "PUT/GET /preferences/{user} - Preferred display timezone",
			},
		})
	})

	return mux
}
