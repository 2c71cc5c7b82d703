// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms),
tagged with a per-request UUID.

# Metrics

Count requests per route and status:

	mux.HandleFunc("POST /time/convert", middleware.WithMetrics("/time/convert", handler))

Exposed through the Prometheus registry; mount promhttp.Handler() on
/metrics to scrape.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.ConvertRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# CORS Middleware

Enable cross-origin requests:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}
*/
package middleware
