// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the simply-time API server.

simply-time formats 24-hour clock readings as 12-hour AM/PM readings
and converts civil times between a fixed set of timezones (EST, CST,
PST, UTC), handling daylight-saving transitions: times that fall in a
spring-forward gap are rejected, times replayed during fall-back are
resolved deterministically to the standard-time reading.

# Starting the Server

The server runs with zero configuration, listening on 8001 with a
local sqlite file for preferences:

	go run .

Or configured through flags or environment (a .env file is honored):

	go run . -p 3000 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 8001)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Preference database URL

# Architecture

The server uses a handler-based architecture with dependency injection:

  - clock: wall-clock parsing and formatting (pure, zone-unaware)
  - zone: zone registry, civil-time resolution, conversion
  - handlers: HTTP request handlers (format, convert, preferences)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: Request/response types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
