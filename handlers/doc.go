// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

# Handlers

  - FormatHandler: 24-hour to 12-hour rendering (POST /format/standard)
  - TimeHandler: zone conversion, zone listing, current time
    (POST /time/convert, GET /time/timezones, GET /time/current)
  - PreferenceHandler: persisted per-user display timezone
    (PUT/GET /preferences/{user})

Handlers hold their dependencies (converter, registry, database) and
are constructed once in the router.

# Error Mapping

Core errors map to status codes in one place (writeDomainError):

  - invalid time/date format, unknown zone, nonexistent (gap) time: 400
  - zone configuration fault: 500, detail logged, generic message returned

Ambiguous (fall-back) times are not errors; the zone package resolves
them deterministically.
*/
package handlers
