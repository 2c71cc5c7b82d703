// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

CLI flags take precedence over environment variables:

  - -p / PORT: server port (default 8001)
  - -d / DATABASE_URL: preference database URL
  - -t / DATABASE_TYPE: sqlite (default) or postgres

With no configuration at all the server listens on 8001 and keeps
preferences in a local sqlite file.
*/
package cliparse
