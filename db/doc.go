// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

A single table:

  - preference: preferred display timezone per opaque user identifier

The timezone column stores a normalized abbreviation (EST, CST, PST,
UTC); handlers validate through the zone registry before writing, so
no constraint is needed at the SQL level.

The schema is portable between the two supported drivers, sqlite
(default, zero setup) and postgres.
*/
package db
