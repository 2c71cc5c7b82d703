// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Preferred display timezone per user identifier. The identifier is
-- opaque to the service: no accounts, no authentication.
CREATE TABLE IF NOT EXISTS preference (
    user_id TEXT PRIMARY KEY,
    timezone TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`
