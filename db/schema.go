// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL is valid for both PostgreSQL and SQLite.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Districts
CREATE TABLE IF NOT EXISTS district (
    id TEXT PRIMARY KEY,
    prefecture TEXT NOT NULL,
    name TEXT NOT NULL,
    margin INTEGER NOT NULL DEFAULT 0 CHECK (margin >= 0),
    total_votes INTEGER NOT NULL DEFAULT 0 CHECK (total_votes >= 0),
    position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_district_position ON district(position);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    district_id TEXT NOT NULL REFERENCES district(id) ON DELETE CASCADE,
    id TEXT NOT NULL,
    name TEXT NOT NULL,
    party TEXT NOT NULL,
    votes INTEGER NOT NULL CHECK (votes >= 0),
    is_winner BOOLEAN NOT NULL DEFAULT FALSE,
    position INTEGER NOT NULL,
    PRIMARY KEY (district_id, id)
);

CREATE INDEX IF NOT EXISTS idx_candidate_district_id ON candidate(district_id);
`
