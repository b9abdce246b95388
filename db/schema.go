// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/bombfork/open-secret-santa/cliparse"
)

// Open opens the database selected by cfg.DatabaseType.
// The connection is not checked; call Ping before use.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		conn, err := sql.Open("sqlite", sqliteDSN(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// SQLite allows a single writer, and an in-memory database lives on one connection
		conn.SetMaxOpenConns(1)
		return conn, nil

	case cliparse.DatabasePostgres:
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	}

	return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}

// sqliteDSN turns on foreign key enforcement for every connection
func sqliteDSN(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	// Statements run one at a time; lib/pq and sqlite differ on multi-statement Exec
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// The same SQL runs on SQLite and PostgreSQL
const schema = `
-- Santas created through the API. Assignments are never stored.
CREATE TABLE IF NOT EXISTS santa (
    id TEXT PRIMARY KEY,
    participant_count INTEGER NOT NULL CHECK (participant_count >= 3),
    admin_url TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Devices
CREATE TABLE IF NOT EXISTS device (
    id TEXT PRIMARY KEY,
    device_uuid TEXT NOT NULL UNIQUE,
    platform TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    last_seen_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_device_uuid ON device(device_uuid);

-- Device history
CREATE TABLE IF NOT EXISTS device_santa (
    device_id TEXT NOT NULL REFERENCES device(id) ON DELETE CASCADE,
    santa_id TEXT NOT NULL REFERENCES santa(id) ON DELETE CASCADE,
    role TEXT NOT NULL DEFAULT 'admin',
    linked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (device_id, santa_id)
);

CREATE INDEX IF NOT EXISTS idx_device_santa_device ON device_santa(device_id)
`
