// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the device-history database and creates its schema.

# Opening

Open selects the driver from the configuration:

	conn, err := db.Open(cfg)

  - sqlite: modernc.org/sqlite, pure Go, the default. Foreign keys are
    enabled on every connection and the pool is limited to one connection.
  - postgres: github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - santa: one row per santa created through the API (count and admin link only)
  - device: Registered devices
  - device_santa: Links devices to the santas they created

Assignments are never stored. They live in the link data.

# Relationships

	device *──* santa (via device_santa)

All foreign keys use ON DELETE CASCADE.
*/
package db
