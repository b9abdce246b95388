// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:santa.db)
  - BaseURL: page that opens generated links (required)
  - LogFormat: text, json, or empty for auto-detection

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--base-url    Base URL for links
	--log-format  Log format

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	BASE_URL      → --base-url
	LOG_FORMAT    → --log-format

CLI flags take precedence over environment variables. main also loads a .env
file, if present, before parsing.

# Validation

ParseFlags returns an error if:

  - BASE_URL is missing
  - DATABASE_TYPE is not sqlite or postgres
  - postgres is selected without DATABASE_URL
  - LOG_FORMAT is not text or json
*/
package cliparse
