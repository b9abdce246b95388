// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the open-secret-santa API server.

open-secret-santa draws Secret Santa assignments from a participant list and a
seed. The same list and seed always give the same draw, and every participant
gets a link that reveals only their own receiver. The assignments travel in
the link itself; the server keeps no copy.

# Starting the Server

The server reads environment variables, a .env file, or CLI flags:

	BASE_URL=https://santa.example/ go run .

Or with flags:

	go run . -p 3318 -base-url https://santa.example/ -t postgres -d "postgres://..."

# Configuration

Required settings:

  - BASE_URL (-base-url): page the generated links point at

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string (default: file:santa.db for sqlite)
  - LOG_FORMAT (-log-format): text or json (default: text on a terminal, json otherwise)

# Architecture

  - santa: seeded PRNG and assignment generation
  - roster: participant list parsing and validation
  - encoder: link data format, password hash, link URLs
  - handlers: HTTP request handlers (santas, devices)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: IDs, device UUIDs, admin password checks
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
