// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the open-secret-santa API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SantaHandler: Draws, participant views, admin unlock, link resolution
  - DeviceHandler: Device registration and santa history

Handlers are created via constructor functions that accept *sql.DB and Config:

	santaHandler := handlers.NewSantaHandler(db, cfg)

# Drawing

	POST /santas → CreateSanta (returns data, admin_url, participant_urls)

The draw is computed by package santa and packed into the link data by
package encoder. Links are built from Config.BaseURL. Nothing about the
assignments is stored; the data parameter is the only copy.

# Opening Links

	GET  /santas/view?data=...&user=... → ViewAssignment
	POST /santas/admin                  → UnlockAdmin (password checked against the link)
	GET  /santas/resolve?...            → ResolveLink (participant or admin)

view and resolve take the query string of a generated link unchanged.

# Device Tracking

Optional device tracking for native apps:

	POST /devices/register  → Register
	GET /devices/me         → GetMe
	GET /devices/my-santas  → GetMySantas

Device operations require the X-Device-UUID header. When CreateSanta sees the
header it records the santa count and admin link against the device.
*/
package handlers
