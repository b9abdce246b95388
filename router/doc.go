// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the open-secret-santa API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Drawing and links (public, state lives in the link data):

	POST /santas         - Draw assignments and build links
	GET  /santas/view    - Participant's assignment (link query)
	POST /santas/admin   - Full draw, password protected
	GET  /santas/resolve - Classify a shared link

Device management:

	POST /devices/register  - Register device
	GET  /devices/me        - Get device info
	GET  /devices/my-santas - List santas created on the device

Anything else under GET returns 404; the banner is served on / only.
*/
package router
