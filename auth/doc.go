// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifiers and the admin password check.

# Admin Password

Admin links are unlocked with the password chosen at creation:

	err := auth.CheckAdminPassword(payload, password, params.Admin)

Current links embed the password hash in the data blob. Links from the older
web page carry it in the admin query parameter instead, so the parameter is
used when the payload is marked Legacy. The hash is encoder.HashPassword, which
is a casual check and nothing more.

# Device UUIDs

Native apps identify themselves with the X-Device-UUID header, which must be a
UUID:

	id, err := auth.ParseDeviceUUID(r.Header.Get("X-Device-UUID"))

# ID Generation

Random hex IDs for device records:

	id, err := auth.GenerateID(16)  // 32 hex characters

UUIDs for recorded santas:

	id := auth.NewSantaID()
*/
package auth
