// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package encoder turns a set of assignments into the data blob carried by
Secret Santa links, and builds and parses those links.

# Data Blob

	data, err := encoder.Encode(assignments, seed, adminPassword)
	payload, err := encoder.Decode(data)

The blob is base64 of a JSON object:

	{"seed":"...","assignments":"<obfuscated>","passwordHash":"..."}

The assignments array is serialized to JSON and XORed with the seed, one UTF-16
code unit at a time. This only hides names from a casual glance at the URL; it is
not encryption. Links produced by the older web page, where assignments is a
plain JSON array and the password hash travels in the admin parameter, are
still decoded (Payload.Legacy is set).

Output is byte-for-byte what the browser produces, so links made by either side
open on the other.

# Passwords

	hash := encoder.HashPassword("hunter2") // "kxnp9u"
	ok := encoder.VerifyPassword(input, payload.PasswordHash)

A 32-bit string hash rendered in base 36. Casual protection only.

# Links

	adminURL, err := encoder.AdminURL(baseURL, data)          // ?data=...&admin=true
	userURL, err := encoder.ParticipantURL(baseURL, data, "Bob") // ?data=...&user=...

Query strings are written with application/x-www-form-urlencoded rules in
insertion order, and the user name is percent-encoded once before that, exactly
as the web page does. ParseParams reverses both steps.
*/
package encoder
