// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateSantaRequest: participants or participants_text, seed, admin_password
  - UnlockAdminRequest: data, password, admin (legacy hash)
  - RegisterDeviceRequest: platform

# Response Types

Types for JSON responses:

  - CreateSantaResponse: santa_id, data, admin_url, participant_urls
  - ViewAssignmentResponse: giver, receiver
  - UnlockAdminResponse: seed, assignments
  - ResolveLinkResponse: mode, user
  - RegisterDeviceResponse: device_id, is_new
  - GetMySantasResponse: santas
  - ErrorResponse: error, message

# Domain Types

  - DeviceInfo: registered device
  - DeviceSantaSummary: santa created from a device, with a humanized age

Assignments themselves are santa.Assignment and are never stored.

# Constants

Device roles:

	RoleAdmin = "admin"

Platforms:

	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
*/
package models
