// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bombfork/open-secret-santa/encoder"
)

var (
	ErrInvalidPassword   = errors.New("incorrect password")
	ErrInvalidDeviceUUID = errors.New("invalid device UUID")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewSantaID returns a random UUID for a recorded santa
func NewSantaID() string {
	return uuid.NewString()
}

// ParseDeviceUUID validates a device UUID header and returns it in canonical form
func ParseDeviceUUID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDeviceUUID, err)
	}
	return id.String(), nil
}

// CheckAdminPassword verifies an admin unlock attempt.
// Current links embed the hash in the data; legacy links carry it in the admin parameter.
func CheckAdminPassword(payload *encoder.Payload, password, adminParam string) error {
	storedHash := payload.PasswordHash
	if payload.Legacy || storedHash == "" {
		storedHash = adminParam
	}
	if storedHash == "" || !encoder.VerifyPassword(password, storedHash) {
		return ErrInvalidPassword
	}
	return nil
}
