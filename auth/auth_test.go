// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"

	"github.com/bombfork/open-secret-santa/encoder"
	"github.com/bombfork/open-secret-santa/santa"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestNewSantaID(t *testing.T) {
	id := NewSantaID()
	if _, err := ParseDeviceUUID(id); err != nil {
		t.Errorf("NewSantaID() = %q is not a UUID: %v", id, err)
	}
	if id == NewSantaID() {
		t.Error("NewSantaID() produced duplicate IDs")
	}
}

func TestParseDeviceUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"canonical", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"upper case", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"braces", "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"empty", "", "", true},
		{"garbage", "my-phone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeviceUUID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDeviceUUID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidDeviceUUID) {
				t.Errorf("ParseDeviceUUID() error = %v, want %v", err, ErrInvalidDeviceUUID)
			}
			if got != tt.want {
				t.Errorf("ParseDeviceUUID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckAdminPassword(t *testing.T) {
	assignments := []santa.Assignment{{Giver: "A", Receiver: "B"}, {Giver: "B", Receiver: "A"}}
	data, err := encoder.Encode(assignments, "seed", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	current, err := encoder.Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	blankData, _ := encoder.Encode(assignments, "seed", "")
	blank, _ := encoder.Decode(blankData)

	legacy := &encoder.Payload{Seed: "seed", Assignments: assignments, Legacy: true}

	tests := []struct {
		name     string
		payload  *encoder.Payload
		password string
		admin    string
		wantErr  bool
	}{
		{"correct password", current, "hunter2", "true", false},
		{"wrong password", current, "hunter3", "true", true},
		{"blank password link", blank, "", "true", false},
		{"blank password link rejects guess", blank, "guess", "true", true},
		{"legacy uses admin param", legacy, "hunter2", encoder.HashPassword("hunter2"), false},
		{"legacy wrong password", legacy, "nope", encoder.HashPassword("hunter2"), true},
		{"legacy without admin param", legacy, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAdminPassword(tt.payload, tt.password, tt.admin)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckAdminPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidPassword {
				t.Errorf("CheckAdminPassword() error = %v, want %v", err, ErrInvalidPassword)
			}
		})
	}
}
