// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bombfork/open-secret-santa/auth"
	"github.com/bombfork/open-secret-santa/cliparse"
	"github.com/bombfork/open-secret-santa/db"
)

// TestBaseURL is the link base used by test configurations
const TestBaseURL = "https://santa.example/"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
		BaseURL:      TestBaseURL,
	}
}

// CreateTestDevice registers a device and returns its record ID and UUID
func CreateTestDevice(t *testing.T, conn *sql.DB, platform string) (deviceID, deviceUUID string) {
	t.Helper()

	deviceID, _ = auth.GenerateID(16)
	deviceUUID = uuid.NewString()

	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO device (id, device_uuid, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5)
	`, deviceID, deviceUUID, platform, now, now)
	if err != nil {
		t.Fatalf("Failed to create test device: %v", err)
	}

	return deviceID, deviceUUID
}

// CreateTestSanta records a santa created at createdAt and links it to deviceID when set
func CreateTestSanta(t *testing.T, conn *sql.DB, deviceID string, participantCount int, createdAt time.Time) string {
	t.Helper()

	santaID := auth.NewSantaID()
	_, err := conn.Exec(`
		INSERT INTO santa (id, participant_count, admin_url, created_at)
		VALUES ($1, $2, $3, $4)
	`, santaID, participantCount, TestBaseURL+"?data=test&admin=true", createdAt)
	if err != nil {
		t.Fatalf("Failed to create test santa: %v", err)
	}

	if deviceID != "" {
		_, err = conn.Exec(`
			INSERT INTO device_santa (device_id, santa_id, role, linked_at)
			VALUES ($1, $2, 'admin', $3)
		`, deviceID, santaID, createdAt)
		if err != nil {
			t.Fatalf("Failed to link test santa: %v", err)
		}
	}

	return santaID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
