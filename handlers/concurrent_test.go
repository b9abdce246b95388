// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bombfork/open-secret-santa/encoder"
	"github.com/bombfork/open-secret-santa/models"
	"github.com/bombfork/open-secret-santa/testutil"
)

// TestConcurrentSantaCreation verifies that simultaneous creations from one
// device each get their own record and history entry
func TestConcurrentSantaCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewSantaHandler(db, testutil.GetTestConfig())

	deviceID, deviceUUID := testutil.CreateTestDevice(t, db, "ios")

	numSantas := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numSantas; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/santas", models.CreateSantaRequest{
				Participants: []string{"Alice", "Bob", "Carol", "Dave"},
				Seed:         fmt.Sprintf("seed-%d", idx),
			}, map[string]string{"X-Device-UUID": deviceUUID})
			w := httptest.NewRecorder()

			handler.CreateSanta(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numSantas {
		t.Errorf("Expected %d successful creations, got %d", numSantas, successCount.Load())
	}

	var linkCount int
	err := db.QueryRow("SELECT COUNT(*) FROM device_santa WHERE device_id = $1", deviceID).Scan(&linkCount)
	if err != nil {
		t.Fatalf("Failed to count links: %v", err)
	}
	if linkCount != numSantas {
		t.Errorf("Expected %d linked santas, got %d", numSantas, linkCount)
	}

	var uniqueSantas int
	err = db.QueryRow("SELECT COUNT(DISTINCT id) FROM santa").Scan(&uniqueSantas)
	if err != nil {
		t.Fatalf("Failed to count santas: %v", err)
	}
	if uniqueSantas != numSantas {
		t.Errorf("Expected %d unique santas, got %d", numSantas, uniqueSantas)
	}
}

// TestConcurrentSameSeed verifies that parallel draws with the same inputs
// produce the same link data
func TestConcurrentSameSeed(t *testing.T) {
	handler := newSantaHandler(t)

	numAttempts := 8
	results := make([]string, numAttempts)
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/santas", models.CreateSantaRequest{
				ParticipantsText: "Alice\nBob\nCarol\nDave\nEve",
				Seed:             "same-every-time",
				AdminPassword:    "pw",
			}, nil)
			w := httptest.NewRecorder()

			handler.CreateSanta(w, req)

			var resp models.CreateSantaResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err == nil {
				results[idx] = resp.Data
			}
		}(i)
	}

	wg.Wait()

	for i, data := range results {
		if data == "" {
			t.Fatalf("Attempt %d returned no data", i)
		}
		if data != results[0] {
			t.Errorf("Attempt %d produced different data", i)
		}
	}
}

// TestConcurrentViews verifies that every participant sees the same
// receiver no matter how many lookups run at once
func TestConcurrentViews(t *testing.T) {
	handler := newSantaHandler(t)
	data := encodeFixture(t, "hunter2")

	expected := map[string]string{
		"Alice": "Carol",
		"Bob":   "Alice",
		"Carol": "Dave",
		"Dave":  "Bob",
	}

	var mismatches atomic.Int32
	var wg sync.WaitGroup

	for round := 0; round < 5; round++ {
		for giver, receiver := range expected {
			wg.Add(1)
			go func(giver, receiver string) {
				defer wg.Done()

				link, err := encoder.ParticipantURL(testutil.TestBaseURL, data, giver)
				if err != nil {
					mismatches.Add(1)
					return
				}
				u, err := url.Parse(link)
				if err != nil {
					mismatches.Add(1)
					return
				}
				req := httptest.NewRequest("GET", "/santas/view?"+u.RawQuery, nil)
				w := httptest.NewRecorder()

				handler.ViewAssignment(w, req)

				var resp models.ViewAssignmentResponse
				if w.Code != http.StatusOK {
					mismatches.Add(1)
					return
				}
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil || resp.Receiver != receiver {
					mismatches.Add(1)
				}
			}(giver, receiver)
		}
	}

	wg.Wait()

	if mismatches.Load() != 0 {
		t.Errorf("Expected consistent views, got %d mismatches", mismatches.Load())
	}
}
