// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bombfork/open-secret-santa/auth"
	"github.com/bombfork/open-secret-santa/cliparse"
	"github.com/bombfork/open-secret-santa/middleware"
	"github.com/bombfork/open-secret-santa/models"
)

const deviceHeader = "X-Device-UUID"

type DeviceHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewDeviceHandler(db *sql.DB, cfg cliparse.Config) *DeviceHandler {
	return &DeviceHandler{db: db, cfg: cfg, now: time.Now}
}

// deviceUUIDFromRequest reads and validates the X-Device-UUID header.
// Writes the error response and returns false when it is missing or malformed.
func deviceUUIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.Header.Get(deviceHeader)
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return "", false
	}
	deviceUUID, err := auth.ParseDeviceUUID(raw)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID must be a UUID")
		return "", false
	}
	return deviceUUID, true
}

// Register handles POST /devices/register
// Registers a device and returns its device_id (or finds existing)
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	deviceUUID, ok := deviceUUIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.RegisterDeviceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !isValidPlatform(req.Platform) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "platform must be one of: ios, android, web")
		return
	}

	var existingID string
	err := h.db.QueryRow(`
		SELECT id FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&existingID)

	if err == nil {
		// Re-registration records the platform the app reports now
		_, err = h.db.Exec(`
			UPDATE device SET platform = $1, last_seen_at = $2 WHERE id = $3
		`, req.Platform, h.now().UTC(), existingID)
		if err != nil {
			slog.Error("failed to update device", "error", err)
		}

		slog.Info("device registered (existing)", "device_id", existingID)
		middleware.JSONResponse(w, http.StatusOK, models.RegisterDeviceResponse{
			DeviceID: existingID,
			IsNew:    false,
		})
		return
	}

	if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	deviceID, err := insertDevice(h.db, deviceUUID, req.Platform, h.now())
	if err != nil {
		slog.Error("failed to insert device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register device")
		return
	}

	slog.Info("device registered (new)", "device_id", deviceID, "platform", req.Platform)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterDeviceResponse{
		DeviceID: deviceID,
		IsNew:    true,
	})
}

// GetMe handles GET /devices/me
func (h *DeviceHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	deviceUUID, ok := deviceUUIDFromRequest(w, r)
	if !ok {
		return
	}

	var device models.DeviceInfo
	err := h.db.QueryRow(`
		SELECT id, platform, created_at, last_seen_at
		FROM device
		WHERE device_uuid = $1
	`, deviceUUID).Scan(&device.ID, &device.Platform, &device.CreatedAt, &device.LastSeenAt)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Device not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.touch(device.ID)

	middleware.JSONResponse(w, http.StatusOK, device)
}

// GetMySantas handles GET /devices/my-santas
// Returns the santas created from this device, newest first
func (h *DeviceHandler) GetMySantas(w http.ResponseWriter, r *http.Request) {
	deviceUUID, ok := deviceUUIDFromRequest(w, r)
	if !ok {
		return
	}

	var deviceID string
	err := h.db.QueryRow(`
		SELECT id FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&deviceID)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Device not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.touch(deviceID)

	rows, err := h.db.Query(`
		SELECT s.id, s.participant_count, s.admin_url, ds.role, s.created_at
		FROM device_santa ds
		JOIN santa s ON ds.santa_id = s.id
		WHERE ds.device_id = $1
		ORDER BY s.created_at DESC
	`, deviceID)
	if err != nil {
		slog.Error("failed to query device santas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	now := h.now()
	santas := []models.DeviceSantaSummary{}
	for rows.Next() {
		var summary models.DeviceSantaSummary
		if err := rows.Scan(
			&summary.SantaID,
			&summary.ParticipantCount,
			&summary.AdminURL,
			&summary.Role,
			&summary.CreatedAt,
		); err != nil {
			slog.Error("failed to scan santa", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		summary.CreatedAgo = humanize.RelTime(summary.CreatedAt, now, "ago", "from now")
		santas = append(santas, summary)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate santas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetMySantasResponse{
		Santas: santas,
	})
}

func (h *DeviceHandler) touch(deviceID string) {
	_, err := h.db.Exec(`
		UPDATE device SET last_seen_at = $1 WHERE id = $2
	`, h.now().UTC(), deviceID)
	if err != nil {
		slog.Error("failed to update device last_seen_at", "error", err)
	}
}

func insertDevice(db *sql.DB, deviceUUID, platform string, now time.Time) (string, error) {
	deviceID, err := auth.GenerateID(16)
	if err != nil {
		return "", err
	}

	now = now.UTC()
	_, err = db.Exec(`
		INSERT INTO device (id, device_uuid, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5)
	`, deviceID, deviceUUID, platform, now, now)
	if err != nil {
		return "", err
	}

	return deviceID, nil
}

// GetOrCreateDevice looks up or creates a device record from the X-Device-UUID header.
// Returns an empty ID if there is no header.
func GetOrCreateDevice(db *sql.DB, r *http.Request) (string, error) {
	raw := r.Header.Get(deviceHeader)
	if raw == "" {
		return "", nil
	}
	deviceUUID, err := auth.ParseDeviceUUID(raw)
	if err != nil {
		return "", err
	}

	var deviceID string
	err = db.QueryRow(`
		SELECT id FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&deviceID)

	if err == nil {
		_, _ = db.Exec(`UPDATE device SET last_seen_at = $1 WHERE id = $2`, time.Now().UTC(), deviceID)
		return deviceID, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	// Unknown devices default to web until they call /devices/register
	return insertDevice(db, deviceUUID, models.PlatformWeb, time.Now())
}

// LinkDeviceToSanta creates an association between a device and a santa
func LinkDeviceToSanta(db *sql.DB, deviceID, santaID, role string) error {
	if deviceID == "" {
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO device_santa (device_id, santa_id, role, linked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (device_id, santa_id) DO NOTHING
	`, deviceID, santaID, role, time.Now().UTC())

	return err
}

func isValidPlatform(platform string) bool {
	switch platform {
	case models.PlatformIOS, models.PlatformAndroid, models.PlatformWeb:
		return true
	}
	return false
}
