// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/bombfork/open-secret-santa/auth"
	"github.com/bombfork/open-secret-santa/cliparse"
	"github.com/bombfork/open-secret-santa/encoder"
	"github.com/bombfork/open-secret-santa/middleware"
	"github.com/bombfork/open-secret-santa/models"
	"github.com/bombfork/open-secret-santa/roster"
	"github.com/bombfork/open-secret-santa/santa"
)

type SantaHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSantaHandler(db *sql.DB, cfg cliparse.Config) *SantaHandler {
	return &SantaHandler{db: db, cfg: cfg}
}

// CreateSanta handles POST /santas
func (h *SantaHandler) CreateSanta(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSantaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	participants := roster.Clean(req.Participants)
	if req.ParticipantsText != "" {
		participants = roster.Parse(req.ParticipantsText)
	}

	if err := roster.Validate(participants, req.Seed); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	assignments, err := santa.GenerateAssignments(participants, req.Seed)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := encoder.Encode(assignments, req.Seed, req.AdminPassword)
	if err != nil {
		slog.Error("failed to encode assignments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create santa")
		return
	}

	adminURL, err := encoder.AdminURL(h.cfg.BaseURL, data)
	if err != nil {
		slog.Error("failed to build admin URL", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create santa")
		return
	}

	links := make([]models.ParticipantLink, 0, len(participants))
	for _, name := range participants {
		link, err := encoder.ParticipantURL(h.cfg.BaseURL, data, name)
		if err != nil {
			slog.Error("failed to build participant URL", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create santa")
			return
		}
		links = append(links, models.ParticipantLink{Name: name, URL: link})
	}

	santaID := auth.NewSantaID()

	// Device history is best effort; the links are already complete
	if err := h.recordSanta(r, santaID, len(participants), adminURL); err != nil {
		slog.Warn("failed to record santa for device", "santa_id", santaID, "error", err)
	}

	slog.Info("santa created", "santa_id", santaID, "participants", len(participants))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSantaResponse{
		SantaID:         santaID,
		Data:            data,
		AdminURL:        adminURL,
		ParticipantURLs: links,
	})
}

// recordSanta stores the santa in the history of the requesting device
func (h *SantaHandler) recordSanta(r *http.Request, santaID string, participantCount int, adminURL string) error {
	if r.Header.Get(deviceHeader) == "" {
		return nil
	}

	deviceID, err := GetOrCreateDevice(h.db, r)
	if err != nil {
		return err
	}

	_, err = h.db.Exec(`
		INSERT INTO santa (id, participant_count, admin_url, created_at)
		VALUES ($1, $2, $3, $4)
	`, santaID, participantCount, adminURL, time.Now().UTC())
	if err != nil {
		return err
	}

	return LinkDeviceToSanta(h.db, deviceID, santaID, models.RoleAdmin)
}

// ViewAssignment handles GET /santas/view?data=...&user=...
// The query is the one carried by a participant link.
func (h *SantaHandler) ViewAssignment(w http.ResponseWriter, r *http.Request) {
	params, err := encoder.ParseParams(r.URL.RawQuery)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid user parameter")
		return
	}
	if params.Data == "" || params.User == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data and user are required")
		return
	}

	payload, err := encoder.Decode(params.Data)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, encoder.ErrInvalidData.Error())
		return
	}

	assignment, err := santa.FindAssignment(payload.Assignments, params.User)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ViewAssignmentResponse{
		Giver:    assignment.Giver,
		Receiver: assignment.Receiver,
	})
}

// UnlockAdmin handles POST /santas/admin
func (h *SantaHandler) UnlockAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.UnlockAdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Data == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data is required")
		return
	}

	payload, err := encoder.Decode(req.Data)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, encoder.ErrInvalidData.Error())
		return
	}

	if err := auth.CheckAdminPassword(payload, req.Password, req.Admin); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UnlockAdminResponse{
		Seed:        payload.Seed,
		Assignments: payload.Assignments,
	})
}

// ResolveLink handles GET /santas/resolve?<link query>
// Tells the app which screen a shared link opens.
func (h *SantaHandler) ResolveLink(w http.ResponseWriter, r *http.Request) {
	params, err := encoder.ParseParams(r.URL.RawQuery)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid user parameter")
		return
	}

	mode, err := params.Mode()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if mode == encoder.ModeNone {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data is required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResolveLinkResponse{
		Mode: string(mode),
		User: params.User,
	})
}
