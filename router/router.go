// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/bombfork/open-secret-santa/cliparse"
	"github.com/bombfork/open-secret-santa/handlers"
	"github.com/bombfork/open-secret-santa/middleware"
)

const banner = "open-secret-santa API v1"

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	santaHandler := handlers.NewSantaHandler(db, cfg)
	deviceHandler := handlers.NewDeviceHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Drawing and link operations
	mux.HandleFunc("POST /santas", middleware.WithLogging(santaHandler.CreateSanta))
	mux.HandleFunc("GET /santas/view", middleware.WithLogging(santaHandler.ViewAssignment))
	mux.HandleFunc("POST /santas/admin", middleware.WithLogging(santaHandler.UnlockAdmin))
	mux.HandleFunc("GET /santas/resolve", middleware.WithLogging(santaHandler.ResolveLink))

	// Device management
	mux.HandleFunc("POST /devices/register", middleware.WithLogging(deviceHandler.Register))
	mux.HandleFunc("GET /devices/me", middleware.WithLogging(deviceHandler.GetMe))
	mux.HandleFunc("GET /devices/my-santas", middleware.WithLogging(deviceHandler.GetMySantas))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(banner))
	})

	return mux
}
