package models

import (
	"time"

	"github.com/bombfork/open-secret-santa/santa"
)

// Device roles
const (
	RoleAdmin = "admin"
)

// Platforms
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Request types

// Either Participants or ParticipantsText (one name per line) may be sent
type CreateSantaRequest struct {
	Participants     []string `json:"participants"`
	ParticipantsText string   `json:"participants_text"`
	Seed             string   `json:"seed"`
	AdminPassword    string   `json:"admin_password"`
}

type UnlockAdminRequest struct {
	Data     string `json:"data"`
	Password string `json:"password"`
	Admin    string `json:"admin,omitempty"` // legacy links carry the hash here
}

type RegisterDeviceRequest struct {
	Platform string `json:"platform"`
}

// Response types

type ParticipantLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type CreateSantaResponse struct {
	SantaID         string            `json:"santa_id"`
	Data            string            `json:"data"`
	AdminURL        string            `json:"admin_url"`
	ParticipantURLs []ParticipantLink `json:"participant_urls"`
}

type ViewAssignmentResponse struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

type UnlockAdminResponse struct {
	Seed        string             `json:"seed"`
	Assignments []santa.Assignment `json:"assignments"`
}

type ResolveLinkResponse struct {
	Mode string `json:"mode"`
	User string `json:"user,omitempty"`
}

type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"`
	IsNew    bool   `json:"is_new"`
}

type GetMySantasResponse struct {
	Santas []DeviceSantaSummary `json:"santas"`
}

// Domain types

type DeviceInfo struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

type DeviceSantaSummary struct {
	SantaID          string    `json:"santa_id"`
	ParticipantCount int       `json:"participant_count"`
	AdminURL         string    `json:"admin_url"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
	CreatedAgo       string    `json:"created_ago"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
