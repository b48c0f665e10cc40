package types

import (
	"time"

	"github.com/killallgit/podcaster-api/internal/models"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Error   string      `json:"error,omitempty"`   // Cause, for server errors
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// PodcastsResponse wraps a podcast list
type PodcastsResponse struct {
	Data []models.Podcast `json:"data"`
}

// PodcastResponse wraps a single podcast
type PodcastResponse struct {
	Data *models.Podcast `json:"data"`
}

// CategoriesResponse wraps a category list
type CategoriesResponse struct {
	Data []models.Category `json:"data"`
}

// CategoryCreatedResponse is returned by add-category
type CategoryCreatedResponse struct {
	BaseResponse
	Data *models.Category `json:"data"`
}

// SignInResponse is returned on successful sign-in
type SignInResponse struct {
	BaseResponse
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// CheckCookieResponse reports whether a session cookie is present
type CheckCookieResponse struct {
	Message bool `json:"message"`
}

// UserDetailsResponse wraps the signed-in user
type UserDetailsResponse struct {
	User *models.User `json:"user"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string         `json:"status"`
	Version   string         `json:"version"`
	Timestamp time.Time      `json:"timestamp"`
	Database  DatabaseStatus `json:"database"`
}

// DatabaseStatus reports database reachability
type DatabaseStatus struct {
	Status    string `json:"status"`
	Connected bool   `json:"connected"`
	Driver    string `json:"driver,omitempty"`
	Error     string `json:"error,omitempty"`
}

// VersionResponse for the root endpoint
type VersionResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
