package domain

import (
	"fmt"
)

// UserHandle is the resolved platform identity for an opaque user id. The
// gateway sidecar owns the actual platform connection; this service only
// needs the display handle and the bot classification.
type UserHandle struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	IsBot       bool   `json:"is_bot"`
}

// Mention returns the platform mention string for the handle
func (h *UserHandle) Mention() string {
	return fmt.Sprintf("<@%d>", h.ID)
}

// IdentityService defines the interface for the external identity resolver
type IdentityService interface {
	ResolveUser(userID int64) (*UserHandle, error)
}

// IdentityServiceError represents an identity resolver error with its HTTP
// status code
type IdentityServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *IdentityServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("identity service error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("identity service error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the resolver did not know the user id
func (e *IdentityServiceError) IsNotFound() bool {
	return e.StatusCode == 404
}
