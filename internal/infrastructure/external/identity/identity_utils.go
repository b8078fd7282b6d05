package identity

import (
	"errors"

	"github.com/lsgame/roomsvc/internal/domain"
)

// IsNotFoundError checks if the error means the resolver does not know the id
func IsNotFoundError(err error) bool {
	var svcErr *domain.IdentityServiceError
	if errors.As(err, &svcErr) {
		return svcErr.IsNotFound()
	}
	return false
}

// Is4xxError checks if the error is a 4xx client error
func Is4xxError(err error) bool {
	var svcErr *domain.IdentityServiceError
	if errors.As(err, &svcErr) {
		return svcErr.StatusCode >= 400 && svcErr.StatusCode < 500
	}
	return false
}

// Is5xxError checks if the error is a 5xx server error
func Is5xxError(err error) bool {
	var svcErr *domain.IdentityServiceError
	if errors.As(err, &svcErr) {
		return svcErr.StatusCode >= 500 && svcErr.StatusCode < 600
	}
	return false
}
