package identity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	notFound := &domain.IdentityServiceError{StatusCode: 404, Code: "NOT_FOUND", Message: "unknown id"}
	rateLimited := &domain.IdentityServiceError{StatusCode: 429, Message: "slow down"}
	outage := &domain.IdentityServiceError{StatusCode: 503, Message: "unavailable"}

	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsNotFoundError(rateLimited))
	assert.False(t, IsNotFoundError(outage))

	assert.True(t, Is4xxError(notFound))
	assert.True(t, Is4xxError(rateLimited))
	assert.False(t, Is4xxError(outage))

	assert.False(t, Is5xxError(notFound))
	assert.True(t, Is5xxError(outage))
}

func TestErrorClassificationUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("resolve user 7: %w", &domain.IdentityServiceError{StatusCode: 404})
	assert.True(t, IsNotFoundError(wrapped))
}

func TestErrorClassificationIgnoresPlainErrors(t *testing.T) {
	err := errors.New("connection refused")
	assert.False(t, IsNotFoundError(err))
	assert.False(t, Is4xxError(err))
	assert.False(t, Is5xxError(err))
}
