package auth

import (
	"testing"
	"time"

	"github.com/lsgame/roomsvc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiry time.Duration) JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken("34633089486", "near")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "34633089486", claims.UserID)
	assert.Equal(t, "near", claims.Username)
	assert.Equal(t, "roomsvc", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestJWTService(time.Hour).GenerateToken("1", "near")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "another-secret", Expiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateToken("1", "near")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractUserIDFromToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken("777", "rem")
	require.NoError(t, err)

	userID, err := svc.ExtractUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "777", userID)
}
