package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-marketplace-server/config"
)

func TestHashAndCheckPassword(t *testing.T) {
	js := NewJWTService()

	hash, err := js.HashPassword("Str0ngpass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngpass", hash)

	assert.True(t, js.CheckPasswordHash("Str0ngpass", hash))
	assert.False(t, js.CheckPasswordHash("wrongpass1A", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}

	js := NewJWTService()

	token, expiresIn, err := js.generateAccessToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresIn, int64(0))

	userID, err := js.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}

	js := NewJWTService()

	_, err := js.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	js := NewJWTService()

	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "first-secret", ExpiryHours: 1},
	}
	token, _, err := js.generateAccessToken(7)
	require.NoError(t, err)

	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "second-secret", ExpiryHours: 1},
	}
	_, err = js.ValidateAccessToken(token)
	assert.Error(t, err)
}
