package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshTokenIsValid(t *testing.T) {
	live := &RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	assert.True(t, live.IsValid())

	expired := &RefreshToken{ExpiresAt: time.Now().Add(-time.Hour)}
	assert.True(t, expired.IsExpired())
	assert.False(t, expired.IsValid())

	revoked := &RefreshToken{ExpiresAt: time.Now().Add(time.Hour), IsRevoked: true}
	assert.False(t, revoked.IsValid())
}

func TestRefreshTokenRevoke(t *testing.T) {
	rt := &RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	rt.Revoke()
	assert.True(t, rt.IsRevoked)
	assert.False(t, rt.IsValid())
}
