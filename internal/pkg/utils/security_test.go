package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasskeyHash(t *testing.T) {
	hash, err := HashPasskey("123456")
	require.NoError(t, err)

	assert.True(t, CheckPasskeyHash("123456", hash))
	assert.False(t, CheckPasskeyHash("654321", hash))
}

func TestSessionJWT(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	_, err = ParseSessionJWT(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateSessionJWT("session-1", "secret", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = ParseSessionJWT(expired, "secret")
	assert.Error(t, err)
}
