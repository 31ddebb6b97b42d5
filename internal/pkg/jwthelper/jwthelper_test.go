package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateToken(key, "user-1", "quizcourse-cli", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "quizcourse-cli", claims.UserAgent)
	assert.False(t, claims.Expired(time.Now()))

	_, err = ParseToken([]byte("other"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	key := []byte("secret")
	token, err := GenerateToken(key, "user-1", "", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(key, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := DecodeUnverified(token)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestDecodeUnverified_Garbage(t *testing.T) {
	_, err := DecodeUnverified("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
