package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	signed, err := GenerateAccessToken("user@example.com", "test-secret", 15)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.ParseWithClaims(signed, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*AccessClaims)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestGenerateAccessToken_WrongSecretRejected(t *testing.T) {
	signed, err := GenerateAccessToken("user@example.com", "test-secret", 15)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(signed, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
