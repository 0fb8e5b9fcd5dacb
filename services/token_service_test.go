package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	pair, err := svc.GenerateTokenPair("user-42", "test@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	t.Run("Access Token Claims", func(t *testing.T) {
		claims, err := svc.ValidateToken(pair.AccessToken, "access")

		require.NoError(t, err)
		assert.Equal(t, "user-42", claims["sub"])
		assert.Equal(t, "test@example.com", claims["email"])
		assert.Equal(t, "user", claims["role"])
	})

	t.Run("Refresh Token Carries A Jti", func(t *testing.T) {
		claims, err := svc.ValidateToken(pair.RefreshToken, "refresh")

		require.NoError(t, err)
		assert.NotEmpty(t, claims["jti"])
	})

	t.Run("Type Mismatch Rejected", func(t *testing.T) {
		_, err := svc.ValidateToken(pair.RefreshToken, "access")

		assert.Error(t, err)
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		other := NewTokenService("other-secret")

		_, err := other.ValidateToken(pair.AccessToken, "access")

		assert.Error(t, err)
	})
}
