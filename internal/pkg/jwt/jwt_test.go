package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-signing"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(7, "marina", "REQUESTER", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "marina", claims.Username)
	assert.Equal(t, "REQUESTER", claims.Role)
	assert.Equal(t, "sharebrasil-ops", claims.Issuer)
}

func TestAccessTokenRejections(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateAccessToken(7, "marina", "REQUESTER", testSecret, 15)
		require.NoError(t, err)

		_, err = ValidateAccessToken(token, "another-secret")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateAccessToken(7, "marina", "REQUESTER", testSecret, -1)
		require.NoError(t, err)

		_, err = ValidateAccessToken(token, testSecret)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ValidateAccessToken("not.a.token", testSecret)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		token, err := GenerateRefreshToken(7, "tok-1", testSecret, 7)
		require.NoError(t, err)

		claims, err := ValidateAccessToken(token, testSecret)
		require.NoError(t, err)
		assert.Empty(t, claims.Username)
	})
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7, "tok-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "tok-1", claims.TokenID)
}
