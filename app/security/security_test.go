package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrongpass", hash))
	assert.False(t, VerifyPassword("secret123", "not-a-hash"))
}

func TestHashPasswordLongInput(t *testing.T) {
	// Inputs past bcrypt's 72-byte limit are truncated consistently.
	long := strings.Repeat("a", 100)
	hash, err := HashPassword(long)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(long, hash))
	assert.True(t, VerifyPassword(strings.Repeat("a", 72), hash))
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.CreateAccessToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := issuer.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestParseAccessTokenFailures(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.ParseAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer("other-secret", time.Hour)
		token, err := other.CreateAccessToken(42)
		require.NoError(t, err)

		_, err = issuer.ParseAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenIssuer("test-secret", -time.Minute)
		token, err := expired.CreateAccessToken(42)
		require.NoError(t, err)

		_, err = issuer.ParseAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
