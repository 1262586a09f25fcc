package auth

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	assert.NoError(t, err)
	assert.Len(t, token, 32, "16 байт в hex - 32 символа")

	_, err = hex.DecodeString(token)
	assert.NoError(t, err)

	other, err := GenerateSessionToken()
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestAdminToken_RoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("test-secret", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseAdminToken("test-secret", token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Scope)
}

func TestAdminToken_WrongSecret(t *testing.T) {
	token, err := GenerateAdminToken("test-secret", time.Hour)
	assert.NoError(t, err)

	_, err = ParseAdminToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidAdminToken)
}

func TestAdminToken_Expired(t *testing.T) {
	token, err := GenerateAdminToken("test-secret", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseAdminToken("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidAdminToken)
}

func TestAdminToken_Garbage(t *testing.T) {
	_, err := ParseAdminToken("test-secret", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidAdminToken)
}
