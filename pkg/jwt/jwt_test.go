package jwt

import (
	"testing"
	"time"

	"medibook/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService(time.Hour)
	userID := uuid.New()

	token, tokenID, err := service.GenerateToken(userID, "alice@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestGenerateToken_UniqueTokenIDs(t *testing.T) {
	service := newTestService(time.Hour)
	userID := uuid.New()

	_, first, err := service.GenerateToken(userID, "alice@example.com", "user")
	require.NoError(t, err)
	_, second, err := service.GenerateToken(userID, "alice@example.com", "user")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateToken_Expired(t *testing.T) {
	service := newTestService(-time.Minute)
	token, _, err := service.GenerateToken(uuid.New(), "alice@example.com", "user")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := newTestService(time.Hour)
	token, _, err := service.GenerateToken(uuid.New(), "alice@example.com", "user")
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := newTestService(time.Hour)

	claims, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
