package services

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 12, Role: 2}, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), userID)
	assert.Equal(t, 2, role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(UserInfo{UserID: 12, Role: 2}, 60)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, _, err = GetUserIDFromToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := Claims{
		UserInfo: UserInfo{UserID: 12, Role: 2},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, err = GetUserIDFromToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, _, err := GetUserIDFromToken("not.a.token")
	assert.Error(t, err)
}
