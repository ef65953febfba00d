package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matsal-partner-api/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &entity.User{ID: 7, Email: "staff@matsal.app", Name: "Kitchen Staff", Role: entity.RoleStaff}

	token, err := GenerateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "staff@matsal.app", claims.Email)
	assert.Equal(t, entity.RoleStaff, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &entity.User{ID: 1, Email: "a@b.c", Role: entity.RoleAdmin}
	token, err := GenerateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	user := &entity.User{ID: 1, Email: "a@b.c", Role: entity.RoleAdmin}
	token, err := GenerateToken(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}
