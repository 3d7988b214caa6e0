package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(User{ID: "reception"}, "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reception", claims["userId"])
	assert.Equal(t, "staff", claims["userType"])
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(User{ID: "reception"}, "staff")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = parseToken(token)
	assert.Error(t, err)
}
