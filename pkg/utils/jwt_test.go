package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, "ayse@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "ayse@example.com", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestValidateToken_Tampered(t *testing.T) {
	token, err := CreateToken(uuid.New(), "ayse@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, ComparePasswords(hash, "password123"))
	assert.Error(t, ComparePasswords(hash, "password124"))
}
