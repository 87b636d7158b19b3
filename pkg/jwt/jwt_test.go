package jwt

import (
	"testing"
	"time"

	"enfermeria-api/config"

	"github.com/stretchr/testify/assert"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	s := testService()

	token, tokenID, err := s.GenerateAccessToken(42, "nurse@escuela.edu", "Enfermero", 2)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "nurse@escuela.edu", claims.Email)
	assert.Equal(t, "Enfermero", claims.Role)
	assert.Equal(t, 2, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateRefreshToken(42, "nurse@escuela.edu", "Enfermero", 2)
	assert.NoError(t, err)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestTokenIDsAreUnique(t *testing.T) {
	s := testService()

	_, first, err := s.GenerateAccessToken(1, "a@b.c", "Enfermero", 2)
	assert.NoError(t, err)
	_, second, err := s.GenerateAccessToken(1, "a@b.c", "Enfermero", 2)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(1, "a@b.c", "Enfermero", 2)
	assert.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:       "another-secret",
		AccessExpiry: time.Hour,
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := testService().ValidateToken("not-a-token")
	assert.Error(t, err)
}
