package auth

import (
	"testing"
	"time"

	"landhub/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			TokenSecret: "test_secret_key_very_long_for_testing",
			TokenTTL:    time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	tokenString, err := jwtService.GenerateAdminToken("admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := jwtService.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", claims["sub"])
	assert.Equal(t, AdminRole, claims["role"])
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.Auth.TokenSecret = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	tokenString, err := otherService.GenerateAdminToken("admin@example.com")
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin@example.com",
		"role": AdminRole,
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}
