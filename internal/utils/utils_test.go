package utils

import (
	"testing"

	"github.com/mini-crm/crm-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig("test-secret")

	token, err := GenerateJWT("user-1", "mohit@example.com", "admin", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "mohit@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "mohit@example.com", "admin", testConfig("secret-a"))
	require.NoError(t, err)

	_, err = ValidateJWT(token, testConfig("secret-b"))
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testConfig("test-secret"))
	assert.Error(t, err)
}
