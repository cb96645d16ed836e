package auth

import (
	"testing"
	"time"

	"plaza/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	accessToken, err := jwtService.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Len(t, claims["roles"], 2)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, err := jwtService.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), exp-iat, 1)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, err := jwtService.GenerateAccessToken(uuid.New(), []string{"user"})
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(accessToken, "a_completely_different_secret")
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
