package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret-key-for-tests-only"),
		AccessTokenTTL: time.Hour,
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, "vendor-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", claims.VendorID)
	assert.Equal(t, "offline-sync", claims.Issuer)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateAccessToken(testJWTConfig(), "vendor-1")
	require.NoError(t, err)

	other := JWTConfig{Secret: []byte("different-secret"), AccessTokenTTL: time.Hour}
	_, err = ValidateAccessToken(other, token)
	assert.Error(t, err)
}

func TestAccessToken_Expired(t *testing.T) {
	cfg := JWTConfig{
		Secret:         []byte("test-secret-key-for-tests-only"),
		AccessTokenTTL: -time.Minute,
	}

	token, _, err := GenerateAccessToken(cfg, "vendor-1")
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken(testJWTConfig(), "not.a.token")
	assert.Error(t, err)
}
