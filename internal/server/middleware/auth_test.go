package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/224solutions/offline-sync/internal/server/handlers"
)

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte("test-secret-key-for-tests-only"),
		AccessTokenTTL: time.Hour,
	}
}

func authTestHandler(t *testing.T) (http.Handler, *string) {
	t.Helper()

	var gotVendor string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := handlers.GetVendorID(r.Context())
		require.True(t, ok)
		gotVendor = vendorID
		w.WriteHeader(http.StatusOK)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return AuthMiddleware(logger, testJWTConfig())(next), &gotVendor
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	handler, gotVendor := authTestHandler(t)

	token, _, err := handlers.GenerateAccessToken(testJWTConfig(), "vendor-1")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/sync/batch", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vendor-1", *gotVendor)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler, _ := authTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/api/sync/batch", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	handler, _ := authTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/api/sync/batch", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	handler, _ := authTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/api/sync/batch", nil)
	r.Header.Set("Authorization", "Bearer garbage.token.value")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	handler, _ := authTestHandler(t)

	expired := handlers.JWTConfig{
		Secret:         []byte("test-secret-key-for-tests-only"),
		AccessTokenTTL: -time.Minute,
	}
	token, _, err := handlers.GenerateAccessToken(expired, "vendor-1")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/sync/batch", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
