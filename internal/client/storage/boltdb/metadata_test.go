package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/224solutions/offline-sync/internal/client/storage"
	"github.com/224solutions/offline-sync/internal/models"
)

func TestLastSyncTime_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// До первой синхронизации возвращается нулевое время
	got, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	now := time.Now().Truncate(time.Second)
	require.NoError(t, store.SaveLastSyncTime(ctx, now))

	got, err = store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, now, got, time.Second)
}

func TestSession_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &models.Session{
		VendorID:    "vendor-001",
		AccessToken: "token-abc",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.VendorID, got.VendorID)
	assert.Equal(t, session.AccessToken, got.AccessToken)

	require.NoError(t, store.DeleteSession(ctx))

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}
