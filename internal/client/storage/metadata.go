package storage

import (
	"context"
	"time"

	"github.com/224solutions/offline-sync/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the time of the last completed sync pass
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// GetLastSyncTime retrieves the time of the last completed sync pass
	// Returns the zero time if no sync has been performed yet
	GetLastSyncTime(ctx context.Context) (time.Time, error)

	// SaveSession persists the vendor session (bearer token)
	SaveSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves the persisted vendor session
	// Returns ErrSessionNotFound if no session is stored
	GetSession(ctx context.Context) (*models.Session, error)

	// DeleteSession removes the persisted session
	DeleteSession(ctx context.Context) error
}
