package storage

import (
	"context"

	"github.com/224solutions/offline-sync/internal/models"
)

//go:generate moq -out filestorage_mock.go . FileStorage

// FileStorage defines interface for locally stored binary attachments
type FileStorage interface {
	// SaveFile durably stores a file attachment
	SaveFile(ctx context.Context, file *models.OfflineFile) error

	// GetFile retrieves a stored file by id
	// Returns ErrFileNotFound if file doesn't exist
	GetFile(ctx context.Context, id string) (*models.OfflineFile, error)

	// ListFiles returns all stored files in insertion order
	ListFiles(ctx context.Context) ([]*models.OfflineFile, error)

	// ListFilesByEvent returns files owned by a specific event
	ListFilesByEvent(ctx context.Context, eventID string) ([]*models.OfflineFile, error)

	// DeleteFile removes a stored file after successful upload
	DeleteFile(ctx context.Context, id string) error
}
