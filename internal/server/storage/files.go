package storage

import (
	"context"

	"github.com/224solutions/offline-sync/internal/models"
)

// FileStorage defines interface for uploaded file attachments persistence
type FileStorage interface {
	// SaveFile stores an uploaded file keyed by its file id.
	// Returns false if a file with the same id was already stored;
	// re-upload of the same file is not an error.
	SaveFile(ctx context.Context, file *models.StoredFile) (bool, error)

	// GetFile retrieves a stored file by its id
	// Returns ErrFileNotFound if file doesn't exist
	GetFile(ctx context.Context, fileID string) (*models.StoredFile, error)

	// GetVendorFiles retrieves metadata of all files of a vendor
	// ordered by arrival. File contents are not loaded.
	GetVendorFiles(ctx context.Context, vendorID string) ([]*models.StoredFile, error)
}
