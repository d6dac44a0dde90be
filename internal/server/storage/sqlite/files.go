package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/internal/server/storage"
)

// SaveFile stores an uploaded file keyed by its file id
// Re-upload of an already stored file is reported as a duplicate
// Returns true if a new row was created, false for a duplicate
func (s *Storage) SaveFile(ctx context.Context, file *models.StoredFile) (bool, error) {
	query := `
		INSERT INTO sync_files (
			file_id, event_id, vendor_id, name, content_type,
			checksum, size, data, received_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_id) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query,
		file.FileID,
		file.EventID,
		file.VendorID,
		file.Name,
		file.ContentType,
		file.Checksum,
		file.Size,
		file.Data,
		file.ReceivedAt.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert file: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// GetFile retrieves a stored file by its id
// Returns ErrFileNotFound if file doesn't exist
func (s *Storage) GetFile(ctx context.Context, fileID string) (*models.StoredFile, error) {
	query := `
		SELECT file_id, event_id, vendor_id, name, content_type,
		       checksum, size, data, received_at
		FROM sync_files
		WHERE file_id = ?
	`

	file := &models.StoredFile{}
	var receivedAt int64

	err := s.db.QueryRowContext(ctx, query, fileID).Scan(
		&file.FileID,
		&file.EventID,
		&file.VendorID,
		&file.Name,
		&file.ContentType,
		&file.Checksum,
		&file.Size,
		&file.Data,
		&receivedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	file.ReceivedAt = unixToTime(receivedAt)

	return file, nil
}

// GetVendorFiles retrieves metadata of all files of a vendor ordered by arrival
// File contents are not loaded
func (s *Storage) GetVendorFiles(ctx context.Context, vendorID string) ([]*models.StoredFile, error) {
	query := `
		SELECT file_id, event_id, vendor_id, name, content_type,
		       checksum, size, received_at
		FROM sync_files
		WHERE vendor_id = ?
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor files: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var files []*models.StoredFile
	for rows.Next() {
		file := &models.StoredFile{}
		var receivedAt int64

		if err := rows.Scan(
			&file.FileID,
			&file.EventID,
			&file.VendorID,
			&file.Name,
			&file.ContentType,
			&file.Checksum,
			&file.Size,
			&receivedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}

		file.ReceivedAt = unixToTime(receivedAt)
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return files, nil
}
