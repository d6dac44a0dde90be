package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/224solutions/offline-sync/internal/client/storage"
	"github.com/224solutions/offline-sync/internal/models"
)

// SaveFile durably stores a file attachment
func (s *Storage) SaveFile(ctx context.Context, file *models.OfflineFile) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal file: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		files := tx.Bucket(bucketFiles)
		index := tx.Bucket(bucketFileIndex)

		seq, err := files.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		key := itob(seq)
		if err := files.Put(key, data); err != nil {
			return fmt.Errorf("failed to save file: %w", err)
		}

		if err := index.Put([]byte(file.ID), key); err != nil {
			return fmt.Errorf("failed to index file: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("file transaction failed: %w", err)
	}

	return nil
}

// GetFile retrieves a stored file by id
func (s *Storage) GetFile(ctx context.Context, id string) (*models.OfflineFile, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var file *models.OfflineFile

	err := s.db.View(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketFileIndex)
		key := index.Get([]byte(id))
		if key == nil {
			return storage.ErrFileNotFound
		}

		data := tx.Bucket(bucketFiles).Get(key)
		if data == nil {
			return storage.ErrFileNotFound
		}

		file = &models.OfflineFile{}
		if err := json.Unmarshal(data, file); err != nil {
			return fmt.Errorf("failed to unmarshal file: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return file, nil
}

// ListFiles returns all stored files in insertion order
func (s *Storage) ListFiles(ctx context.Context) ([]*models.OfflineFile, error) {
	return s.filterFiles(func(f *models.OfflineFile) bool {
		return true
	})
}

// ListFilesByEvent returns files owned by a specific event
func (s *Storage) ListFilesByEvent(ctx context.Context, eventID string) ([]*models.OfflineFile, error) {
	return s.filterFiles(func(f *models.OfflineFile) bool {
		return f.EventID == eventID
	})
}

func (s *Storage) filterFiles(keep func(*models.OfflineFile) bool) ([]*models.OfflineFile, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var files []*models.OfflineFile

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).ForEach(func(k, v []byte) error {
			var file models.OfflineFile
			if err := json.Unmarshal(v, &file); err != nil {
				return fmt.Errorf("failed to unmarshal file: %w", err)
			}

			if keep(&file) {
				files = append(files, &file)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}

	return files, nil
}

// DeleteFile removes a stored file after successful upload
func (s *Storage) DeleteFile(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketFileIndex)
		key := index.Get([]byte(id))
		if key == nil {
			return storage.ErrFileNotFound
		}

		if err := tx.Bucket(bucketFiles).Delete(key); err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}

		if err := index.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete file index: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}
