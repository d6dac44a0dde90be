package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/224solutions/offline-sync/internal/client/storage"
	"github.com/224solutions/offline-sync/internal/models"
)

var (
	// Keys in the meta bucket
	keyLastSyncTime = []byte("last_sync_time")
	keySession      = []byte("session")
)

// SaveLastSyncTime saves the time of the last completed sync pass
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		value, err := t.MarshalText()
		if err != nil {
			return fmt.Errorf("failed to marshal time: %w", err)
		}
		return tx.Bucket(bucketMeta).Put(keyLastSyncTime, value)
	})

	if err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}

	return nil
}

// GetLastSyncTime retrieves the time of the last completed sync pass
// Returns the zero time if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyLastSyncTime)
		if data == nil {
			// Синхронизации ещё не было
			return nil
		}
		return t.UnmarshalText(data)
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return t, nil
}

// SaveSession persists the vendor session (bearer token)
func (s *Storage) SaveSession(ctx context.Context, session *models.Session) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keySession, data)
	})

	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves the persisted vendor session
func (s *Storage) GetSession(ctx context.Context) (*models.Session, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var session *models.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySession)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		session = &models.Session{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes the persisted session
func (s *Storage) DeleteSession(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Delete(keySession)
	})

	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
