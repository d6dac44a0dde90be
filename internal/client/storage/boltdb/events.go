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

// SaveEvent durably stores a new offline event
func (s *Storage) SaveEvent(ctx context.Context, event *models.OfflineEvent) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		events := tx.Bucket(bucketEvents)
		index := tx.Bucket(bucketEventIndex)

		// Дубликат client_event_id означает ошибку вызывающего кода:
		// id генерируется один раз и не переиспользуется
		if index.Get([]byte(event.ClientEventID)) != nil {
			return storage.ErrEventExists
		}

		seq, err := events.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		key := itob(seq)
		if err := events.Put(key, data); err != nil {
			return fmt.Errorf("failed to save event: %w", err)
		}

		if err := index.Put([]byte(event.ClientEventID), key); err != nil {
			return fmt.Errorf("failed to index event: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// GetEvent retrieves an event by its client event id
func (s *Storage) GetEvent(ctx context.Context, clientEventID string) (*models.OfflineEvent, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var event *models.OfflineEvent

	err := s.db.View(func(tx *bbolt.Tx) error {
		data, err := s.lookupEvent(tx, clientEventID)
		if err != nil {
			return err
		}

		event = &models.OfflineEvent{}
		if err := json.Unmarshal(data, event); err != nil {
			return fmt.Errorf("failed to unmarshal event: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return event, nil
}

// lookupEvent возвращает сериализованное событие по client_event_id через index bucket
func (s *Storage) lookupEvent(tx *bbolt.Tx, clientEventID string) ([]byte, error) {
	index := tx.Bucket(bucketEventIndex)
	key := index.Get([]byte(clientEventID))
	if key == nil {
		return nil, storage.ErrEventNotFound
	}

	data := tx.Bucket(bucketEvents).Get(key)
	if data == nil {
		return nil, storage.ErrEventNotFound
	}

	return data, nil
}

// GetDueEvents returns pending events plus failed events whose backoff
// window has elapsed, in insertion order
func (s *Storage) GetDueEvents(ctx context.Context, now time.Time) ([]*models.OfflineEvent, error) {
	return s.filterEvents(func(e *models.OfflineEvent) bool {
		return e.IsDue(now)
	})
}

// GetEventsByType returns non-terminal events of a specific type in insertion order
func (s *Storage) GetEventsByType(ctx context.Context, eventType string) ([]*models.OfflineEvent, error) {
	return s.filterEvents(func(e *models.OfflineEvent) bool {
		return e.Type == eventType && !e.IsTerminal()
	})
}

// GetAllEvents returns every stored event in insertion order
func (s *Storage) GetAllEvents(ctx context.Context) ([]*models.OfflineEvent, error) {
	return s.filterEvents(func(e *models.OfflineEvent) bool {
		return true
	})
}

// filterEvents обходит events bucket в порядке вставки и возвращает записи,
// прошедшие предикат
func (s *Storage) filterEvents(keep func(*models.OfflineEvent) bool) ([]*models.OfflineEvent, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var events []*models.OfflineEvent

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketEvents).ForEach(func(k, v []byte) error {
			var event models.OfflineEvent
			if err := json.Unmarshal(v, &event); err != nil {
				return fmt.Errorf("failed to unmarshal event: %w", err)
			}

			if keep(&event) {
				events = append(events, &event)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

// MarkEventSynced moves an event to the terminal synced status
func (s *Storage) MarkEventSynced(ctx context.Context, clientEventID string) error {
	return s.updateEvent(clientEventID, func(e *models.OfflineEvent) {
		e.Status = models.StatusSynced
		e.LastError = ""
		e.UpdatedAt = time.Now()
	})
}

// MarkEventFailed records a failed submission attempt
func (s *Storage) MarkEventFailed(ctx context.Context, clientEventID, reason string, nextAttempt time.Time) error {
	return s.updateEvent(clientEventID, func(e *models.OfflineEvent) {
		e.Status = models.StatusFailed
		e.LastError = reason
		e.Attempts++
		e.NextAttemptAt = nextAttempt
		e.UpdatedAt = time.Now()
	})
}

// MarkEventAbandoned moves an event to the terminal abandoned status
func (s *Storage) MarkEventAbandoned(ctx context.Context, clientEventID, reason string) error {
	return s.updateEvent(clientEventID, func(e *models.OfflineEvent) {
		e.Status = models.StatusAbandoned
		e.LastError = reason
		e.UpdatedAt = time.Now()
	})
}

// updateEvent читает событие, применяет мутацию и сохраняет обратно
// в рамках одной транзакции
func (s *Storage) updateEvent(clientEventID string, mutate func(*models.OfflineEvent)) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketEventIndex)
		key := index.Get([]byte(clientEventID))
		if key == nil {
			return storage.ErrEventNotFound
		}

		events := tx.Bucket(bucketEvents)
		data := events.Get(key)
		if data == nil {
			return storage.ErrEventNotFound
		}

		var event models.OfflineEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to unmarshal event: %w", err)
		}

		mutate(&event)

		updated, err := json.Marshal(&event)
		if err != nil {
			return fmt.Errorf("failed to marshal updated event: %w", err)
		}

		if err := events.Put(key, updated); err != nil {
			return fmt.Errorf("failed to save updated event: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// EventStats recomputes per-status counters from the store
func (s *Storage) EventStats(ctx context.Context) (*models.SyncStats, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	stats := &models.SyncStats{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketEvents).ForEach(func(k, v []byte) error {
			var event models.OfflineEvent
			if err := json.Unmarshal(v, &event); err != nil {
				return fmt.Errorf("failed to unmarshal event: %w", err)
			}

			stats.Total++
			switch event.Status {
			case models.StatusPending:
				stats.Pending++
			case models.StatusSynced:
				stats.Synced++
			case models.StatusFailed:
				stats.Failed++
			case models.StatusAbandoned:
				stats.Abandoned++
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return stats, nil
}

// CleanupSyncedEvents removes synced events last updated before the cutoff
func (s *Storage) CleanupSyncedEvents(ctx context.Context, olderThan time.Time) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	removed := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		events := tx.Bucket(bucketEvents)
		index := tx.Bucket(bucketEventIndex)

		cursor := events.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var event models.OfflineEvent
			if err := json.Unmarshal(v, &event); err != nil {
				return fmt.Errorf("failed to unmarshal event: %w", err)
			}

			// Отсчёт retention от UpdatedAt: событие, созданное давно,
			// но синхронизированное только что, ещё не подлежит очистке
			if event.Status != models.StatusSynced || !event.UpdatedAt.Before(olderThan) {
				continue
			}

			if err := cursor.Delete(); err != nil {
				return fmt.Errorf("failed to delete event: %w", err)
			}
			if err := index.Delete([]byte(event.ClientEventID)); err != nil {
				return fmt.Errorf("failed to delete event index: %w", err)
			}
			removed++
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("cleanup transaction failed: %w", err)
	}

	return removed, nil
}
