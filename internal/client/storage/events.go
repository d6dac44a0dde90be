package storage

import (
	"context"
	"time"

	"github.com/224solutions/offline-sync/internal/models"
)

//go:generate moq -out eventstorage_mock.go . EventStorage

// EventStorage defines interface for the local durable event queue
type EventStorage interface {
	// SaveEvent durably stores a new offline event
	// Returns ErrEventExists if an event with the same client event id is already stored
	SaveEvent(ctx context.Context, event *models.OfflineEvent) error

	// GetEvent retrieves an event by its client event id
	// Returns ErrEventNotFound if event doesn't exist
	GetEvent(ctx context.Context, clientEventID string) (*models.OfflineEvent, error)

	// GetDueEvents returns events eligible for submission at the given moment:
	// pending events plus failed events whose backoff window has elapsed.
	// Events are returned in insertion order.
	GetDueEvents(ctx context.Context, now time.Time) ([]*models.OfflineEvent, error)

	// GetEventsByType returns non-terminal events of a specific type in insertion order
	// Used for derived views such as the pending-sales list
	GetEventsByType(ctx context.Context, eventType string) ([]*models.OfflineEvent, error)

	// GetAllEvents returns every stored event in insertion order
	// Used for the sync history view
	GetAllEvents(ctx context.Context) ([]*models.OfflineEvent, error)

	// MarkEventSynced moves an event to the terminal synced status
	MarkEventSynced(ctx context.Context, clientEventID string) error

	// MarkEventFailed records a failed submission attempt: increments the
	// attempt counter, stores the failure reason and the next attempt time
	MarkEventFailed(ctx context.Context, clientEventID, reason string, nextAttempt time.Time) error

	// MarkEventAbandoned moves an event to the terminal abandoned status
	// after the retry budget is exhausted
	MarkEventAbandoned(ctx context.Context, clientEventID, reason string) error

	// EventStats recomputes per-status counters from the store
	EventStats(ctx context.Context) (*models.SyncStats, error)

	// CleanupSyncedEvents removes synced events created before the cutoff
	// Returns the number of removed events
	CleanupSyncedEvents(ctx context.Context, olderThan time.Time) (int, error)
}
