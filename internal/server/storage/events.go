package storage

import (
	"context"

	"github.com/224solutions/offline-sync/internal/models"
)

// EventStorage defines interface for accepted sync events persistence
type EventStorage interface {
	// SaveEvent stores an accepted event keyed by its client event id.
	// Returns false if an event with the same client event id was already
	// stored; redelivery of the same event is not an error.
	SaveEvent(ctx context.Context, event *models.StoredEvent) (bool, error)

	// GetEvent retrieves a stored event by its client event id
	// Returns ErrEventNotFound if event doesn't exist
	GetEvent(ctx context.Context, clientEventID string) (*models.StoredEvent, error)

	// GetVendorEvents retrieves all stored events of a vendor
	// ordered by arrival. Returns empty slice if no events found
	GetVendorEvents(ctx context.Context, vendorID string) ([]*models.StoredEvent, error)

	// CountVendorEvents returns the number of stored events of a vendor
	CountVendorEvents(ctx context.Context, vendorID string) (int, error)
}
