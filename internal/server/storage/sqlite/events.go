package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/internal/server/storage"
)

// SaveEvent stores an accepted event keyed by its client event id
// Uses idempotent insert: redelivery of an already stored event is
// reported as a duplicate, not an error
// Returns true if a new row was created, false for a duplicate
func (s *Storage) SaveEvent(ctx context.Context, event *models.StoredEvent) (bool, error) {
	query := `
		INSERT INTO sync_events (
			client_event_id, vendor_id, type, payload,
			created_at, received_at
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(client_event_id) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query,
		event.ClientEventID,
		event.VendorID,
		event.Type,
		string(event.Payload),
		event.CreatedAt.Unix(),
		event.ReceivedAt.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// GetEvent retrieves a stored event by its client event id
// Returns ErrEventNotFound if event doesn't exist
func (s *Storage) GetEvent(ctx context.Context, clientEventID string) (*models.StoredEvent, error) {
	query := `
		SELECT client_event_id, vendor_id, type, payload,
		       created_at, received_at
		FROM sync_events
		WHERE client_event_id = ?
	`

	event := &models.StoredEvent{}
	var payload string
	var createdAt, receivedAt int64

	err := s.db.QueryRowContext(ctx, query, clientEventID).Scan(
		&event.ClientEventID,
		&event.VendorID,
		&event.Type,
		&payload,
		&createdAt,
		&receivedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event.Payload = []byte(payload)
	event.CreatedAt = unixToTime(createdAt)
	event.ReceivedAt = unixToTime(receivedAt)

	return event, nil
}

// GetVendorEvents retrieves all stored events of a vendor ordered by arrival
// Returns empty slice if no events found
func (s *Storage) GetVendorEvents(ctx context.Context, vendorID string) ([]*models.StoredEvent, error) {
	query := `
		SELECT client_event_id, vendor_id, type, payload,
		       created_at, received_at
		FROM sync_events
		WHERE vendor_id = ?
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var events []*models.StoredEvent
	for rows.Next() {
		event := &models.StoredEvent{}
		var payload string
		var createdAt, receivedAt int64

		if err := rows.Scan(
			&event.ClientEventID,
			&event.VendorID,
			&event.Type,
			&payload,
			&createdAt,
			&receivedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		event.Payload = []byte(payload)
		event.CreatedAt = unixToTime(createdAt)
		event.ReceivedAt = unixToTime(receivedAt)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

// CountVendorEvents returns the number of stored events of a vendor
func (s *Storage) CountVendorEvents(ctx context.Context, vendorID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sync_events WHERE vendor_id = ?`, vendorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vendor events: %w", err)
	}
	return count, nil
}

func unixToTime(timestamp int64) time.Time {
	return time.Unix(timestamp, 0)
}
