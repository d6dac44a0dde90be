package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/224solutions/offline-sync/internal/client/storage"
)

// RunStatus показывает состояние соединения, сессии и локальной очереди
func (c *Cli) RunStatus(ctx context.Context, args []string) error {
	c.println("224SOLUTIONS Vendor Terminal")
	c.println()

	if c.monitor.Check(ctx) {
		c.println("Connection: online")
	} else {
		c.println("Connection: offline")
	}

	session, err := c.metadata.GetSession(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		c.println("Session:    not logged in")
	case err != nil:
		return fmt.Errorf("failed to get session: %w", err)
	case session.IsExpired(time.Now()):
		c.printf("Session:    vendor %s (expired %s)\n",
			session.VendorID, session.ExpiresAt.Format(time.RFC3339))
	default:
		c.printf("Session:    vendor %s\n", session.VendorID)
	}

	lastSync, err := c.metadata.GetLastSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}
	if lastSync.IsZero() {
		c.println("Last sync:  never")
	} else {
		c.printf("Last sync:  %s\n", lastSync.Format(time.RFC3339))
	}

	stats, err := c.recorder.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get queue stats: %w", err)
	}
	c.println()
	c.println("Queue:")
	c.printf("  pending:   %d\n", stats.Pending)
	c.printf("  failed:    %d\n", stats.Failed)
	c.printf("  synced:    %d\n", stats.Synced)
	c.printf("  abandoned: %d\n", stats.Abandoned)

	total, err := c.recorder.PendingSalesTotal(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute pending sales total: %w", err)
	}
	if !total.IsZero() {
		c.printf("\nPending sales total: %s\n", total)
	}

	return nil
}
