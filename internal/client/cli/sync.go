package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/224solutions/offline-sync/internal/client/storage"
	syncengine "github.com/224solutions/offline-sync/internal/client/sync"
)

// RunSync запускает проход синхронизации и ждёт его завершения.
// Если проход уже идёт, команда присоединяется к нему.
func (c *Cli) RunSync(ctx context.Context, args []string) error {
	if !c.monitor.Check(ctx) {
		c.println("Server is unreachable, events stay queued")
		return nil
	}

	result, err := c.engine.Trigger(ctx).Wait(ctx)
	if err != nil {
		switch {
		case errors.Is(err, syncengine.ErrOffline):
			c.println("Server is unreachable, events stay queued")
			return nil
		case errors.Is(err, storage.ErrSessionNotFound):
			c.println("Not logged in, run: vendor-terminal login")
			return nil
		default:
			return fmt.Errorf("sync failed: %w", err)
		}
	}

	c.printf("Sync complete: %d synced, %d failed, %d abandoned\n",
		result.Synced, result.Failed, result.Abandoned)
	if result.FilesUploaded > 0 || result.FilesDropped > 0 {
		c.printf("Files: %d uploaded, %d dropped\n", result.FilesUploaded, result.FilesDropped)
	}
	if result.Cleaned > 0 {
		c.printf("Cleaned %d synced events from local store\n", result.Cleaned)
	}
	return nil
}
