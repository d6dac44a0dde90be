package cli

import (
	"context"
	"fmt"
	"time"
)

// RunHistory показывает записанные события и их статус синхронизации
func (c *Cli) RunHistory(ctx context.Context, args []string) error {
	events, err := c.recorder.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	if len(events) == 0 {
		c.println("No recorded events")
		return nil
	}

	for _, event := range events {
		line := fmt.Sprintf("%s  %-8s  %-9s  %s",
			event.CreatedAt.Format(time.RFC3339), event.Type, event.Status, event.ClientEventID)
		if event.LastError != "" {
			line += fmt.Sprintf("  (attempt %d: %s)", event.Attempts, event.LastError)
		}
		c.println(line)
	}
	c.printf("\n%d events total\n", len(events))
	return nil
}
