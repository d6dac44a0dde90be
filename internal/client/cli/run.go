package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// RunBackground запускает терминал в фоновом режиме: монитор соединения
// и периодическую синхронизацию. Завершается по SIGINT/SIGTERM.
func (c *Cli) RunBackground(ctx context.Context, args []string) error {
	c.monitor.Subscribe(func(online bool) {
		if online {
			c.println("Connection restored, syncing queued events")
			c.engine.Trigger(context.Background())
			return
		}
		c.println("Connection lost, recording offline")
	})

	c.monitor.Start(ctx)
	defer c.monitor.Stop()

	c.engine.Start(ctx)
	defer c.engine.Stop()

	c.println("Vendor terminal running, press Ctrl+C to stop")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
		c.println("Shutting down")
	case <-ctx.Done():
	}
	return nil
}
