// Package cli реализует команды терминала продавца.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/224solutions/offline-sync/internal/client/connectivity"
	"github.com/224solutions/offline-sync/internal/client/recorder"
	"github.com/224solutions/offline-sync/internal/client/storage"
	syncengine "github.com/224solutions/offline-sync/internal/client/sync"
)

// Cli связывает команды терминала с сервисами клиента
type Cli struct {
	recorder *recorder.Service
	engine   *syncengine.Engine
	monitor  *connectivity.Monitor
	metadata storage.MetadataStorage
	logger   *slog.Logger
	out      io.Writer
}

// New создает CLI поверх сервисов клиента
func New(
	rec *recorder.Service,
	engine *syncengine.Engine,
	monitor *connectivity.Monitor,
	metadata storage.MetadataStorage,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		recorder: rec,
		engine:   engine,
		monitor:  monitor,
		metadata: metadata,
		logger:   logger,
		out:      os.Stdout,
	}
}

// SetOutput переопределяет вывод команд. Используется в тестах.
func (c *Cli) SetOutput(w io.Writer) {
	c.out = w
}

func (c *Cli) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Cli) println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// printEventOutcome печатает, ушло событие на сервер сразу
// или встало в локальную очередь
func (c *Cli) printEventOutcome(result *recorder.RecordResult) {
	if result.Synced {
		c.printf("Synced to server (event %s)\n", result.ClientEventID)
		return
	}
	c.printf("Queued for sync (event %s)\n", result.ClientEventID)
}

func PrintUsage() {
	fmt.Println("224SOLUTIONS Vendor Terminal")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  vendor-terminal [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: vendor-terminal.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login            Save vendor session (vendor id and access token)")
	fmt.Println("  logout           Remove saved session")
	fmt.Println("  sale             Record a sale (online fast path or offline queue)")
	fmt.Println("  receipt          Record a receipt")
	fmt.Println("  invoice          Record an invoice")
	fmt.Println("  payment          Record a payment")
	fmt.Println("  upload           Queue a file attachment for upload")
	fmt.Println("  status           Show connection, session and queue status")
	fmt.Println("  sync             Run a synchronization pass now")
	fmt.Println("  history          Show recorded events and their sync status")
	fmt.Println("  run              Run in background mode with periodic sync")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  vendor-terminal login -vendor shop-conakry-12 -token <jwt>")
	fmt.Println("  vendor-terminal sale -product prod-42 -qty 3 -price 500000 -method cash")
	fmt.Println("  vendor-terminal upload -file facture.pdf")
	fmt.Println("  vendor-terminal sync")
	fmt.Println("  vendor-terminal run")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
