package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/224solutions/offline-sync/internal/client/api"
	"github.com/224solutions/offline-sync/internal/client/cli"
	"github.com/224solutions/offline-sync/internal/client/connectivity"
	"github.com/224solutions/offline-sync/internal/client/notify"
	"github.com/224solutions/offline-sync/internal/client/recorder"
	"github.com/224solutions/offline-sync/internal/client/storage/boltdb"
	syncengine "github.com/224solutions/offline-sync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "vendor-terminal.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Локальное хранилище очереди: события переживают перезапуск терминала
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)

	monitor := connectivity.NewMonitor(apiClient, logger, connectivity.Config{})
	notifier := notify.NewConsole()

	engine := syncengine.NewEngine(
		boltStorage, boltStorage, boltStorage, apiClient,
		notifier, logger, monitor.Online, syncengine.Config{})

	rec := recorder.NewService(recorder.Config{
		Events:      boltStorage,
		Files:       boltStorage,
		Metadata:    boltStorage,
		Client:      apiClient,
		Notifier:    notifier,
		Logger:      logger,
		Online:      monitor.Online,
		RequestSync: engine.RequestSync,
	})

	c := cli.New(rec, engine, monitor, boltStorage, logger)

	var cmdErr error
	switch command {
	case "login":
		cmdErr = c.RunLogin(ctx, args[1:])
	case "logout":
		cmdErr = c.RunLogout(ctx, args[1:])
	case "sale":
		cmdErr = c.RunSale(ctx, args[1:])
	case "receipt":
		cmdErr = c.RunReceipt(ctx, args[1:])
	case "invoice":
		cmdErr = c.RunInvoice(ctx, args[1:])
	case "payment":
		cmdErr = c.RunPayment(ctx, args[1:])
	case "upload":
		cmdErr = c.RunUpload(ctx, args[1:])
	case "status":
		cmdErr = c.RunStatus(ctx, args[1:])
	case "sync":
		cmdErr = c.RunSync(ctx, args[1:])
	case "history":
		cmdErr = c.RunHistory(ctx, args[1:])
	case "run":
		cmdErr = c.RunBackground(ctx, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("224SOLUTIONS Vendor Terminal\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
