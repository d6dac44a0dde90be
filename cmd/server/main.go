package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/224solutions/offline-sync/internal/server/handlers"
	"github.com/224solutions/offline-sync/internal/server/middleware"
	"github.com/224solutions/offline-sync/internal/server/storage/sqlite"
	"github.com/224solutions/offline-sync/internal/validation"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOr("SYNC_SERVER_ADDR", ":8080"), "Listen address")
	dbPath := flag.String("db", envOr("SYNC_SERVER_DB", "sync-server.db"), "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", os.Getenv("SYNC_SERVER_JWT_SECRET"), "Secret for signing vendor tokens")
	tokenTTL := flag.Duration("token-ttl", 30*24*time.Hour, "Lifetime of issued vendor tokens")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *jwtSecret == "" {
		logger.Error("jwt secret is required, set -jwt-secret or SYNC_SERVER_JWT_SECRET")
		os.Exit(1)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(*jwtSecret),
		AccessTokenTTL: *tokenTTL,
	}

	// Субкоманда token выпускает JWT для терминала продавца.
	// Токены раздаются администратором, у сервера нет саморегистрации.
	if args := flag.Args(); len(args) > 0 && args[0] == "token" {
		if err := runIssueToken(jwtConfig, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(logger, *addr, *dbPath, jwtConfig); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string, jwtConfig handlers.JWTConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	syncHandler := handlers.NewSyncHandler(logger, store)
	uploadHandler := handlers.NewUploadHandler(logger, store, store)
	salesHandler := handlers.NewSalesHandler(logger, store)
	eventsHandler := handlers.NewEventsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store)

	auth := middleware.AuthMiddleware(logger, jwtConfig)
	logging := middleware.LoggingMiddleware(logger)

	// Загрузка файлов дороже батчей и лимитируется отдельно
	rateLimit := middleware.RateLimitByPathMiddleware(
		[]middleware.PathRateLimit{
			{Path: "/api/sync/upload", Rate: 60, Window: 1 * time.Minute},
		},
		300, 1*time.Minute, logger)

	// Логирование внутри auth: в записях есть vendor id, отказы
	// логирует сам auth middleware
	protected := func(h http.HandlerFunc) http.Handler {
		return auth(rateLimit(logging(h)))
	}

	mux := http.NewServeMux()
	mux.Handle("/health", http.HandlerFunc(healthHandler.Health))
	mux.Handle("/api/sync/batch", protected(syncHandler.HandleBatchSync))
	mux.Handle("/api/sync/upload", protected(uploadHandler.HandleUpload))
	mux.Handle("/api/sync/events", protected(eventsHandler.HandleVendorEvents))
	mux.Handle("/api/sales", protected(salesHandler.HandleSale))

	recovery := middleware.RecoveryMiddleware(logger)

	server := &http.Server{
		Addr:              addr,
		Handler:           recovery(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("sync server listening", "addr", addr, "db", dbPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// runIssueToken печатает подписанный токен для vendor id
func runIssueToken(jwtConfig handlers.JWTConfig, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	vendorID := fs.String("vendor", "", "Vendor ID to issue the token for")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validation.ValidateVendorID(*vendorID); err != nil {
		return fmt.Errorf("invalid vendor id: %w", err)
	}

	token, expiresAt, err := handlers.GenerateAccessToken(jwtConfig, *vendorID)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Printf("Vendor:  %s\n", *vendorID)
	fmt.Printf("Expires: %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
	fmt.Printf("Token:   %s\n", token)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("224SOLUTIONS Sync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
