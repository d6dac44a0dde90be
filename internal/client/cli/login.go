package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/224solutions/offline-sync/internal/client/storage"
	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/internal/validation"
)

// RunLogin сохраняет сессию продавца: vendor id и access token.
// Токен выдаётся администратором платформы (команда token на сервере).
func (c *Cli) RunLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	vendorID := fs.String("vendor", "", "Vendor ID")
	token := fs.String("token", "", "Access token issued for this vendor")
	ttl := fs.Duration("ttl", 30*24*time.Hour, "Session lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *vendorID == "" {
		input, err := readInput("Vendor ID: ")
		if err != nil {
			return fmt.Errorf("failed to read vendor id: %w", err)
		}
		*vendorID = input
	}
	if err := validation.ValidateVendorID(*vendorID); err != nil {
		return fmt.Errorf("invalid vendor id: %w", err)
	}

	if *token == "" {
		input, err := readInput("Access token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		*token = input
	}
	if *token == "" {
		return errors.New("access token cannot be empty")
	}

	session := &models.Session{
		ExpiresAt:   time.Now().Add(*ttl),
		VendorID:    *vendorID,
		AccessToken: *token,
	}
	if err := c.metadata.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.printf("Logged in as vendor %s\n", *vendorID)
	c.printf("Session expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	return nil
}

// RunLogout удаляет сохранённую сессию. Локальная очередь событий
// не очищается: несинхронизированные данные остаются на диске.
func (c *Cli) RunLogout(ctx context.Context, args []string) error {
	if err := c.metadata.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.println("No active session")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.println("Logged out")
	return nil
}
