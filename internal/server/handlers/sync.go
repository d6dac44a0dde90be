package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/internal/validation"
	"github.com/224solutions/offline-sync/pkg/api"
)

// EventStore определяет интерфейс для сохранения принятых событий
type EventStore interface {
	// SaveEvent сохраняет событие; false означает дубликат client_event_id
	SaveEvent(ctx context.Context, event *models.StoredEvent) (bool, error)

	// GetEvent возвращает сохранённое событие по client_event_id
	GetEvent(ctx context.Context, clientEventID string) (*models.StoredEvent, error)
}

// SyncHandler handles batch synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	storage EventStore
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage EventStore) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleBatchSync обрабатывает POST /api/sync/batch
// Принимает батч офлайн-событий. Success относится к батчу целиком:
// при любой невалидной записи ни одно событие батча не принимается,
// клиент повторит весь батч после backoff.
func (h *SyncHandler) HandleBatchSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	// vendor_id установлен AuthMiddleware
	vendorID, ok := GetVendorID(ctx)
	if !ok {
		h.logger.Error("Vendor ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.BatchSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode batch sync request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.logger.Info("Batch sync request",
		"vendor_id", vendorID,
		"events_count", len(req.Events))

	// Валидируем весь батч до записи: частично принятый батч клиент
	// не смог бы корректно пометить.
	for i, event := range req.Events {
		if event.VendorID != vendorID {
			h.logger.Warn("Event vendor_id mismatch",
				"expected", vendorID,
				"got", event.VendorID,
				"client_event_id", event.ClientEventID)
			http.Error(w, fmt.Sprintf("Event %d: vendor_id mismatch", i), http.StatusForbidden)
			return
		}

		if err := validateBatchEvent(event); err != nil {
			h.writeBatchResponse(w, api.BatchSyncResponse{
				Success: false,
				Error:   fmt.Sprintf("event %s: %s", event.ClientEventID, err),
			})
			return
		}
	}

	resp := api.BatchSyncResponse{Success: true}
	receivedAt := time.Now()

	for _, event := range req.Events {
		created, err := h.storage.SaveEvent(ctx, &models.StoredEvent{
			CreatedAt:     event.CreatedAt,
			ReceivedAt:    receivedAt,
			ClientEventID: event.ClientEventID,
			Type:          event.Type,
			VendorID:      event.VendorID,
			Payload:       event.Payload,
		})
		if err != nil {
			h.logger.Error("Failed to save event",
				"error", err,
				"client_event_id", event.ClientEventID)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if created {
			resp.Accepted++
		} else {
			resp.Duplicates++
		}
	}

	h.writeBatchResponse(w, resp)

	h.logger.Info("Batch sync completed",
		"vendor_id", vendorID,
		"accepted", resp.Accepted,
		"duplicates", resp.Duplicates)
}

func (h *SyncHandler) writeBatchResponse(w http.ResponseWriter, resp api.BatchSyncResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// validateBatchEvent проверяет одно событие батча: известный тип
// и валидный типизированный payload.
func validateBatchEvent(event api.Event) error {
	if event.ClientEventID == "" {
		return fmt.Errorf("client_event_id is required")
	}
	if err := validation.ValidateVendorID(event.VendorID); err != nil {
		return err
	}

	payload, err := models.UnmarshalPayload(event.Type, event.Payload)
	if err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("invalid %s payload: %w", event.Type, err)
	}

	return nil
}
