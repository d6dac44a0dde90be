package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/pkg/api"
)

// EventLister определяет интерфейс чтения принятых событий продавца
type EventLister interface {
	// GetVendorEvents возвращает события продавца в порядке приёма
	GetVendorEvents(ctx context.Context, vendorID string) ([]*models.StoredEvent, error)

	// CountVendorEvents возвращает количество событий продавца
	CountVendorEvents(ctx context.Context, vendorID string) (int, error)
}

// EventsHandler отдаёт серверную историю событий продавца
type EventsHandler struct {
	logger  *slog.Logger
	storage EventLister
}

// NewEventsHandler creates a new events history handler
func NewEventsHandler(logger *slog.Logger, storage EventLister) *EventsHandler {
	return &EventsHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleVendorEvents обрабатывает GET /api/sync/events
// Возвращает события аутентифицированного продавца, принятые сервером.
// Терминал сверяет с этим списком свою локальную историю после
// retention-очистки.
func (h *EventsHandler) HandleVendorEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	vendorID, ok := GetVendorID(ctx)
	if !ok {
		h.logger.Error("Vendor ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	events, err := h.storage.GetVendorEvents(ctx, vendorID)
	if err != nil {
		h.logger.Error("Failed to get vendor events", "error", err, "vendor_id", vendorID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	total, err := h.storage.CountVendorEvents(ctx, vendorID)
	if err != nil {
		h.logger.Error("Failed to count vendor events", "error", err, "vendor_id", vendorID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.EventsResponse{
		Events:  make([]api.VendorEvent, 0, len(events)),
		Total:   total,
		Success: true,
	}
	for _, event := range events {
		resp.Events = append(resp.Events, api.VendorEvent{
			CreatedAt:     event.CreatedAt,
			ReceivedAt:    event.ReceivedAt,
			ClientEventID: event.ClientEventID,
			Type:          event.Type,
			Payload:       event.Payload,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
