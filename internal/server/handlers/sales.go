package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/internal/validation"
	"github.com/224solutions/offline-sync/pkg/api"
)

// SalesHandler handles the single-sale online fast path
type SalesHandler struct {
	logger  *slog.Logger
	storage EventStore
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(logger *slog.Logger, storage EventStore) *SalesHandler {
	return &SalesHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleSale обрабатывает POST /api/sales
// Быстрый онлайн-путь: одна продажа одним запросом. Событие хранится
// в том же журнале, что и батчи, под тем же client_event_id, поэтому
// откат клиента на офлайн-очередь не создаёт дубликата.
func (h *SalesHandler) HandleSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	vendorID, ok := GetVendorID(ctx)
	if !ok {
		h.logger.Error("Vendor ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode sale request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.VendorID != vendorID {
		h.logger.Warn("Sale vendor_id mismatch",
			"expected", vendorID,
			"got", req.VendorID)
		http.Error(w, "vendor_id mismatch", http.StatusForbidden)
		return
	}
	if req.ClientEventID == "" {
		http.Error(w, "client_event_id is required", http.StatusBadRequest)
		return
	}

	sale, err := saleFromRequest(req)
	if err != nil {
		h.logger.Warn("Invalid sale request",
			"client_event_id", req.ClientEventID,
			"error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := models.MarshalPayload(sale)
	if err != nil {
		h.logger.Warn("Invalid sale payload",
			"client_event_id", req.ClientEventID,
			"error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.storage.SaveEvent(ctx, &models.StoredEvent{
		CreatedAt:     req.SoldAt,
		ReceivedAt:    time.Now(),
		ClientEventID: req.ClientEventID,
		Type:          models.EventTypeSale,
		VendorID:      vendorID,
		Payload:       payload,
	})
	if err != nil {
		h.logger.Error("Failed to save sale",
			"error", err,
			"client_event_id", req.ClientEventID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Sale recorded",
		"vendor_id", vendorID,
		"client_event_id", req.ClientEventID,
		"duplicate", !created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.SaleResponse{
		Success:   true,
		Duplicate: !created,
	}); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// saleFromRequest собирает типизированный payload из wire-формата
func saleFromRequest(req api.SaleRequest) (*models.SalePayload, error) {
	if err := validation.ValidatePaymentMethod(req.PaymentMethod); err != nil {
		return nil, err
	}
	if err := validation.ValidateCurrency(req.Currency); err != nil {
		return nil, err
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, err
	}

	return &models.SalePayload{
		SoldAt:        req.SoldAt,
		ProductID:     req.ProductID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		Currency:      req.Currency,
		UnitPrice:     unitPrice,
		Amount:        amount,
		Quantity:      req.Quantity,
	}, nil
}
