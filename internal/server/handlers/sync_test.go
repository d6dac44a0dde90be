package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/internal/server/storage/sqlite"
	"github.com/224solutions/offline-sync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

// withVendor подставляет vendor_id так, как это делает AuthMiddleware
func withVendor(r *http.Request, vendorID string) *http.Request {
	ctx := context.WithValue(r.Context(), VendorIDKey, vendorID)
	return r.WithContext(ctx)
}

func testSaleEvent(t *testing.T, clientEventID, vendorID string) api.Event {
	t.Helper()

	payload, err := models.MarshalPayload(&models.SalePayload{
		SoldAt:        time.Now(),
		ProductID:     "prod-1",
		PaymentMethod: "cash",
		Currency:      "GNF",
		UnitPrice:     decimal.NewFromInt(1000),
		Amount:        decimal.NewFromInt(3000),
		Quantity:      3,
	})
	require.NoError(t, err)

	return api.Event{
		CreatedAt:     time.Now(),
		ClientEventID: clientEventID,
		Type:          models.EventTypeSale,
		VendorID:      vendorID,
		Payload:       payload,
	}
}

func doBatchSync(t *testing.T, h *SyncHandler, vendorID string, req api.BatchSyncRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/sync/batch", bytes.NewReader(body))
	r = withVendor(r, vendorID)
	w := httptest.NewRecorder()

	h.HandleBatchSync(w, r)
	return w
}

func TestSyncHandler_BatchAccepted(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	req := api.BatchSyncRequest{Events: []api.Event{
		testSaleEvent(t, "event-1", "vendor-1"),
		testSaleEvent(t, "event-2", "vendor-1"),
	}}

	w := doBatchSync(t, h, "vendor-1", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.BatchSyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Accepted)
	assert.Equal(t, 0, resp.Duplicates)

	stored, err := s.GetEvent(context.Background(), "event-1")
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", stored.VendorID)
}

func TestSyncHandler_BatchIdempotent(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	req := api.BatchSyncRequest{Events: []api.Event{
		testSaleEvent(t, "event-1", "vendor-1"),
	}}

	w := doBatchSync(t, h, "vendor-1", req)
	require.Equal(t, http.StatusOK, w.Code)

	// Повторная доставка того же батча: дубликаты, но success.
	w = doBatchSync(t, h, "vendor-1", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.BatchSyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Accepted)
	assert.Equal(t, 1, resp.Duplicates)

	count, err := s.CountVendorEvents(context.Background(), "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSyncHandler_BatchInvalidPayloadRejectsWholeBatch(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	bad := testSaleEvent(t, "event-bad", "vendor-1")
	bad.Payload = []byte(`{"product_id":"","quantity":0}`)

	req := api.BatchSyncRequest{Events: []api.Event{
		testSaleEvent(t, "event-good", "vendor-1"),
		bad,
	}}

	w := doBatchSync(t, h, "vendor-1", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.BatchSyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "event-bad")

	// Ни одно событие батча не принято, даже валидное.
	count, err := s.CountVendorEvents(context.Background(), "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSyncHandler_BatchUnknownEventType(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	bad := testSaleEvent(t, "event-1", "vendor-1")
	bad.Type = "refund"

	w := doBatchSync(t, h, "vendor-1", api.BatchSyncRequest{Events: []api.Event{bad}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.BatchSyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unknown event type")
}

func TestSyncHandler_BatchVendorMismatch(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	req := api.BatchSyncRequest{Events: []api.Event{
		testSaleEvent(t, "event-1", "vendor-2"),
	}}

	w := doBatchSync(t, h, "vendor-1", req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSyncHandler_BatchEmpty(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	w := doBatchSync(t, h, "vendor-1", api.BatchSyncRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.BatchSyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Accepted)
}

func TestSyncHandler_BatchInvalidJSON(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	r := httptest.NewRequest(http.MethodPost, "/api/sync/batch", bytes.NewReader([]byte("{broken")))
	r = withVendor(r, "vendor-1")
	w := httptest.NewRecorder()

	h.HandleBatchSync(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncHandler_BatchUnauthorized(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	r := httptest.NewRequest(http.MethodPost, "/api/sync/batch", bytes.NewReader([]byte("{}")))
	w := httptest.NewRecorder()

	h.HandleBatchSync(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSyncHandler_BatchMethodNotAllowed(t *testing.T) {
	s := createTestStorage(t)
	h := NewSyncHandler(testLogger(), s)

	r := httptest.NewRequest(http.MethodGet, "/api/sync/batch", nil)
	r = withVendor(r, "vendor-1")
	w := httptest.NewRecorder()

	h.HandleBatchSync(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
