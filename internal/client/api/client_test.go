package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/224solutions/offline-sync/internal/checksum"
	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_SyncBatch проверяет успешную пакетную синхронизацию
func TestClient_SyncBatch(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/sync/batch", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var req api.BatchSyncRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		require.Len(t, req.Events, 2)
		assert.Equal(t, "evt-1", req.Events[0].ClientEventID)

		resp := api.BatchSyncResponse{
			Success:  true,
			Accepted: 2,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx := context.Background()
	req := api.BatchSyncRequest{
		Events: []api.Event{
			{ClientEventID: "evt-1", Type: "sale", VendorID: "vendor-001", Payload: []byte(`{}`)},
			{ClientEventID: "evt-2", Type: "receipt", VendorID: "vendor-001", Payload: []byte(`{}`)},
		},
	}

	resp, err := client.SyncBatch(ctx, "token-abc", req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Accepted)
}

// TestClient_SyncBatch_ServerError проверяет обработку ошибки сервера
func TestClient_SyncBatch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "database unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.SyncBatch(context.Background(), "token", api.BatchSyncRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

// TestClient_SyncBatch_ApplicationFailure проверяет ответ success=false
func TestClient_SyncBatch_ApplicationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.BatchSyncResponse{
			Success: false,
			Error:   "server error",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.SyncBatch(context.Background(), "token", api.BatchSyncRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "server error", resp.Error)
}

// TestClient_UploadFile проверяет multipart загрузку файла
func TestClient_UploadFile(t *testing.T) {
	data := []byte("receipt photo bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/sync/upload", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		err := r.ParseMultipartForm(1 << 20)
		require.NoError(t, err)

		assert.Equal(t, "evt-1", r.FormValue("event_id"))
		assert.Equal(t, "file-1", r.FormValue("file_id"))
		assert.Equal(t, checksum.Sum(data), r.FormValue("checksum"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.jpg", header.Filename)

		_ = json.NewEncoder(w).Encode(api.UploadResponse{Success: true, FileID: "file-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.UploadFile(context.Background(), "token-abc", &models.OfflineFile{
		ID:          "file-1",
		EventID:     "evt-1",
		Name:        "photo.jpg",
		ContentType: "image/jpeg",
		Size:        int64(len(data)),
		Checksum:    checksum.Sum(data),
		Data:        data,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "file-1", resp.FileID)
}

// TestClient_RecordSale проверяет быстрый онлайн-путь продажи
func TestClient_RecordSale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sales", r.URL.Path)

		var req api.SaleRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "evt-1", req.ClientEventID)

		_ = json.NewEncoder(w).Encode(api.SaleResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.RecordSale(context.Background(), "token", api.SaleRequest{
		ClientEventID: "evt-1",
		VendorID:      "vendor-001",
		ProductID:     "prod-1",
		Quantity:      1,
		UnitPrice:     "1000",
		Amount:        "1000",
		Currency:      "GNF",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

// TestClient_Health проверяет health check
func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.Health(context.Background()))

	server.Close()
	assert.Error(t, client.Health(context.Background()))
}
