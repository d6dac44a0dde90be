package recorder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/224solutions/offline-sync/internal/checksum"
	clientapi "github.com/224solutions/offline-sync/internal/client/api"
	"github.com/224solutions/offline-sync/internal/client/notify"
	"github.com/224solutions/offline-sync/internal/client/storage"
	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *models.Session {
	return &models.Session{
		VendorID:    "vendor-1",
		AccessToken: "test-token",
	}
}

func testSale() *models.SalePayload {
	return &models.SalePayload{
		ProductID:     "prod-1",
		ProductName:   "Sac de riz",
		PaymentMethod: "cash",
		Currency:      "GNF",
		UnitPrice:     decimal.NewFromInt(500000),
		Quantity:      5,
	}
}

type serviceMocks struct {
	events   *storage.EventStorageMock
	files    *storage.FileStorageMock
	metadata *storage.MetadataStorageMock
	client   *clientapi.ClientAPIMock
	notifier *notify.Memory
}

func newTestService(online bool) (*Service, *serviceMocks, *int) {
	m := &serviceMocks{
		events: &storage.EventStorageMock{
			SaveEventFunc: func(ctx context.Context, event *models.OfflineEvent) error {
				return nil
			},
		},
		files: &storage.FileStorageMock{
			SaveFileFunc: func(ctx context.Context, file *models.OfflineFile) error {
				return nil
			},
		},
		metadata: &storage.MetadataStorageMock{
			GetSessionFunc: func(ctx context.Context) (*models.Session, error) {
				return testSession(), nil
			},
		},
		client:   &clientapi.ClientAPIMock{},
		notifier: notify.NewMemory(),
	}

	syncRequests := 0
	svc := NewService(Config{
		Events:      m.events,
		Files:       m.files,
		Metadata:    m.metadata,
		Client:      m.client,
		Notifier:    m.notifier,
		Logger:      testLogger(),
		Online:      func() bool { return online },
		RequestSync: func() { syncRequests++ },
	})

	return svc, m, &syncRequests
}

func TestService_RecordSaleOffline(t *testing.T) {
	svc, m, syncRequests := newTestService(false)

	result, err := svc.RecordSale(context.Background(), testSale())
	require.NoError(t, err)
	assert.NotEmpty(t, result.ClientEventID)
	assert.False(t, result.Synced)

	// Офлайн: быстрый путь не пробуем, событие в очереди.
	assert.Empty(t, m.client.RecordSaleCalls())
	require.Len(t, m.events.SaveEventCalls(), 1)

	saved := m.events.SaveEventCalls()[0].Event
	assert.Equal(t, result.ClientEventID, saved.ClientEventID)
	assert.Equal(t, models.EventTypeSale, saved.Type)
	assert.Equal(t, models.StatusPending, saved.Status)
	assert.Equal(t, "vendor-1", saved.VendorID)

	payload, err := models.UnmarshalPayload(saved.Type, saved.Payload)
	require.NoError(t, err)
	sale := payload.(*models.SalePayload)
	assert.True(t, sale.Amount.Equal(decimal.NewFromInt(2500000)))

	assert.Equal(t, 1, *syncRequests)
	require.Len(t, m.notifier.ByLevel("info"), 1)
	assert.Equal(t, "Vente enregistrée hors ligne", m.notifier.ByLevel("info")[0].Title)
}

func TestService_RecordSaleFastPath(t *testing.T) {
	svc, m, syncRequests := newTestService(true)
	m.client.RecordSaleFunc = func(ctx context.Context, accessToken string, req api.SaleRequest) (*api.SaleResponse, error) {
		return &api.SaleResponse{Success: true}, nil
	}

	result, err := svc.RecordSale(context.Background(), testSale())
	require.NoError(t, err)
	assert.True(t, result.Synced)

	// Быстрый путь: локальная очередь не трогается.
	assert.Empty(t, m.events.SaveEventCalls())
	assert.Equal(t, 0, *syncRequests)

	require.Len(t, m.client.RecordSaleCalls(), 1)
	call := m.client.RecordSaleCalls()[0]
	assert.Equal(t, "test-token", call.AccessToken)
	assert.Equal(t, result.ClientEventID, call.Req.ClientEventID)
	assert.Equal(t, "vendor-1", call.Req.VendorID)
	assert.Equal(t, "2500000", call.Req.Amount)
	assert.Equal(t, "500000", call.Req.UnitPrice)

	require.Len(t, m.notifier.ByLevel("success"), 1)
}

func TestService_RecordSaleFastPathDuplicate(t *testing.T) {
	svc, m, _ := newTestService(true)
	m.client.RecordSaleFunc = func(ctx context.Context, accessToken string, req api.SaleRequest) (*api.SaleResponse, error) {
		return &api.SaleResponse{Duplicate: true}, nil
	}

	result, err := svc.RecordSale(context.Background(), testSale())
	require.NoError(t, err)

	// Дубликат значит сервер уже видел событие: это успех.
	assert.True(t, result.Synced)
	assert.Empty(t, m.events.SaveEventCalls())
}

func TestService_RecordSaleFastPathFallback(t *testing.T) {
	svc, m, syncRequests := newTestService(true)
	m.client.RecordSaleFunc = func(ctx context.Context, accessToken string, req api.SaleRequest) (*api.SaleResponse, error) {
		return nil, errors.New("connection reset")
	}

	result, err := svc.RecordSale(context.Background(), testSale())
	require.NoError(t, err)
	assert.False(t, result.Synced)

	// При ошибке сервера событие падает в очередь с тем же id,
	// что ушел в быстрый путь.
	require.Len(t, m.client.RecordSaleCalls(), 1)
	require.Len(t, m.events.SaveEventCalls(), 1)
	assert.Equal(t,
		m.client.RecordSaleCalls()[0].Req.ClientEventID,
		m.events.SaveEventCalls()[0].Event.ClientEventID)
	assert.Equal(t, 1, *syncRequests)
}

func TestService_RecordSaleInvalid(t *testing.T) {
	tests := []struct {
		mutate  func(s *models.SalePayload)
		name    string
		wantErr string
	}{
		{
			name:    "zero quantity",
			mutate:  func(s *models.SalePayload) { s.Quantity = 0 },
			wantErr: "quantity must be positive",
		},
		{
			name:    "negative price",
			mutate:  func(s *models.SalePayload) { s.UnitPrice = decimal.NewFromInt(-10) },
			wantErr: "unit price must be positive",
		},
		{
			name:    "unknown payment method",
			mutate:  func(s *models.SalePayload) { s.PaymentMethod = "crypto" },
			wantErr: "unsupported payment method",
		},
		{
			name:    "bad currency",
			mutate:  func(s *models.SalePayload) { s.Currency = "gnf" },
			wantErr: "currency must be a 3-letter uppercase code",
		},
		{
			name:    "missing product",
			mutate:  func(s *models.SalePayload) { s.ProductID = "" },
			wantErr: "product id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, _ := newTestService(false)

			sale := testSale()
			tt.mutate(sale)

			_, err := svc.RecordSale(context.Background(), sale)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			// Невалидное событие не должно попасть в хранилище.
			assert.Empty(t, m.events.SaveEventCalls())
		})
	}
}

func TestService_RecordSaleNotLoggedIn(t *testing.T) {
	svc, m, _ := newTestService(false)
	m.metadata.GetSessionFunc = func(ctx context.Context) (*models.Session, error) {
		return nil, storage.ErrSessionNotFound
	}

	_, err := svc.RecordSale(context.Background(), testSale())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, m.events.SaveEventCalls())
}

func TestService_RecordReceipt(t *testing.T) {
	svc, m, syncRequests := newTestService(false)

	result, err := svc.RecordReceipt(context.Background(), &models.ReceiptPayload{
		ReceiptNumber: "R-001",
		Currency:      "GNF",
		Amount:        decimal.NewFromInt(150000),
	})
	require.NoError(t, err)
	assert.False(t, result.Synced)

	require.Len(t, m.events.SaveEventCalls(), 1)
	saved := m.events.SaveEventCalls()[0].Event
	assert.Equal(t, models.EventTypeReceipt, saved.Type)
	assert.Equal(t, models.StatusPending, saved.Status)
	assert.Equal(t, 1, *syncRequests)
}

func TestService_RecordPaymentInvalidMethod(t *testing.T) {
	svc, _, _ := newTestService(false)

	_, err := svc.RecordPayment(context.Background(), &models.PaymentPayload{
		Reference:     "P-001",
		PaymentMethod: "barter",
		Currency:      "GNF",
		Amount:        decimal.NewFromInt(1000),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported payment method")
}

func TestService_RecordInvoice(t *testing.T) {
	svc, m, _ := newTestService(false)

	now := time.Now()
	_, err := svc.RecordInvoice(context.Background(), &models.InvoicePayload{
		IssuedAt:      now,
		DueAt:         now.Add(14 * 24 * time.Hour),
		InvoiceNumber: "INV-001",
		CustomerName:  "Mamadou Diallo",
		Currency:      "GNF",
		Amount:        decimal.NewFromInt(750000),
	})
	require.NoError(t, err)
	require.Len(t, m.events.SaveEventCalls(), 1)
	assert.Equal(t, models.EventTypeInvoice, m.events.SaveEventCalls()[0].Event.Type)
}

func TestService_UploadFile(t *testing.T) {
	svc, m, syncRequests := newTestService(true)

	data := []byte("facture pdf contents")
	result, err := svc.UploadFile(context.Background(), "facture.pdf", "application/pdf", data)
	require.NoError(t, err)

	// Для файлов быстрого пути нет даже онлайн.
	assert.False(t, result.Synced)
	assert.Empty(t, m.client.UploadFileCalls())

	require.Len(t, m.events.SaveEventCalls(), 1)
	event := m.events.SaveEventCalls()[0].Event
	assert.Equal(t, models.EventTypeUpload, event.Type)

	require.Len(t, m.files.SaveFileCalls(), 1)
	file := m.files.SaveFileCalls()[0].File
	assert.Equal(t, event.ClientEventID, file.EventID)
	assert.Equal(t, checksum.Sum(data), file.Checksum)
	assert.Equal(t, int64(len(data)), file.Size)

	payload, err := models.UnmarshalPayload(event.Type, event.Payload)
	require.NoError(t, err)
	upload := payload.(*models.UploadPayload)
	assert.Equal(t, file.ID, upload.FileID)
	assert.Equal(t, file.Checksum, upload.Checksum)

	assert.Equal(t, 1, *syncRequests)
}

func TestService_UploadFileEmpty(t *testing.T) {
	svc, m, _ := newTestService(false)

	_, err := svc.UploadFile(context.Background(), "empty.bin", "application/octet-stream", nil)
	require.Error(t, err)
	assert.Empty(t, m.events.SaveEventCalls())
	assert.Empty(t, m.files.SaveFileCalls())
}

func TestService_PendingSales(t *testing.T) {
	svc, m, _ := newTestService(false)

	sale1 := testSale()
	sale1.ComputeAmount()
	data1, err := models.MarshalPayload(sale1)
	require.NoError(t, err)

	sale2 := testSale()
	sale2.Quantity = 2
	sale2.ComputeAmount()
	data2, err := models.MarshalPayload(sale2)
	require.NoError(t, err)

	m.events.GetEventsByTypeFunc = func(ctx context.Context, eventType string) ([]*models.OfflineEvent, error) {
		assert.Equal(t, models.EventTypeSale, eventType)
		return []*models.OfflineEvent{
			{ClientEventID: "id-1", Type: models.EventTypeSale, Status: models.StatusPending, Payload: data1},
			{ClientEventID: "id-2", Type: models.EventTypeSale, Status: models.StatusFailed, Payload: data2},
		}, nil
	}

	sales, err := svc.PendingSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "id-1", sales[0].ClientEventID)
	assert.Equal(t, models.StatusFailed, sales[1].Status)

	total, err := svc.PendingSalesTotal(context.Background())
	require.NoError(t, err)
	// 5*500000 + 2*500000
	assert.True(t, total.Equal(decimal.NewFromInt(3500000)), "got %s", total)
}

func TestService_PendingSalesSkipsCorrupt(t *testing.T) {
	svc, m, _ := newTestService(false)

	sale := testSale()
	sale.ComputeAmount()
	data, err := models.MarshalPayload(sale)
	require.NoError(t, err)

	m.events.GetEventsByTypeFunc = func(ctx context.Context, eventType string) ([]*models.OfflineEvent, error) {
		return []*models.OfflineEvent{
			{ClientEventID: "id-1", Type: models.EventTypeSale, Status: models.StatusPending, Payload: []byte("{broken")},
			{ClientEventID: "id-2", Type: models.EventTypeSale, Status: models.StatusPending, Payload: data},
		}, nil
	}

	sales, err := svc.PendingSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "id-2", sales[0].ClientEventID)
}

func TestService_Stats(t *testing.T) {
	svc, m, _ := newTestService(false)
	m.events.EventStatsFunc = func(ctx context.Context) (*models.SyncStats, error) {
		return &models.SyncStats{Total: 7, Pending: 3, Synced: 2, Failed: 1, Abandoned: 1}, nil
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 7, stats.Total)
}
