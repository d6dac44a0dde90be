// Package recorder реализует запись бизнес-событий терминала продавца.
//
// Каждое событие получает client_event_id до любого сетевого вызова.
// Онлайн-продажа пробует быстрый путь одним запросом; при любой ошибке
// событие записывается в локальную очередь с тем же идентификатором,
// так что сервер дедуплицирует повторную доставку.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/224solutions/offline-sync/internal/checksum"
	clientapi "github.com/224solutions/offline-sync/internal/client/api"
	"github.com/224solutions/offline-sync/internal/client/notify"
	"github.com/224solutions/offline-sync/internal/client/storage"
	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/internal/validation"
	"github.com/224solutions/offline-sync/pkg/api"
)

// ErrNotLoggedIn возвращается, когда нет сохранённой сессии продавца
var ErrNotLoggedIn = errors.New("not logged in")

// RecordResult описывает исход записи события
type RecordResult struct {
	// ClientEventID - идентификатор идемпотентности события
	ClientEventID string
	// Synced - true, если событие ушло по быстрому онлайн-пути
	// и не попало в локальную очередь
	Synced bool
}

// PendingSale представляет одну несинхронизированную продажу.
// Список выводится из локального хранилища при каждом запросе
// и нигде не дублируется.
type PendingSale struct {
	CreatedAt     time.Time
	ClientEventID string
	Status        models.EventStatus
	Sale          *models.SalePayload
}

// Config содержит зависимости сервиса записи
type Config struct {
	Events   storage.EventStorage
	Files    storage.FileStorage
	Metadata storage.MetadataStorage
	Client   clientapi.ClientAPI
	Notifier notify.Notifier
	Logger   *slog.Logger

	// Online сообщает текущее состояние подключения
	Online func() bool
	// RequestSync запрашивает внеочередной проход синхронизации
	// после записи нового события
	RequestSync func()
}

// Service представляет сервис записи офлайн-событий
type Service struct {
	events   storage.EventStorage
	files    storage.FileStorage
	metadata storage.MetadataStorage
	client   clientapi.ClientAPI
	notifier notify.Notifier
	logger   *slog.Logger

	online      func() bool
	requestSync func()
	now         func() time.Time
}

// NewService создает сервис записи
func NewService(cfg Config) *Service {
	s := &Service{
		events:      cfg.Events,
		files:       cfg.Files,
		metadata:    cfg.Metadata,
		client:      cfg.Client,
		notifier:    cfg.Notifier,
		logger:      cfg.Logger,
		online:      cfg.Online,
		requestSync: cfg.RequestSync,
		now:         time.Now,
	}
	if s.notifier == nil {
		s.notifier = notify.NewNop()
	}
	if s.online == nil {
		s.online = func() bool { return false }
	}
	if s.requestSync == nil {
		s.requestSync = func() {}
	}
	return s
}

// RecordSale записывает продажу. Онлайн - пробует быстрый путь;
// офлайн или при ошибке сервера - сохраняет событие локально.
func (s *Service) RecordSale(ctx context.Context, sale *models.SalePayload) (*RecordResult, error) {
	if sale == nil {
		return nil, models.ErrEmptyPayload
	}
	if sale.SoldAt.IsZero() {
		sale.SoldAt = s.now()
	}
	if sale.Amount.IsZero() {
		sale.ComputeAmount()
	}
	if err := validation.ValidatePaymentMethod(sale.PaymentMethod); err != nil {
		return nil, err
	}
	if err := validation.ValidateCurrency(sale.Currency); err != nil {
		return nil, err
	}

	payload, err := models.MarshalPayload(sale)
	if err != nil {
		return nil, err
	}

	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	clientEventID := uuid.New().String()

	if s.online() && s.trySaleFastPath(ctx, session, clientEventID, sale) {
		s.notifier.Success("Vente synchronisée", "enregistrée directement sur le serveur")
		return &RecordResult{ClientEventID: clientEventID, Synced: true}, nil
	}

	event := s.newEvent(clientEventID, session.VendorID, models.EventTypeSale, payload)
	if err := s.events.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to save sale event: %w", err)
	}

	s.notifier.Info("Vente enregistrée hors ligne", "synchronisation automatique dès la connexion")
	s.requestSync()

	return &RecordResult{ClientEventID: clientEventID}, nil
}

// trySaleFastPath отправляет продажу одним запросом.
// Ответ duplicate тоже считается успехом: событие уже у сервера.
func (s *Service) trySaleFastPath(ctx context.Context, session *models.Session, clientEventID string, sale *models.SalePayload) bool {
	req := api.SaleRequest{
		SoldAt:        sale.SoldAt,
		ClientEventID: clientEventID,
		VendorID:      session.VendorID,
		ProductID:     sale.ProductID,
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		PaymentMethod: sale.PaymentMethod,
		UnitPrice:     sale.UnitPrice.String(),
		Amount:        sale.Amount.String(),
		Currency:      sale.Currency,
		Quantity:      sale.Quantity,
	}

	resp, err := s.client.RecordSale(ctx, session.AccessToken, req)
	if err != nil {
		s.logger.Warn("sale fast path failed, falling back to offline queue",
			slog.String("client_event_id", clientEventID),
			slog.String("error", err.Error()))
		return false
	}

	return resp.Success || resp.Duplicate
}

// RecordReceipt записывает квитанцию в локальную очередь
func (s *Service) RecordReceipt(ctx context.Context, receipt *models.ReceiptPayload) (*RecordResult, error) {
	if receipt == nil {
		return nil, models.ErrEmptyPayload
	}
	if receipt.IssuedAt.IsZero() {
		receipt.IssuedAt = s.now()
	}
	if err := validation.ValidateCurrency(receipt.Currency); err != nil {
		return nil, err
	}
	return s.recordOffline(ctx, receipt, "Reçu enregistré")
}

// RecordInvoice записывает счёт в локальную очередь
func (s *Service) RecordInvoice(ctx context.Context, invoice *models.InvoicePayload) (*RecordResult, error) {
	if invoice == nil {
		return nil, models.ErrEmptyPayload
	}
	if invoice.IssuedAt.IsZero() {
		invoice.IssuedAt = s.now()
	}
	if err := validation.ValidateCurrency(invoice.Currency); err != nil {
		return nil, err
	}
	return s.recordOffline(ctx, invoice, "Facture enregistrée")
}

// RecordPayment записывает платёж в локальную очередь
func (s *Service) RecordPayment(ctx context.Context, payment *models.PaymentPayload) (*RecordResult, error) {
	if payment == nil {
		return nil, models.ErrEmptyPayload
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = s.now()
	}
	if err := validation.ValidatePaymentMethod(payment.PaymentMethod); err != nil {
		return nil, err
	}
	if err := validation.ValidateCurrency(payment.Currency); err != nil {
		return nil, err
	}
	return s.recordOffline(ctx, payment, "Paiement enregistré")
}

// UploadFile сохраняет вложение и событие-владельца.
// Сам файл уходит на сервер только после подтверждения события,
// поэтому быстрого пути здесь нет.
func (s *Service) UploadFile(ctx context.Context, name, contentType string, data []byte) (*RecordResult, error) {
	if name == "" {
		return nil, errors.New("file name is required")
	}
	if len(data) == 0 {
		return nil, errors.New("file is empty")
	}

	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	clientEventID := uuid.New().String()
	fileID := uuid.New().String()
	sum := checksum.Sum(data)

	payload, err := models.MarshalPayload(&models.UploadPayload{
		FileID:      fileID,
		Name:        name,
		ContentType: contentType,
		Checksum:    sum,
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, err
	}

	event := s.newEvent(clientEventID, session.VendorID, models.EventTypeUpload, payload)
	if err := s.events.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to save upload event: %w", err)
	}

	file := &models.OfflineFile{
		CreatedAt:   s.now(),
		ID:          fileID,
		EventID:     clientEventID,
		Name:        name,
		ContentType: contentType,
		Checksum:    sum,
		Data:        data,
		Size:        int64(len(data)),
	}
	if err := s.files.SaveFile(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	s.notifier.Info("Fichier enregistré", "envoi après synchronisation de l'événement")
	s.requestSync()

	return &RecordResult{ClientEventID: clientEventID}, nil
}

// PendingSales возвращает несинхронизированные продажи.
// Список пересчитывается из хранилища при каждом вызове.
func (s *Service) PendingSales(ctx context.Context) ([]PendingSale, error) {
	events, err := s.events.GetEventsByType(ctx, models.EventTypeSale)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending sales: %w", err)
	}

	sales := make([]PendingSale, 0, len(events))
	for _, event := range events {
		payload, err := models.UnmarshalPayload(event.Type, event.Payload)
		if err != nil {
			s.logger.Warn("skipping sale with unreadable payload",
				slog.String("client_event_id", event.ClientEventID),
				slog.String("error", err.Error()))
			continue
		}
		sale, ok := payload.(*models.SalePayload)
		if !ok {
			continue
		}
		sales = append(sales, PendingSale{
			CreatedAt:     event.CreatedAt,
			ClientEventID: event.ClientEventID,
			Status:        event.Status,
			Sale:          sale,
		})
	}

	return sales, nil
}

// PendingSalesTotal возвращает сумму несинхронизированных продаж
func (s *Service) PendingSalesTotal(ctx context.Context) (decimal.Decimal, error) {
	sales, err := s.PendingSales(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Sale.Amount)
	}

	return total, nil
}

// History возвращает все события в порядке записи
func (s *Service) History(ctx context.Context) ([]*models.OfflineEvent, error) {
	events, err := s.events.GetAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event history: %w", err)
	}
	return events, nil
}

// Stats пересчитывает счётчики очереди
func (s *Service) Stats(ctx context.Context) (*models.SyncStats, error) {
	stats, err := s.events.EventStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event stats: %w", err)
	}
	return stats, nil
}

func (s *Service) recordOffline(ctx context.Context, payload models.Payload, title string) (*RecordResult, error) {
	data, err := models.MarshalPayload(payload)
	if err != nil {
		return nil, err
	}

	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	clientEventID := uuid.New().String()
	event := s.newEvent(clientEventID, session.VendorID, payload.EventType(), data)
	if err := s.events.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to save %s event: %w", payload.EventType(), err)
	}

	s.notifier.Info(title, "synchronisation automatique dès la connexion")
	s.requestSync()

	return &RecordResult{ClientEventID: clientEventID}, nil
}

func (s *Service) newEvent(clientEventID, vendorID, eventType string, payload []byte) *models.OfflineEvent {
	now := s.now()
	return &models.OfflineEvent{
		CreatedAt:     now,
		UpdatedAt:     now,
		ClientEventID: clientEventID,
		Type:          eventType,
		VendorID:      vendorID,
		Status:        models.StatusPending,
		Payload:       payload,
	}
}

func (s *Service) session(ctx context.Context) (*models.Session, error) {
	session, err := s.metadata.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}
