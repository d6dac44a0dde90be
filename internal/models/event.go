package models

import (
	"encoding/json"
	"time"
)

// EventStatus представляет состояние жизненного цикла офлайн-события
type EventStatus string

const (
	// StatusPending событие записано локально и ещё не отправлено
	StatusPending EventStatus = "pending"
	// StatusSynced событие принято сервером (терминальное состояние)
	StatusSynced EventStatus = "synced"
	// StatusFailed последняя отправка не удалась, событие ждёт повтора
	StatusFailed EventStatus = "failed"
	// StatusAbandoned событие исчерпало лимит повторов (терминальное состояние)
	StatusAbandoned EventStatus = "abandoned"
)

// EventType константы для типов бизнес-событий
const (
	EventTypeSale    = "sale"
	EventTypeReceipt = "receipt"
	EventTypeInvoice = "invoice"
	EventTypePayment = "payment"
	EventTypeUpload  = "upload"
)

// OfflineEvent представляет бизнес-действие, записанное локально
// и ожидающее передачи на сервер.
// ClientEventID генерируется до любого сетевого вызова, поэтому повторные
// отправки идемпотентны с точки зрения сервера.
type OfflineEvent struct {
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	NextAttemptAt time.Time       `json:"next_attempt_at"`
	ClientEventID string          `json:"client_event_id"`
	Type          string          `json:"type"`
	VendorID      string          `json:"vendor_id"`
	Status        EventStatus     `json:"status"`
	LastError     string          `json:"last_error,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	Attempts      int             `json:"attempts"`
}

// IsTerminal возвращает true, если событие больше не будет отправляться
func (e *OfflineEvent) IsTerminal() bool {
	return e.Status == StatusSynced || e.Status == StatusAbandoned
}

// IsDue возвращает true, если событие подлежит отправке на момент now.
// pending события отправляются сразу; failed — после окна backoff.
func (e *OfflineEvent) IsDue(now time.Time) bool {
	switch e.Status {
	case StatusPending:
		return true
	case StatusFailed:
		return !e.NextAttemptAt.After(now)
	default:
		return false
	}
}

// OfflineFile представляет бинарное вложение, привязанное к событию.
// Файл загружается на сервер только после того, как владеющее событие
// было принято сервером.
type OfflineFile struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Checksum    string    `json:"checksum"`
	Data        []byte    `json:"data"`
	Size        int64     `json:"size"`
}

// SyncStats содержит счётчики событий по статусам.
// Пересчитывается из локального хранилища по требованию и нигде не хранится.
type SyncStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Synced    int `json:"synced"`
	Failed    int `json:"failed"`
	Abandoned int `json:"abandoned"`
}
