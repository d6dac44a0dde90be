package api

import (
	"encoding/json"
	"time"
)

// Event представляет одно офлайн-событие в wire-формате.
// client_event_id генерируется клиентом до любого сетевого вызова и
// служит ключом идемпотентности на сервере.
type Event struct {
	CreatedAt     time.Time       `json:"created_at"`
	ClientEventID string          `json:"client_event_id"`
	Type          string          `json:"type"`
	VendorID      string          `json:"vendor_id"`
	Payload       json.RawMessage `json:"payload"`
}

// BatchSyncRequest представляет запрос пакетной синхронизации от клиента
type BatchSyncRequest struct {
	Events []Event `json:"events"`
}

// BatchSyncResponse представляет ответ сервера на пакетную синхронизацию.
// Success относится к батчу целиком: при false ни одно событие батча
// не считается принятым.
type BatchSyncResponse struct {
	Error      string `json:"error,omitempty"`
	Accepted   int    `json:"accepted"`
	Duplicates int    `json:"duplicates"`
	Success    bool   `json:"success"`
}

// UploadResponse представляет ответ сервера на загрузку файла
type UploadResponse struct {
	Error   string `json:"error,omitempty"`
	FileID  string `json:"file_id,omitempty"`
	Success bool   `json:"success"`
}

// VendorEvent представляет принятое сервером событие в ответе истории
type VendorEvent struct {
	CreatedAt     time.Time       `json:"created_at"`
	ReceivedAt    time.Time       `json:"received_at"`
	ClientEventID string          `json:"client_event_id"`
	Type          string          `json:"type"`
	Payload       json.RawMessage `json:"payload"`
}

// EventsResponse представляет серверную историю событий продавца
type EventsResponse struct {
	Events  []VendorEvent `json:"events"`
	Total   int           `json:"total"`
	Success bool          `json:"success"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
