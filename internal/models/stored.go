package models

import (
	"encoding/json"
	"time"
)

// StoredEvent представляет событие, принятое и сохранённое сервером.
// client_event_id уникален: повторная доставка того же события
// распознаётся как дубликат и не создаёт новой записи.
type StoredEvent struct {
	CreatedAt     time.Time       `json:"created_at"`
	ReceivedAt    time.Time       `json:"received_at"`
	ClientEventID string          `json:"client_event_id"`
	Type          string          `json:"type"`
	VendorID      string          `json:"vendor_id"`
	Payload       json.RawMessage `json:"payload"`
}

// StoredFile представляет файловое вложение, принятое сервером
type StoredFile struct {
	ReceivedAt  time.Time `json:"received_at"`
	FileID      string    `json:"file_id"`
	EventID     string    `json:"event_id"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Checksum    string    `json:"checksum"`
	Data        []byte    `json:"-"`
	Size        int64     `json:"size"`
}
