package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payload validation errors
var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrEmptyPayload     = errors.New("empty payload")
)

// Payload определяет общий контракт типизированных полезных нагрузок.
// Каждый тип события несёт собственную схему и валидируется при записи,
// а не при отклонении сервером.
type Payload interface {
	// EventType возвращает тип события, которому принадлежит payload
	EventType() string
	// Validate проверяет бизнес-инварианты payload
	Validate() error
}

// SalePayload содержит данные продажи
type SalePayload struct {
	SoldAt        time.Time       `json:"sold_at"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Amount        decimal.Decimal `json:"amount"`
	Quantity      int64           `json:"quantity"`
}

func (p *SalePayload) EventType() string { return EventTypeSale }

// Validate проверяет продажу: положительное количество и цена,
// сумма равна quantity * unit_price.
func (p *SalePayload) Validate() error {
	if p.ProductID == "" {
		return errors.New("product id is required")
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", p.Quantity)
	}
	if !p.UnitPrice.IsPositive() {
		return fmt.Errorf("unit price must be positive, got %s", p.UnitPrice)
	}
	expected := p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity))
	if !p.Amount.Equal(expected) {
		return fmt.Errorf("amount %s does not match quantity*unit_price %s", p.Amount, expected)
	}
	if p.PaymentMethod == "" {
		return errors.New("payment method is required")
	}
	return nil
}

// ComputeAmount выставляет Amount из Quantity и UnitPrice
func (p *SalePayload) ComputeAmount() {
	p.Amount = p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity))
}

// ReceiptPayload содержит данные квитанции
type ReceiptPayload struct {
	IssuedAt      time.Time       `json:"issued_at"`
	ReceiptNumber string          `json:"receipt_number"`
	SaleEventID   string          `json:"sale_event_id,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
}

func (p *ReceiptPayload) EventType() string { return EventTypeReceipt }

func (p *ReceiptPayload) Validate() error {
	if p.ReceiptNumber == "" {
		return errors.New("receipt number is required")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("receipt amount must be positive, got %s", p.Amount)
	}
	return nil
}

// InvoicePayload содержит данные счёта
type InvoicePayload struct {
	IssuedAt      time.Time       `json:"issued_at"`
	DueAt         time.Time       `json:"due_at"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
}

func (p *InvoicePayload) EventType() string { return EventTypeInvoice }

func (p *InvoicePayload) Validate() error {
	if p.InvoiceNumber == "" {
		return errors.New("invoice number is required")
	}
	if p.CustomerName == "" {
		return errors.New("customer name is required")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("invoice amount must be positive, got %s", p.Amount)
	}
	if !p.DueAt.IsZero() && p.DueAt.Before(p.IssuedAt) {
		return errors.New("due date is before issue date")
	}
	return nil
}

// PaymentPayload содержит данные платежа
type PaymentPayload struct {
	PaidAt        time.Time       `json:"paid_at"`
	Reference     string          `json:"reference"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
}

func (p *PaymentPayload) EventType() string { return EventTypePayment }

func (p *PaymentPayload) Validate() error {
	if p.Reference == "" {
		return errors.New("payment reference is required")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("payment amount must be positive, got %s", p.Amount)
	}
	if p.PaymentMethod == "" {
		return errors.New("payment method is required")
	}
	return nil
}

// UploadPayload описывает вложение, загружаемое отдельным запросом.
// Сам файл хранится как OfflineFile и уходит через file sync.
type UploadPayload struct {
	FileID      string `json:"file_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Checksum    string `json:"checksum"`
	Size        int64  `json:"size"`
}

func (p *UploadPayload) EventType() string { return EventTypeUpload }

func (p *UploadPayload) Validate() error {
	if p.FileID == "" {
		return errors.New("file id is required")
	}
	if p.Name == "" {
		return errors.New("file name is required")
	}
	if p.Size <= 0 {
		return fmt.Errorf("file size must be positive, got %d", p.Size)
	}
	return nil
}

// MarshalPayload сериализует типизированный payload в JSON для OfflineEvent
func MarshalPayload(p Payload) (json.RawMessage, error) {
	if p == nil {
		return nil, ErrEmptyPayload
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", p.EventType(), err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return data, nil
}

// UnmarshalPayload десериализует payload события согласно его типу
func UnmarshalPayload(eventType string, data json.RawMessage) (Payload, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	var p Payload
	switch eventType {
	case EventTypeSale:
		p = &SalePayload{}
	case EventTypeReceipt:
		p = &ReceiptPayload{}
	case EventTypeInvoice:
		p = &InvoicePayload{}
	case EventTypePayment:
		p = &PaymentPayload{}
	case EventTypeUpload:
		p = &UploadPayload{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventType, eventType)
	}

	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s payload: %w", eventType, err)
	}

	return p, nil
}
