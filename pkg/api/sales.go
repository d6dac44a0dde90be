package api

import "time"

// SaleRequest представляет одну продажу для быстрого онлайн-пути.
// Используется только когда клиент уже онлайн; при любой ошибке клиент
// откатывается на офлайн-очередь с тем же client_event_id.
type SaleRequest struct {
	SoldAt        time.Time `json:"sold_at"`
	ClientEventID string    `json:"client_event_id"`
	VendorID      string    `json:"vendor_id"`
	ProductID     string    `json:"product_id"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	UnitPrice     string    `json:"unit_price"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Quantity      int64     `json:"quantity"`
}

// SaleResponse представляет ответ сервера на быструю продажу
type SaleResponse struct {
	Error     string `json:"error,omitempty"`
	Duplicate bool   `json:"duplicate"`
	Success   bool   `json:"success"`
}
