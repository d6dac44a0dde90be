package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// VendorIDKey ключ для хранения vendor_id в контексте
const VendorIDKey contextKey = "vendor_id"

// GetVendorID извлекает vendor_id из контекста запроса
func GetVendorID(ctx context.Context) (string, bool) {
	vendorID, ok := ctx.Value(VendorIDKey).(string)
	return vendorID, ok
}
