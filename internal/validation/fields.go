package validation

import (
	"fmt"
	"regexp"
)

// VendorIDPattern определяет допустимый формат vendor id
// Только латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 3-64 символа
var VendorIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

const (
	// MinVendorIDLen минимальная длина vendor id
	MinVendorIDLen = 3
	// MaxVendorIDLen максимальная длина vendor id
	MaxVendorIDLen = 64
)

// PaymentMethods допустимые способы оплаты в терминале продавца
var PaymentMethods = map[string]bool{
	"cash":          true,
	"card":          true,
	"mobile_money":  true,
	"wallet":        true,
	"bank_transfer": true,
}

// CurrencyPattern трёхбуквенный код валюты (ISO 4217)
var CurrencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateVendorID проверяет, что vendor id соответствует требованиям
func ValidateVendorID(vendorID string) error {
	if vendorID == "" {
		return fmt.Errorf("vendor id cannot be empty")
	}

	if len(vendorID) < MinVendorIDLen {
		return fmt.Errorf("vendor id must be at least %d characters long", MinVendorIDLen)
	}

	if len(vendorID) > MaxVendorIDLen {
		return fmt.Errorf("vendor id must not exceed %d characters", MaxVendorIDLen)
	}

	if !VendorIDPattern.MatchString(vendorID) {
		return fmt.Errorf("vendor id can only contain letters (a-z, A-Z), numbers (0-9), hyphens (-), and underscores (_)")
	}

	return nil
}

// ValidatePaymentMethod проверяет, что способ оплаты входит в список допустимых
func ValidatePaymentMethod(method string) error {
	if method == "" {
		return fmt.Errorf("payment method cannot be empty")
	}

	if !PaymentMethods[method] {
		return fmt.Errorf("unsupported payment method: %s", method)
	}

	return nil
}

// ValidateCurrency проверяет трёхбуквенный код валюты
func ValidateCurrency(currency string) error {
	if currency == "" {
		return fmt.Errorf("currency cannot be empty")
	}

	if !CurrencyPattern.MatchString(currency) {
		return fmt.Errorf("currency must be a 3-letter uppercase code, got %q", currency)
	}

	return nil
}
