package models

import "time"

// Session представляет сохранённую локально сессию продавца.
// Bearer token подставляется в каждый запрос к серверу синхронизации.
type Session struct {
	ExpiresAt   time.Time `json:"expires_at"`
	VendorID    string    `json:"vendor_id"`
	AccessToken string    `json:"access_token"`
}

// IsExpired возвращает true, если срок действия токена истёк
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
