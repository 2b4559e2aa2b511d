package models

import "time"

// Session, JWT refresh token oturumunu temsil eder.
//
// Access token kısa ömürlüdür (15dk), refresh token uzun (7 gün).
// Refresh token'ları DB'de tutarak:
//   - Çalınan token iptal edilebilir (revoke)
//   - Logout'ta sadece ilgili oturum silinir
type Session struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	RefreshToken string    `json:"-"` // API'ye gönderilmez
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
