// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware Pattern nedir?
// Her HTTP request, handler'a ulaşmadan önce bir veya daha fazla middleware'dan geçer.
//
// Go'da middleware bir fonksiyondur:
//   func(next http.Handler) http.Handler
//
// "next" parametresi zincirdeki bir sonraki handler'dır.
// Middleware kendi işini yapar (ör: token doğrula), sonra next'i çağırır.
// Eğer hata varsa next'i çağırmaz → request burada durur.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/repository"
	"github.com/akinalp/vitrin/services"
)

// contextKey, context.WithValue için özel tip.
// string yerine özel tip kullanmak, başka paketlerin aynı key ile
// yanlışlıkla çakışmasını önler.
type contextKey string

// OwnerContextKey, auth middleware'ın doğrulanmış sahibi context'e
// koyduğu anahtar.
const OwnerContextKey contextKey = "owner"

// OwnerFromContext, context'ten doğrulanmış sahibi okur.
// Auth middleware'dan geçmemiş isteklerde ok=false döner.
func OwnerFromContext(ctx context.Context) (*models.Owner, bool) {
	owner, ok := ctx.Value(OwnerContextKey).(*models.Owner)
	return owner, ok
}

// AuthMiddleware, JWT token doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
	ownerRepo   repository.OwnerRepository
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService, ownerRepo repository.OwnerRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		ownerRepo:   ownerRepo,
	}
}

// Require, JWT token zorunlu kılan middleware.
// Token yoksa veya geçersizse → 401 Unauthorized.
//
// HTTP header formatı: Authorization: Bearer <token>
//
// Akış:
// 1. "Authorization" header'ını oku
// 2. "Bearer " prefix'ini kaldır → raw token string
// 3. AuthService.ValidateAccessToken() ile doğrula
// 4. Sahibi DB'den getir → context'e ekle → next handler'ı çağır
// 5. Geçersizse → 401 döndür, next ÇAĞIRILMAZ
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid authorization format, use: Bearer <token>")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		// Token geçerli ama hesap silinmiş olabilir — DB'den doğrula.
		owner, err := m.ownerRepo.GetByID(r.Context(), claims.OwnerID)
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "owner not found")
			return
		}

		// Password hash'i temizle — context'te taşınmamalı
		owner.PasswordHash = ""

		ctx := context.WithValue(r.Context(), OwnerContextKey, owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
