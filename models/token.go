package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT access token'ın payload'ı.
//
// Server her request'te token imzasını doğrular — DB'ye gitmeden
// isteğin owner'a ait olduğunu bilir. Struct models paketindedir çünkü
// birden fazla katman (services, middleware) tarafından kullanılır;
// models'e bağımlılık circular dependency yaratmaz.
type TokenClaims struct {
	OwnerID  string `json:"owner_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
