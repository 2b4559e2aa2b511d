// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Tüm ayarlar tek bir Config nesnesinde toplanır — her yerde ayrı ayrı
// os.Getenv() çağırmak yerine bu nesne main.go'da bir kez oluşturulup
// ihtiyaç duyan katmanlara constructor üzerinden geçirilir.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Email    EmailConfig
	Site     SiteConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int

	// AllowedOrigins, CORS için izin verilen origin listesi.
	// Virgülle ayrılmış env değeri parse edilir (ör: "http://localhost:3000,https://site.dev").
	AllowedOrigins []string
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/vitrin.db)
}

// JWTConfig, JWT token ayarları.
type JWTConfig struct {
	Secret             string // Token imzalama anahtarı — GİZLİ TUTULMALI
	AccessTokenExpiry  int    // Dakika cinsinden (varsayılan: 15)
	RefreshTokenExpiry int    // Gün cinsinden (varsayılan: 7)
}

// UploadConfig, medya yükleme ayarları.
//
// Resim ve video limitleri ayrıdır: profil/proje görselleri küçük ve optimize
// olmalı (5MB), proje demo videoları daha büyük olabilir (50MB).
type UploadConfig struct {
	Dir          string // Dosyaların kaydedileceği kök dizin
	MaxImageSize int64  // Byte cinsinden max resim boyutu (varsayılan: 5MB)
	MaxVideoSize int64  // Byte cinsinden max video boyutu (varsayılan: 50MB)
}

// EmailConfig, iletişim formu email relay ayarları (Resend API).
type EmailConfig struct {
	ResendAPIKey string // Resend dashboard'dan alınan key (re_xxxx formatında)
	FromEmail    string // Gönderici adresi — Resend'de doğrulanmış domain altında olmalı
	ToEmail      string // İletişim formu mesajlarının iletileceği sabit alıcı (site sahibi)
}

// SiteConfig, public site meta bilgileri.
type SiteConfig struct {
	PublicURL string // Sitenin public URL'i — sitemap.xml üretiminde kullanılır
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	refreshExpiry, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRY_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRY_DAYS: %w", err)
	}

	maxImage, err := strconv.ParseInt(getEnv("UPLOAD_MAX_IMAGE_SIZE", "5242880"), 10, 64) // 5MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_IMAGE_SIZE: %w", err)
	}

	maxVideo, err := strconv.ParseInt(getEnv("UPLOAD_MAX_VIDEO_SIZE", "52428800"), 10, 64) // 50MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_VIDEO_SIZE: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           port,
			AllowedOrigins: origins,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/vitrin.db"),
		},
		JWT: JWTConfig{
			Secret:             jwtSecret,
			AccessTokenExpiry:  accessExpiry,
			RefreshTokenExpiry: refreshExpiry,
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "./data/uploads"),
			MaxImageSize: maxImage,
			MaxVideoSize: maxVideo,
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("RESEND_FROM", ""),
			ToEmail:      getEnv("CONTACT_TO_EMAIL", ""),
		},
		Site: SiteConfig{
			PublicURL: getEnv("SITE_PUBLIC_URL", "http://localhost:9090"),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
