// Package main, vitrin backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//   1.  Config'i yükle
//   2.  Database'i başlat (gömülü migration'lar ile)
//   3.  Upload dizinini oluştur
//   4.  Repository'leri oluştur (DB bağlantısı ile)
//   5.  WebSocket Hub'ı başlat
//   6.  Service'leri oluştur (repository'ler + hub ile)
//   7.  Handler'ları oluştur (service'ler ile)
//   8.  Middleware'ları oluştur (service + repo'lar ile)
//   9.  HTTP router'ı kur, route'ları bağla
//  10.  CORS yapılandır
//  11.  HTTP Server'ı başlat
//  12.  Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/akinalp/vitrin/config"
	"github.com/akinalp/vitrin/database"
	"github.com/akinalp/vitrin/handlers"
	"github.com/akinalp/vitrin/middleware"
	"github.com/akinalp/vitrin/pkg/email"
	"github.com/akinalp/vitrin/pkg/ratelimit"
	"github.com/akinalp/vitrin/repository"
	"github.com/akinalp/vitrin/services"
	"github.com/akinalp/vitrin/static"
	"github.com/akinalp/vitrin/ws"
	"github.com/rs/cors"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] vitrin server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	//
	// Migration'lar binary'ye gömülü (database/migrations/*.sql) —
	// deploy tek dosya kopyalamaktan ibaret.
	db, err := database.New(cfg.Database.Path, database.EmbeddedMigrations)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Upload Dizini ───
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("[main] failed to create upload directory: %v", err)
	}

	// ─── 4. Repository Layer ───
	ownerRepo := repository.NewSQLiteOwnerRepo(db.Conn)
	sessionRepo := repository.NewSQLiteSessionRepo(db.Conn)
	heroRepo := repository.NewSQLiteHeroRepo(db.Conn)
	aboutRepo := repository.NewSQLiteAboutRepo(db.Conn)
	contactInfoRepo := repository.NewSQLiteContactInfoRepo(db.Conn)
	skillRepo := repository.NewSQLiteSkillRepo(db.Conn)
	experienceRepo := repository.NewSQLiteExperienceRepo(db.Conn)
	projectRepo := repository.NewSQLiteProjectRepo(db.Conn)
	educationRepo := repository.NewSQLiteEducationRepo(db.Conn)
	achievementRepo := repository.NewSQLiteAchievementRepo(db.Conn)
	mediaRepo := repository.NewSQLiteMediaRepo(db.Conn)
	messageRepo := repository.NewSQLiteContactMessageRepo(db.Conn)

	// ─── 5. WebSocket Hub ───
	//
	// Hub, public içerik feed'ine bağlı tüm WebSocket bağlantılarını yönetir.
	// `go hub.Run()` ayrı bir goroutine'de event loop başlatır:
	// register/unregister channel'larını dinler ve client map'ini günceller.
	// Hub aynı zamanda EventPublisher interface'ini implement eder —
	// service'ler hub'a doğrudan bağımlı olmak yerine interface üzerinden erişir.
	hub := ws.NewHub()
	go hub.Run()

	// ─── 6. Service Layer ───
	//
	// Dependency sırası önemli: sectionService → siteService → notifier →
	// içerik service'leri. Notifier, her admin yazısında önce site cache'ini
	// invalidate eder, sonra WS client'larına "content_update" yollar.
	authService := services.NewAuthService(
		ownerRepo,
		sessionRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// notifier ↔ siteService döngüsü: siteService sectionService'i okur,
	// sectionService yazarken notifier'ı çağırır, notifier siteService
	// cache'ini düşürür. Döngü BindCache ile kırılır — notifier önce
	// cache'siz kurulur, siteService hazır olunca bağlanır.
	notifier := services.NewContentNotifier(hub, nil)
	sectionService := services.NewSectionService(heroRepo, aboutRepo, contactInfoRepo, notifier)
	siteService := services.NewSiteService(
		sectionService,
		skillRepo,
		experienceRepo,
		projectRepo,
		educationRepo,
		achievementRepo,
	)
	notifier.BindCache(siteService)

	skillService := services.NewSkillService(db.Conn, skillRepo, notifier)
	experienceService := services.NewExperienceService(db.Conn, experienceRepo, notifier)
	projectService := services.NewProjectService(db.Conn, projectRepo, notifier)
	educationService := services.NewEducationService(db.Conn, educationRepo, notifier)
	achievementService := services.NewAchievementService(db.Conn, achievementRepo, notifier)
	uploadService := services.NewUploadService(
		mediaRepo,
		cfg.Upload.Dir,
		cfg.Upload.MaxImageSize,
		cfg.Upload.MaxVideoSize,
	)

	emailSender := email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.ToEmail)
	contactService := services.NewContactService(messageRepo, emailSender)

	// ─── 7. Handler Layer ───
	//
	// Rate limiter'lar handler'a constructor'dan geçer:
	// login/register brute-force'a karşı 5 deneme / 2 dakika,
	// contact form spam'a karşı 3 mesaj / dakika (IP başına).
	loginLimiter := ratelimit.New(5, 2*time.Minute)
	defer loginLimiter.Close()
	contactLimiter := ratelimit.New(3, time.Minute)
	defer contactLimiter.Close()

	authHandler := handlers.NewAuthHandler(authService, loginLimiter)
	sectionHandler := handlers.NewSectionHandler(sectionService)
	skillHandler := handlers.NewSkillHandler(skillService)
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	projectHandler := handlers.NewProjectHandler(projectService)
	educationHandler := handlers.NewEducationHandler(educationService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	contactHandler := handlers.NewContactHandler(contactService, contactLimiter)
	siteHandler := handlers.NewSiteHandler(siteService)
	metaHandler := handlers.NewMetaHandler(cfg.Site.PublicURL)
	wsHandler := ws.NewHandler(hub)

	// ─── 8. Middleware ───
	authMiddleware := middleware.NewAuthMiddleware(authService, ownerRepo)

	// ─── 9. HTTP Router ───
	mux := http.NewServeMux()

	// Health check + SEO meta
	mux.HandleFunc("GET /api/health", metaHandler.Health)
	mux.HandleFunc("GET /robots.txt", metaHandler.Robots)
	mux.HandleFunc("GET /sitemap.xml", metaHandler.Sitemap)

	// Auth — public endpoint'ler (token gerekmez)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

	// Auth — protected
	mux.Handle("GET /api/auth/me", authMiddleware.Require(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /api/auth/password", authMiddleware.Require(http.HandlerFunc(authHandler.ChangePassword)))

	// Public içerik — token gerekmez, boş bölümler varsayılan içerikle döner
	mux.HandleFunc("GET /api/site", siteHandler.GetContent)
	mux.HandleFunc("GET /api/site/hero", sectionHandler.GetHero)
	mux.HandleFunc("GET /api/site/about", sectionHandler.GetAbout)
	mux.HandleFunc("GET /api/site/contact-info", sectionHandler.GetContactInfo)
	mux.HandleFunc("GET /api/site/skills", skillHandler.List)
	mux.HandleFunc("GET /api/site/experiences", experienceHandler.List)
	mux.HandleFunc("GET /api/site/projects", projectHandler.List)
	mux.HandleFunc("GET /api/site/projects/{id}", projectHandler.Get)
	mux.HandleFunc("GET /api/site/education", educationHandler.List)
	mux.HandleFunc("GET /api/site/achievements", achievementHandler.List)
	mux.HandleFunc("GET /api/stats", siteHandler.GetStats)

	// Contact form — public, IP rate limitli
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)

	// Admin — tekil bölümler (hero / about / contact-info)
	// GET admin tarafında 404 döner bölüm hiç kaydedilmemişse;
	// public taraftaki varsayılan fallback burada YOK — admin paneli
	// "henüz içerik yok" durumunu görmek zorunda.
	mux.Handle("GET /api/admin/hero", authMiddleware.Require(http.HandlerFunc(sectionHandler.AdminGetHero)))
	mux.Handle("PUT /api/admin/hero", authMiddleware.Require(http.HandlerFunc(sectionHandler.UpsertHero)))
	mux.Handle("GET /api/admin/about", authMiddleware.Require(http.HandlerFunc(sectionHandler.AdminGetAbout)))
	mux.Handle("PUT /api/admin/about", authMiddleware.Require(http.HandlerFunc(sectionHandler.UpsertAbout)))
	mux.Handle("GET /api/admin/contact-info", authMiddleware.Require(http.HandlerFunc(sectionHandler.AdminGetContactInfo)))
	mux.Handle("PUT /api/admin/contact-info", authMiddleware.Require(http.HandlerFunc(sectionHandler.UpsertContactInfo)))

	// Admin — listeli bölümler (CRUD + reorder)
	//
	// "reorder" literal path'i "{id}" wildcard'ından daha spesifik olduğu
	// için Go 1.22 router'ı çakışma olmadan doğru handler'ı seçer.
	mux.Handle("GET /api/admin/skills", authMiddleware.Require(http.HandlerFunc(skillHandler.AdminList)))
	mux.Handle("POST /api/admin/skills", authMiddleware.Require(http.HandlerFunc(skillHandler.Create)))
	mux.Handle("PUT /api/admin/skills/{id}", authMiddleware.Require(http.HandlerFunc(skillHandler.Update)))
	mux.Handle("DELETE /api/admin/skills/{id}", authMiddleware.Require(http.HandlerFunc(skillHandler.Delete)))
	mux.Handle("PATCH /api/admin/skills/reorder", authMiddleware.Require(http.HandlerFunc(skillHandler.Reorder)))

	mux.Handle("GET /api/admin/experiences", authMiddleware.Require(http.HandlerFunc(experienceHandler.List)))
	mux.Handle("POST /api/admin/experiences", authMiddleware.Require(http.HandlerFunc(experienceHandler.Create)))
	mux.Handle("PUT /api/admin/experiences/{id}", authMiddleware.Require(http.HandlerFunc(experienceHandler.Update)))
	mux.Handle("DELETE /api/admin/experiences/{id}", authMiddleware.Require(http.HandlerFunc(experienceHandler.Delete)))
	mux.Handle("PATCH /api/admin/experiences/reorder", authMiddleware.Require(http.HandlerFunc(experienceHandler.Reorder)))

	mux.Handle("GET /api/admin/projects", authMiddleware.Require(http.HandlerFunc(projectHandler.List)))
	mux.Handle("POST /api/admin/projects", authMiddleware.Require(http.HandlerFunc(projectHandler.Create)))
	mux.Handle("PUT /api/admin/projects/{id}", authMiddleware.Require(http.HandlerFunc(projectHandler.Update)))
	mux.Handle("DELETE /api/admin/projects/{id}", authMiddleware.Require(http.HandlerFunc(projectHandler.Delete)))
	mux.Handle("PATCH /api/admin/projects/reorder", authMiddleware.Require(http.HandlerFunc(projectHandler.Reorder)))

	mux.Handle("GET /api/admin/education", authMiddleware.Require(http.HandlerFunc(educationHandler.List)))
	mux.Handle("POST /api/admin/education", authMiddleware.Require(http.HandlerFunc(educationHandler.Create)))
	mux.Handle("PUT /api/admin/education/{id}", authMiddleware.Require(http.HandlerFunc(educationHandler.Update)))
	mux.Handle("DELETE /api/admin/education/{id}", authMiddleware.Require(http.HandlerFunc(educationHandler.Delete)))
	mux.Handle("PATCH /api/admin/education/reorder", authMiddleware.Require(http.HandlerFunc(educationHandler.Reorder)))

	mux.Handle("GET /api/admin/achievements", authMiddleware.Require(http.HandlerFunc(achievementHandler.List)))
	mux.Handle("POST /api/admin/achievements", authMiddleware.Require(http.HandlerFunc(achievementHandler.Create)))
	mux.Handle("PUT /api/admin/achievements/{id}", authMiddleware.Require(http.HandlerFunc(achievementHandler.Update)))
	mux.Handle("DELETE /api/admin/achievements/{id}", authMiddleware.Require(http.HandlerFunc(achievementHandler.Delete)))
	mux.Handle("PATCH /api/admin/achievements/reorder", authMiddleware.Require(http.HandlerFunc(achievementHandler.Reorder)))

	// Admin — medya yükleme ve yönetimi
	mux.Handle("POST /api/admin/upload", authMiddleware.Require(http.HandlerFunc(uploadHandler.Upload)))
	mux.Handle("GET /api/admin/media", authMiddleware.Require(http.HandlerFunc(uploadHandler.List)))
	mux.Handle("DELETE /api/admin/media/{id}", authMiddleware.Require(http.HandlerFunc(uploadHandler.Delete)))

	// Admin — gelen iletişim mesajları
	mux.Handle("GET /api/admin/messages", authMiddleware.Require(http.HandlerFunc(contactHandler.ListMessages)))
	mux.Handle("DELETE /api/admin/messages/{id}", authMiddleware.Require(http.HandlerFunc(contactHandler.DeleteMessage)))

	// Static file serving — yüklenen dosyalara erişim
	//
	// http.StripPrefix: URL'den "/api/uploads/" kısmını çıkarır.
	// http.FileServer: Kalan path'i upload dizininde dosya olarak arar.
	// Örnek: GET /api/uploads/projects/abc_cover.jpg → ./data/uploads/projects/abc_cover.jpg
	//
	// Path traversal koruması:
	// http.FileServer zaten ".." path'lerini reddeder.
	// Ek güvenlik için tam olarak "{folder}/{filename}" formatını zorunlu kılıyoruz —
	// daha derin path'ler ve backslash reddedilir.
	uploadsHandler := http.StripPrefix("/api/uploads/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Count(r.URL.Path, "/") != 1 ||
			strings.Contains(r.URL.Path, "\\") ||
			strings.Contains(r.URL.Path, "..") {
			http.NotFound(w, r)
			return
		}
		http.FileServer(http.Dir(cfg.Upload.Dir)).ServeHTTP(w, r)
	}))
	mux.Handle("GET /api/uploads/", uploadsHandler)

	// WebSocket — public içerik feed'i, token GEREKMEZ
	//
	// Ziyaretçiler siteyi açık tutarken admin içerik güncellerse
	// "content_update" event'i ile hangi bölümün değiştiğini öğrenir,
	// ilgili bölümü yeniden fetch eder.
	mux.HandleFunc("GET /ws", wsHandler.HandleConnection)

	// Frontend — gömülü React build, SPA fallback ile.
	// API route'ları yukarıda daha spesifik olduğu için öncelik onlardadır;
	// kalan her şey (/, /projects, /admin...) frontend'e düşer.
	mux.Handle("GET /", static.Handler())

	// ─── 10. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		Debug:            false,
	})

	handler := corsHandler.Handler(mux)

	// ─── 11. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 12. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Önce WebSocket bağlantılarını kapat — client'lar "server shutting down" bilir.
	// Sonra HTTP server'ı kapat — yeni request kabul etmeyi durdurur,
	// mevcut request'lerin bitmesini bekler (5sn timeout).
	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
