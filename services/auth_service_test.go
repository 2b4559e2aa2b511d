package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
)

type fakeOwnerRepo struct {
	owners map[string]*models.Owner // id → owner
	nextID int
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: map[string]*models.Owner{}}
}

func (f *fakeOwnerRepo) Create(ctx context.Context, owner *models.Owner) error {
	for _, o := range f.owners {
		if o.Username == owner.Username {
			return fmt.Errorf("%w: username already taken", pkg.ErrAlreadyExists)
		}
	}
	f.nextID++
	owner.ID = fmt.Sprintf("owner-%d", f.nextID)
	owner.CreatedAt = time.Now()
	cp := *owner
	f.owners[owner.ID] = &cp
	return nil
}

func (f *fakeOwnerRepo) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	o, ok := f.owners[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOwnerRepo) GetByUsername(ctx context.Context, username string) (*models.Owner, error) {
	for _, o := range f.owners {
		if o.Username == username {
			cp := *o
			return &cp, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeOwnerRepo) Count(ctx context.Context) (int, error) {
	return len(f.owners), nil
}

func (f *fakeOwnerRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	o, ok := f.owners[id]
	if !ok {
		return pkg.ErrNotFound
	}
	o.PasswordHash = passwordHash
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session // id → session
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*models.Session{}}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *models.Session) error {
	f.nextID++
	session.ID = fmt.Sprintf("session-%d", f.nextID)
	cp := *session
	f.sessions[session.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) GetByRefreshToken(ctx context.Context, token string) (*models.Session, error) {
	for _, s := range f.sessions {
		if s.RefreshToken == token {
			cp := *s
			return &cp, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeSessionRepo) DeleteByID(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepo) DeleteByOwnerID(ctx context.Context, ownerID string) error {
	for id, s := range f.sessions {
		if s.OwnerID == ownerID {
			delete(f.sessions, id)
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	for id, s := range f.sessions {
		if now.After(s.ExpiresAt) {
			delete(f.sessions, id)
		}
	}
	return nil
}

func newTestAuthService() (AuthService, *fakeOwnerRepo, *fakeSessionRepo) {
	ownerRepo := newFakeOwnerRepo()
	sessionRepo := newFakeSessionRepo()
	svc := NewAuthService(ownerRepo, sessionRepo, "test-secret", 15, 7)
	return svc, ownerRepo, sessionRepo
}

func TestRegisterFirstOwner(t *testing.T) {
	svc, _, sessionRepo := newTestAuthService()

	tokens, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "akinalp",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("register should return a token pair")
	}
	if tokens.Owner.Username != "akinalp" {
		t.Fatalf("owner username = %q", tokens.Owner.Username)
	}
	if len(sessionRepo.sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessionRepo.sessions))
	}
}

// Tek sahipli sistem: ilk hesaptan sonra kayıt kapısı kapanır.
func TestRegisterSecondOwnerForbidden(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "akinalp", Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err = svc.Register(context.Background(), &models.RegisterRequest{
		Username: "intruder", Password: "battery-staple",
	})
	if !errors.Is(err, pkg.ErrForbidden) {
		t.Fatalf("second register should be ErrForbidden, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _ = svc.Register(context.Background(), &models.RegisterRequest{
		Username: "akinalp", Password: "correct-horse",
	})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "akinalp", Password: "wrong",
	})
	if !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// Bilinmeyen kullanıcı da aynı hatayı döner — enumeration'a izin yok.
	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Username: "nobody", Password: "whatever",
	})
	if !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}
}

func TestValidateAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService()

	tokens, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "akinalp", Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if claims.Username != "akinalp" || claims.OwnerID == "" {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := svc.ValidateAccessToken("garbage"); !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("garbage token should be ErrUnauthorized, got %v", err)
	}
}

// Refresh token rotation: eski token tek kullanımlıktır.
func TestRefreshTokenRotation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	tokens, _ := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "akinalp", Password: "correct-horse",
	})

	rotated, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if rotated.RefreshToken == tokens.RefreshToken {
		t.Fatal("refresh token should rotate")
	}

	if _, err := svc.RefreshToken(context.Background(), tokens.RefreshToken); !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("old refresh token should be rejected, got %v", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, sessionRepo := newTestAuthService()

	tokens, _ := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "akinalp", Password: "correct-horse",
	})

	if err := svc.Logout(context.Background(), tokens.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(sessionRepo.sessions) != 0 {
		t.Fatal("logout should delete the session")
	}
	if err := svc.Logout(context.Background(), tokens.RefreshToken); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}
}

func TestChangePasswordKillsSessions(t *testing.T) {
	svc, _, sessionRepo := newTestAuthService()

	tokens, _ := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "akinalp", Password: "correct-horse",
	})
	ownerID := tokens.Owner.ID

	// Yanlış mevcut şifre reddedilir
	err := svc.ChangePassword(context.Background(), ownerID, "wrong", "new-password-1")
	if !errors.Is(err, pkg.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// Kısa yeni şifre reddedilir
	err = svc.ChangePassword(context.Background(), ownerID, "correct-horse", "short")
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// Aynı şifre reddedilir
	err = svc.ChangePassword(context.Background(), ownerID, "correct-horse", "correct-horse")
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for same password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), ownerID, "correct-horse", "battery-staple"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if len(sessionRepo.sessions) != 0 {
		t.Fatal("all sessions should be purged after password change")
	}

	// Yeni şifre ile giriş çalışmalı
	if _, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "akinalp", Password: "battery-staple",
	}); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
