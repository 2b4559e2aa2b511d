package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
)

type fakeMessageRepo struct {
	messages []models.ContactMessage
	err      error
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	msg.ID = fmt.Sprintf("msg-%d", len(f.messages)+1)
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageRepo) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return pkg.ErrNotFound
}

type fakeEmailSender struct {
	sent int
	err  error
}

func (f *fakeEmailSender) SendContactMessage(ctx context.Context, name, replyTo, subject, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

func TestSubmitPersistsAndSends(t *testing.T) {
	repo := &fakeMessageRepo{}
	sender := &fakeEmailSender{}
	svc := NewContactService(repo, sender)

	err := svc.Submit(context.Background(), &models.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "merhaba",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(repo.messages))
	}
	if sender.sent != 1 {
		t.Fatalf("expected 1 sent email, got %d", sender.sent)
	}
}

func TestSubmitInvalidDoesNothing(t *testing.T) {
	repo := &fakeMessageRepo{}
	sender := &fakeEmailSender{}
	svc := NewContactService(repo, sender)

	err := svc.Submit(context.Background(), &models.ContactRequest{
		Name:  "Ada",
		Email: "gecersiz",
	})
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if len(repo.messages) != 0 || sender.sent != 0 {
		t.Fatal("invalid request should not persist or send")
	}
}

// E-posta sağlayıcısı çökse bile mesaj DB'de kalmalı; caller'a hata döner.
func TestSubmitEmailFailureKeepsMessage(t *testing.T) {
	repo := &fakeMessageRepo{}
	sender := &fakeEmailSender{err: fmt.Errorf("resend is down")}
	svc := NewContactService(repo, sender)

	err := svc.Submit(context.Background(), &models.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "merhaba",
	})
	if !errors.Is(err, pkg.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(repo.messages) != 1 {
		t.Fatal("message should be persisted despite email failure")
	}
}

func TestDeleteMessage(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewContactService(repo, &fakeEmailSender{})

	_ = svc.Submit(context.Background(), &models.ContactRequest{
		Name: "Ada", Email: "ada@example.com", Message: "m",
	})

	if err := svc.DeleteMessage(context.Background(), "msg-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteMessage(context.Background(), "msg-1"); !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
