package services

import (
	"context"
	"fmt"
	"log"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/pkg/email"
	"github.com/akinalp/vitrin/repository"
)

// ContactService, iletişim formu iş mantığı.
//
// Submit akışı: validation → DB'ye kaydet → e-posta ilet.
// Mesaj önce kaydedilir; e-posta sağlayıcısı çökse bile mesaj
// admin gelen kutusunda durur, handler yine de hata döner ki
// ziyaretçi iletimin başarısız olduğunu görsün.
type ContactService interface {
	Submit(ctx context.Context, req *models.ContactRequest) error
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error
}

type contactService struct {
	messageRepo repository.ContactMessageRepository
	sender      email.EmailSender
}

func NewContactService(messageRepo repository.ContactMessageRepository, sender email.EmailSender) ContactService {
	return &contactService{
		messageRepo: messageRepo,
		sender:      sender,
	}
}

func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return err
	}

	subject := ""
	if req.Subject != nil {
		subject = *req.Subject
	}

	if err := s.sender.SendContactMessage(ctx, req.Name, req.Email, subject, req.Message); err != nil {
		// Mesaj DB'de duruyor — kayıp yok, ama ziyaretçiye hata dönmeli.
		log.Printf("[contact] email delivery failed (message saved as %s): %v", msg.ID, err)
		return fmt.Errorf("%w: failed to deliver message", pkg.ErrInternal)
	}

	return nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.messageRepo.GetAll(ctx)
}

func (s *contactService) DeleteMessage(ctx context.Context, id string) error {
	return s.messageRepo.Delete(ctx, id)
}
