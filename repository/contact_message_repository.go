package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// ContactMessageRepository, iletişim formu mesajları için interface.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
