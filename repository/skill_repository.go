package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// SkillRepository, sıralı yetenek listesi için interface.
//
// Create yeni kaydı listenin sonuna ekler (mevcut max order_index + 1).
// UpdateOrderIndexes sürükle-bırak sonrası toplu sıra güncellemesidir;
// atomiklik için transaction içinde (tx-bound repo ile) çağrılmalıdır.
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	GetAll(ctx context.Context) ([]models.Skill, error)
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id string) error
	UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error
	Count(ctx context.Context) (int, error)
}
