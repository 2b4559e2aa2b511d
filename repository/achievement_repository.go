package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// AchievementRepository, sıralı başarı listesi için interface.
type AchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	GetByID(ctx context.Context, id string) (*models.Achievement, error)
	GetAll(ctx context.Context) ([]models.Achievement, error)
	Update(ctx context.Context, achievement *models.Achievement) error
	Delete(ctx context.Context, id string) error
	UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error
	Count(ctx context.Context) (int, error)
}
