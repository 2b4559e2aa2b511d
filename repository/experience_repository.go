package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// ExperienceRepository, sıralı iş deneyimi listesi için interface.
type ExperienceRepository interface {
	Create(ctx context.Context, exp *models.Experience) error
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	GetAll(ctx context.Context) ([]models.Experience, error)
	Update(ctx context.Context, exp *models.Experience) error
	Delete(ctx context.Context, id string) error
	UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error
	Count(ctx context.Context) (int, error)
}
