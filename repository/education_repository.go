package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// EducationRepository, sıralı eğitim listesi için interface.
type EducationRepository interface {
	Create(ctx context.Context, edu *models.Education) error
	GetByID(ctx context.Context, id string) (*models.Education, error)
	GetAll(ctx context.Context) ([]models.Education, error)
	Update(ctx context.Context, edu *models.Education) error
	Delete(ctx context.Context, id string) error
	UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error
}
