package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// ProjectRepository, sıralı proje listesi için interface.
// GetFeatured public ana sayfanın öne çıkan projeler şeridi içindir.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	GetFeatured(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
	UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error
	Count(ctx context.Context) (int, error)
}
