package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// MediaRepository, yüklenen dosya envanteri için interface.
type MediaRepository interface {
	Create(ctx context.Context, file *models.MediaFile) error
	GetByID(ctx context.Context, id string) (*models.MediaFile, error)
	GetAll(ctx context.Context) ([]models.MediaFile, error)
	Delete(ctx context.Context, id string) error
}
