package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// AboutRepository, singleton hakkımda bölümü için interface.
type AboutRepository interface {
	Get(ctx context.Context) (*models.AboutSection, error)
	Upsert(ctx context.Context, about *models.AboutSection) error
}
