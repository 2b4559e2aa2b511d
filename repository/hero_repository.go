package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// HeroRepository, singleton hero bölümü için interface.
// Get boş tabloda pkg.ErrNotFound döner; Upsert ilk çağrıda INSERT,
// sonrakilerde tam satır UPDATE yapar.
type HeroRepository interface {
	Get(ctx context.Context) (*models.HeroSection, error)
	Upsert(ctx context.Context, hero *models.HeroSection) error
}
