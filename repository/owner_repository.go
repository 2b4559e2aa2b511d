// Package repository, veritabanı erişim katmanı.
//
// Her entity için iki dosya vardır: interface (X_repository.go) ve
// SQLite implementasyonu (sqlite_X.go). Service katmanı sadece
// interface'leri görür — test'te in-memory DB ile, transaction'da
// tx-bound repo ile aynı kod çalışır.
package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// OwnerRepository, site sahibi hesabı için interface.
// Tek sahipli sistem: Count() kayıt (register) kapısını kontrol eder.
type OwnerRepository interface {
	Create(ctx context.Context, owner *models.Owner) error
	GetByID(ctx context.Context, id string) (*models.Owner, error)
	GetByUsername(ctx context.Context, username string) (*models.Owner, error)
	Count(ctx context.Context) (int, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
