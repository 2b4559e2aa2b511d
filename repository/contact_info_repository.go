package repository

import (
	"context"

	"github.com/akinalp/vitrin/models"
)

// ContactInfoRepository, singleton iletişim bilgileri için interface.
type ContactInfoRepository interface {
	Get(ctx context.Context) (*models.ContactInfo, error)
	Upsert(ctx context.Context, info *models.ContactInfo) error
}
