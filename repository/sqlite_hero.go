package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/vitrin/database"
	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
)

type sqliteHeroRepo struct {
	db database.TxQuerier
}

func NewSQLiteHeroRepo(db database.TxQuerier) HeroRepository {
	return &sqliteHeroRepo{db: db}
}

func (r *sqliteHeroRepo) Get(ctx context.Context) (*models.HeroSection, error) {
	query := `
		SELECT id, title, subtitle, description, cta_text, cta_link,
		       availability_status, profile_image_url, background_image_url, updated_at
		FROM hero_section LIMIT 1`

	hero := &models.HeroSection{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&hero.ID, &hero.Title, &hero.Subtitle, &hero.Description,
		&hero.CTAText, &hero.CTALink, &hero.AvailabilityStatus,
		&hero.ProfileImageURL, &hero.BackgroundImageURL, &hero.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero section: %w", err)
	}

	return hero, nil
}

func (r *sqliteHeroRepo) Upsert(ctx context.Context, hero *models.HeroSection) error {
	// singleton_guard UNIQUE olduğu için ikinci INSERT conflict'e düşer
	// ve mevcut tek satır overwrite edilir. Son yazan kazanır.
	query := `
		INSERT INTO hero_section (
			id, title, subtitle, description, cta_text, cta_link,
			availability_status, profile_image_url, background_image_url
		)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(singleton_guard) DO UPDATE SET
			title = excluded.title,
			subtitle = excluded.subtitle,
			description = excluded.description,
			cta_text = excluded.cta_text,
			cta_link = excluded.cta_link,
			availability_status = excluded.availability_status,
			profile_image_url = excluded.profile_image_url,
			background_image_url = excluded.background_image_url,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		hero.Title, hero.Subtitle, hero.Description,
		hero.CTAText, hero.CTALink, hero.AvailabilityStatus,
		hero.ProfileImageURL, hero.BackgroundImageURL,
	).Scan(&hero.ID, &hero.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert hero section: %w", err)
	}

	return nil
}
