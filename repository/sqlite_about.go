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

type sqliteAboutRepo struct {
	db database.TxQuerier
}

func NewSQLiteAboutRepo(db database.TxQuerier) AboutRepository {
	return &sqliteAboutRepo{db: db}
}

func (r *sqliteAboutRepo) Get(ctx context.Context) (*models.AboutSection, error) {
	query := `
		SELECT id, title, content, image_url, resume_url, updated_at
		FROM about_section LIMIT 1`

	about := &models.AboutSection{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&about.ID, &about.Title, &about.Content,
		&about.ImageURL, &about.ResumeURL, &about.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get about section: %w", err)
	}

	return about, nil
}

func (r *sqliteAboutRepo) Upsert(ctx context.Context, about *models.AboutSection) error {
	query := `
		INSERT INTO about_section (id, title, content, image_url, resume_url)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?)
		ON CONFLICT(singleton_guard) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			image_url = excluded.image_url,
			resume_url = excluded.resume_url,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		about.Title, about.Content, about.ImageURL, about.ResumeURL,
	).Scan(&about.ID, &about.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert about section: %w", err)
	}

	return nil
}
