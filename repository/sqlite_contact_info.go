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

type sqliteContactInfoRepo struct {
	db database.TxQuerier
}

func NewSQLiteContactInfoRepo(db database.TxQuerier) ContactInfoRepository {
	return &sqliteContactInfoRepo{db: db}
}

func (r *sqliteContactInfoRepo) Get(ctx context.Context) (*models.ContactInfo, error) {
	query := `
		SELECT id, email, phone, location, github_url, linkedin_url,
		       twitter_url, website_url, updated_at
		FROM contact_info LIMIT 1`

	info := &models.ContactInfo{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&info.ID, &info.Email, &info.Phone, &info.Location,
		&info.GitHubURL, &info.LinkedInURL, &info.TwitterURL,
		&info.WebsiteURL, &info.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}

	return info, nil
}

func (r *sqliteContactInfoRepo) Upsert(ctx context.Context, info *models.ContactInfo) error {
	query := `
		INSERT INTO contact_info (
			id, email, phone, location, github_url, linkedin_url, twitter_url, website_url
		)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(singleton_guard) DO UPDATE SET
			email = excluded.email,
			phone = excluded.phone,
			location = excluded.location,
			github_url = excluded.github_url,
			linkedin_url = excluded.linkedin_url,
			twitter_url = excluded.twitter_url,
			website_url = excluded.website_url,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		info.Email, info.Phone, info.Location,
		info.GitHubURL, info.LinkedInURL, info.TwitterURL, info.WebsiteURL,
	).Scan(&info.ID, &info.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert contact info: %w", err)
	}

	return nil
}
