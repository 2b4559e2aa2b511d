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

type sqliteMediaRepo struct {
	db database.TxQuerier
}

func NewSQLiteMediaRepo(db database.TxQuerier) MediaRepository {
	return &sqliteMediaRepo{db: db}
}

func (r *sqliteMediaRepo) Create(ctx context.Context, file *models.MediaFile) error {
	query := `
		INSERT INTO media_files (id, folder, filename, file_url, mime_type, file_size)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		file.Folder, file.Filename, file.FileURL, file.MimeType, file.FileSize,
	).Scan(&file.ID, &file.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create media record: %w", err)
	}

	return nil
}

func (r *sqliteMediaRepo) GetByID(ctx context.Context, id string) (*models.MediaFile, error) {
	query := `
		SELECT id, folder, filename, file_url, mime_type, file_size, created_at
		FROM media_files WHERE id = ?`

	file := &models.MediaFile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&file.ID, &file.Folder, &file.Filename, &file.FileURL,
		&file.MimeType, &file.FileSize, &file.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media record: %w", err)
	}

	return file, nil
}

func (r *sqliteMediaRepo) GetAll(ctx context.Context) ([]models.MediaFile, error) {
	query := `
		SELECT id, folder, filename, file_url, mime_type, file_size, created_at
		FROM media_files ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list media records: %w", err)
	}
	defer rows.Close()

	files := []models.MediaFile{}
	for rows.Next() {
		var f models.MediaFile
		if err := rows.Scan(
			&f.ID, &f.Folder, &f.Filename, &f.FileURL,
			&f.MimeType, &f.FileSize, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan media record: %w", err)
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

func (r *sqliteMediaRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM media_files WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media record: %w", err)
	}

	return requireRowsAffected(result)
}
