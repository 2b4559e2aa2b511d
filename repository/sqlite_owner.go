package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/vitrin/database"
	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
)

// sqliteOwnerRepo, OwnerRepository interface'inin SQLite implementasyonu.
//
// Go'da struct field'ları küçük harfle başlarsa (db) → private.
// Repository'nin DB bağlantısı dışarıya açık olmamalı — bu yüzden küçük harf.
type sqliteOwnerRepo struct {
	db database.TxQuerier
}

// NewSQLiteOwnerRepo, constructor.
// Interface dönmek, çağıran tarafın implementasyondan bağımsız olmasını sağlar.
func NewSQLiteOwnerRepo(db database.TxQuerier) OwnerRepository {
	return &sqliteOwnerRepo{db: db}
}

func (r *sqliteOwnerRepo) Create(ctx context.Context, owner *models.Owner) error {
	query := `
		INSERT INTO owners (id, username, password_hash)
		VALUES (lower(hex(randomblob(8))), ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		owner.Username,
		owner.PasswordHash,
	).Scan(&owner.ID, &owner.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username already taken", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create owner: %w", err)
	}

	return nil
}

func (r *sqliteOwnerRepo) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM owners WHERE id = ?`

	owner := &models.Owner{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&owner.ID, &owner.Username, &owner.PasswordHash, &owner.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner by id: %w", err)
	}

	return owner, nil
}

func (r *sqliteOwnerRepo) GetByUsername(ctx context.Context, username string) (*models.Owner, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM owners WHERE username = ?`

	owner := &models.Owner{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&owner.ID, &owner.Username, &owner.PasswordHash, &owner.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner by username: %w", err)
	}

	return owner, nil
}

func (r *sqliteOwnerRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM owners`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}
	return count, nil
}

func (r *sqliteOwnerRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE owners SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

// isUniqueViolation, SQLite UNIQUE constraint hatasını yakalar.
// modernc.org/sqlite typed error sabiti sunmadığı için mesaj kontrolü yapılır.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
