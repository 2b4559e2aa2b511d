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

type sqliteExperienceRepo struct {
	db database.TxQuerier
}

func NewSQLiteExperienceRepo(db database.TxQuerier) ExperienceRepository {
	return &sqliteExperienceRepo{db: db}
}

func (r *sqliteExperienceRepo) Create(ctx context.Context, exp *models.Experience) error {
	query := `
		INSERT INTO experiences (
			id, company, position, description, location,
			start_date, end_date, is_current, order_index
		)
		VALUES (
			lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, ?,
			COALESCE((SELECT MAX(order_index) FROM experiences), -1) + 1
		)
		RETURNING id, order_index, created_at`

	err := r.db.QueryRowContext(ctx, query,
		exp.Company, exp.Position, exp.Description, exp.Location,
		exp.StartDate, exp.EndDate, exp.IsCurrent,
	).Scan(&exp.ID, &exp.OrderIndex, &exp.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}

	return nil
}

func (r *sqliteExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	query := `
		SELECT id, company, position, description, location,
		       start_date, end_date, is_current, order_index, created_at
		FROM experiences WHERE id = ?`

	exp := &models.Experience{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&exp.ID, &exp.Company, &exp.Position, &exp.Description, &exp.Location,
		&exp.StartDate, &exp.EndDate, &exp.IsCurrent, &exp.OrderIndex, &exp.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}

	return exp, nil
}

func (r *sqliteExperienceRepo) GetAll(ctx context.Context) ([]models.Experience, error) {
	query := `
		SELECT id, company, position, description, location,
		       start_date, end_date, is_current, order_index, created_at
		FROM experiences ORDER BY order_index, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	experiences := []models.Experience{}
	for rows.Next() {
		var e models.Experience
		if err := rows.Scan(
			&e.ID, &e.Company, &e.Position, &e.Description, &e.Location,
			&e.StartDate, &e.EndDate, &e.IsCurrent, &e.OrderIndex, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		experiences = append(experiences, e)
	}

	return experiences, rows.Err()
}

func (r *sqliteExperienceRepo) Update(ctx context.Context, exp *models.Experience) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE experiences
		SET company = ?, position = ?, description = ?, location = ?,
		    start_date = ?, end_date = ?, is_current = ?
		WHERE id = ?`,
		exp.Company, exp.Position, exp.Description, exp.Location,
		exp.StartDate, exp.EndDate, exp.IsCurrent, exp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteExperienceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteExperienceRepo) UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error {
	return updateOrderIndexes(ctx, r.db, "experiences", items)
}

func (r *sqliteExperienceRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count experiences: %w", err)
	}
	return count, nil
}
