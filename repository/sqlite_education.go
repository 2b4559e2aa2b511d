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

type sqliteEducationRepo struct {
	db database.TxQuerier
}

func NewSQLiteEducationRepo(db database.TxQuerier) EducationRepository {
	return &sqliteEducationRepo{db: db}
}

func (r *sqliteEducationRepo) Create(ctx context.Context, edu *models.Education) error {
	query := `
		INSERT INTO education (
			id, institution, degree, field_of_study, description, logo_url,
			start_date, end_date, is_current, order_index
		)
		VALUES (
			lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, ?, ?,
			COALESCE((SELECT MAX(order_index) FROM education), -1) + 1
		)
		RETURNING id, order_index, created_at`

	err := r.db.QueryRowContext(ctx, query,
		edu.Institution, edu.Degree, edu.FieldOfStudy, edu.Description,
		edu.LogoURL, edu.StartDate, edu.EndDate, edu.IsCurrent,
	).Scan(&edu.ID, &edu.OrderIndex, &edu.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create education: %w", err)
	}

	return nil
}

func (r *sqliteEducationRepo) GetByID(ctx context.Context, id string) (*models.Education, error) {
	query := `
		SELECT id, institution, degree, field_of_study, description, logo_url,
		       start_date, end_date, is_current, order_index, created_at
		FROM education WHERE id = ?`

	edu := &models.Education{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&edu.ID, &edu.Institution, &edu.Degree, &edu.FieldOfStudy,
		&edu.Description, &edu.LogoURL, &edu.StartDate, &edu.EndDate,
		&edu.IsCurrent, &edu.OrderIndex, &edu.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get education: %w", err)
	}

	return edu, nil
}

func (r *sqliteEducationRepo) GetAll(ctx context.Context) ([]models.Education, error) {
	query := `
		SELECT id, institution, degree, field_of_study, description, logo_url,
		       start_date, end_date, is_current, order_index, created_at
		FROM education ORDER BY order_index, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	entries := []models.Education{}
	for rows.Next() {
		var e models.Education
		if err := rows.Scan(
			&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy,
			&e.Description, &e.LogoURL, &e.StartDate, &e.EndDate,
			&e.IsCurrent, &e.OrderIndex, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *sqliteEducationRepo) Update(ctx context.Context, edu *models.Education) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE education
		SET institution = ?, degree = ?, field_of_study = ?, description = ?,
		    logo_url = ?, start_date = ?, end_date = ?, is_current = ?
		WHERE id = ?`,
		edu.Institution, edu.Degree, edu.FieldOfStudy, edu.Description,
		edu.LogoURL, edu.StartDate, edu.EndDate, edu.IsCurrent, edu.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update education: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteEducationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM education WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteEducationRepo) UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error {
	return updateOrderIndexes(ctx, r.db, "education", items)
}
