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

type sqliteSkillRepo struct {
	db database.TxQuerier
}

func NewSQLiteSkillRepo(db database.TxQuerier) SkillRepository {
	return &sqliteSkillRepo{db: db}
}

func (r *sqliteSkillRepo) Create(ctx context.Context, skill *models.Skill) error {
	// order_index aynı statement içinde hesaplanır — iki ayrı sorgu
	// arasında başka bir INSERT araya giremez.
	query := `
		INSERT INTO skills (id, name, category, proficiency, order_index)
		VALUES (
			lower(hex(randomblob(8))), ?, ?, ?,
			COALESCE((SELECT MAX(order_index) FROM skills), -1) + 1
		)
		RETURNING id, order_index, created_at`

	err := r.db.QueryRowContext(ctx, query,
		skill.Name, skill.Category, skill.Proficiency,
	).Scan(&skill.ID, &skill.OrderIndex, &skill.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

func (r *sqliteSkillRepo) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	query := `
		SELECT id, name, category, proficiency, order_index, created_at
		FROM skills WHERE id = ?`

	skill := &models.Skill{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&skill.ID, &skill.Name, &skill.Category,
		&skill.Proficiency, &skill.OrderIndex, &skill.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	return skill, nil
}

func (r *sqliteSkillRepo) GetAll(ctx context.Context) ([]models.Skill, error) {
	query := `
		SELECT id, name, category, proficiency, order_index, created_at
		FROM skills ORDER BY order_index, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Category,
			&s.Proficiency, &s.OrderIndex, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

func (r *sqliteSkillRepo) Update(ctx context.Context, skill *models.Skill) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE skills SET name = ?, category = ?, proficiency = ? WHERE id = ?`,
		skill.Name, skill.Category, skill.Proficiency, skill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteSkillRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteSkillRepo) UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error {
	return updateOrderIndexes(ctx, r.db, "skills", items)
}

func (r *sqliteSkillRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}
	return count, nil
}
