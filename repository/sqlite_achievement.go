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

type sqliteAchievementRepo struct {
	db database.TxQuerier
}

func NewSQLiteAchievementRepo(db database.TxQuerier) AchievementRepository {
	return &sqliteAchievementRepo{db: db}
}

func (r *sqliteAchievementRepo) Create(ctx context.Context, achievement *models.Achievement) error {
	query := `
		INSERT INTO achievements (
			id, title, description, icon, color, bg_color, border_color, order_index
		)
		VALUES (
			lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?,
			COALESCE((SELECT MAX(order_index) FROM achievements), -1) + 1
		)
		RETURNING id, order_index, created_at`

	err := r.db.QueryRowContext(ctx, query,
		achievement.Title, achievement.Description, achievement.Icon,
		achievement.Color, achievement.BgColor, achievement.BorderColor,
	).Scan(&achievement.ID, &achievement.OrderIndex, &achievement.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create achievement: %w", err)
	}

	return nil
}

func (r *sqliteAchievementRepo) GetByID(ctx context.Context, id string) (*models.Achievement, error) {
	query := `
		SELECT id, title, description, icon, color, bg_color, border_color, order_index, created_at
		FROM achievements WHERE id = ?`

	achievement := &models.Achievement{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&achievement.ID, &achievement.Title, &achievement.Description,
		&achievement.Icon, &achievement.Color, &achievement.BgColor,
		&achievement.BorderColor, &achievement.OrderIndex, &achievement.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}

	return achievement, nil
}

func (r *sqliteAchievementRepo) GetAll(ctx context.Context) ([]models.Achievement, error) {
	query := `
		SELECT id, title, description, icon, color, bg_color, border_color, order_index, created_at
		FROM achievements ORDER BY order_index, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	achievements := []models.Achievement{}
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Icon, &a.Color,
			&a.BgColor, &a.BorderColor, &a.OrderIndex, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

func (r *sqliteAchievementRepo) Update(ctx context.Context, achievement *models.Achievement) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE achievements
		SET title = ?, description = ?, icon = ?, color = ?, bg_color = ?, border_color = ?
		WHERE id = ?`,
		achievement.Title, achievement.Description, achievement.Icon,
		achievement.Color, achievement.BgColor, achievement.BorderColor, achievement.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update achievement: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteAchievementRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM achievements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteAchievementRepo) UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error {
	return updateOrderIndexes(ctx, r.db, "achievements", items)
}

func (r *sqliteAchievementRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM achievements`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count achievements: %w", err)
	}
	return count, nil
}
