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

// sqliteProjectRepo — technologies kolonu DB'de virgülle ayrılmış tek
// string olarak durur, model tarafında []string'e açılır.
type sqliteProjectRepo struct {
	db database.TxQuerier
}

func NewSQLiteProjectRepo(db database.TxQuerier) ProjectRepository {
	return &sqliteProjectRepo{db: db}
}

const projectColumns = `id, title, description, long_description, image_url, video_url,
	demo_url, github_url, technologies, featured, order_index, created_at`

func (r *sqliteProjectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (
			id, title, description, long_description, image_url, video_url,
			demo_url, github_url, technologies, featured, order_index
		)
		VALUES (
			lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, ?, ?, ?,
			COALESCE((SELECT MAX(order_index) FROM projects), -1) + 1
		)
		RETURNING id, order_index, created_at`

	err := r.db.QueryRowContext(ctx, query,
		project.Title, project.Description, project.LongDescription,
		project.ImageURL, project.VideoURL, project.DemoURL, project.GitHubURL,
		joinTechnologies(project.Technologies), project.Featured,
	).Scan(&project.ID, &project.OrderIndex, &project.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *sqliteProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

func (r *sqliteProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY order_index, created_at`
	return r.queryProjects(ctx, query)
}

func (r *sqliteProjectRepo) GetFeatured(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE featured = 1 ORDER BY order_index, created_at`
	return r.queryProjects(ctx, query)
}

func (r *sqliteProjectRepo) queryProjects(ctx context.Context, query string) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	return projects, rows.Err()
}

func (r *sqliteProjectRepo) Update(ctx context.Context, project *models.Project) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, long_description = ?, image_url = ?,
		    video_url = ?, demo_url = ?, github_url = ?, technologies = ?, featured = ?
		WHERE id = ?`,
		project.Title, project.Description, project.LongDescription,
		project.ImageURL, project.VideoURL, project.DemoURL, project.GitHubURL,
		joinTechnologies(project.Technologies), project.Featured, project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteProjectRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *sqliteProjectRepo) UpdateOrderIndexes(ctx context.Context, items []models.OrderUpdate) error {
	return updateOrderIndexes(ctx, r.db, "projects", items)
}

func (r *sqliteProjectRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

// rowScanner, hem *sql.Row hem *sql.Rows için ortak Scan imzası.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var technologies string

	err := row.Scan(
		&project.ID, &project.Title, &project.Description, &project.LongDescription,
		&project.ImageURL, &project.VideoURL, &project.DemoURL, &project.GitHubURL,
		&technologies, &project.Featured, &project.OrderIndex, &project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.Technologies = splitTechnologies(technologies)
	return project, nil
}

func joinTechnologies(technologies []string) string {
	return strings.Join(technologies, ",")
}

func splitTechnologies(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
