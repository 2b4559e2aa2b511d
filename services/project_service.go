package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akinalp/vitrin/database"
	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/repository"
)

// ProjectService, proje listesi CRUD + sıralama işlemleri.
// GetFeatured public ana sayfadaki öne çıkan projeler şeridi içindir.
type ProjectService interface {
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	GetFeatured(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Update(ctx context.Context, id string, req *models.CreateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, req *models.ReorderRequest) error
}

type projectService struct {
	db       *sql.DB
	repo     repository.ProjectRepository
	notifier *ContentNotifier
}

func NewProjectService(db *sql.DB, repo repository.ProjectRepository, notifier *ContentNotifier) ProjectService {
	return &projectService{db: db, repo: repo, notifier: notifier}
}

func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	project := &models.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		ImageURL:        req.ImageURL,
		VideoURL:        req.VideoURL,
		DemoURL:         req.DemoURL,
		GitHubURL:       req.GitHubURL,
		Technologies:    req.Technologies,
		Featured:        req.Featured,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("projects")
	return project, nil
}

func (s *projectService) GetAll(ctx context.Context) ([]models.Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *projectService) GetFeatured(ctx context.Context) ([]models.Project, error) {
	return s.repo.GetFeatured(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) Update(ctx context.Context, id string, req *models.CreateProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	project := &models.Project{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		ImageURL:        req.ImageURL,
		VideoURL:        req.VideoURL,
		DemoURL:         req.DemoURL,
		GitHubURL:       req.GitHubURL,
		Technologies:    req.Technologies,
		Featured:        req.Featured,
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("projects")
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.ContentChanged("projects")
	return nil
}

func (s *projectService) Reorder(ctx context.Context, req *models.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteProjectRepo(tx)
		return txRepo.UpdateOrderIndexes(ctx, req.Items)
	})
	if err != nil {
		return err
	}

	s.notifier.ContentChanged("projects")
	return nil
}
