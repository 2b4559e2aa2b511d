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

// ExperienceService, iş deneyimi listesi CRUD + sıralama işlemleri.
type ExperienceService interface {
	Create(ctx context.Context, req *models.CreateExperienceRequest) (*models.Experience, error)
	GetAll(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	Update(ctx context.Context, id string, req *models.CreateExperienceRequest) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, req *models.ReorderRequest) error
}

type experienceService struct {
	db       *sql.DB
	repo     repository.ExperienceRepository
	notifier *ContentNotifier
}

func NewExperienceService(db *sql.DB, repo repository.ExperienceRepository, notifier *ContentNotifier) ExperienceService {
	return &experienceService{db: db, repo: repo, notifier: notifier}
}

func (s *experienceService) Create(ctx context.Context, req *models.CreateExperienceRequest) (*models.Experience, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	exp := &models.Experience{
		Company:     req.Company,
		Position:    req.Position,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsCurrent:   req.IsCurrent,
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("experiences")
	return exp, nil
}

func (s *experienceService) GetAll(ctx context.Context) ([]models.Experience, error) {
	return s.repo.GetAll(ctx)
}

func (s *experienceService) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *experienceService) Update(ctx context.Context, id string, req *models.CreateExperienceRequest) (*models.Experience, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	exp := &models.Experience{
		ID:          id,
		Company:     req.Company,
		Position:    req.Position,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsCurrent:   req.IsCurrent,
	}

	if err := s.repo.Update(ctx, exp); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("experiences")
	return updated, nil
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.ContentChanged("experiences")
	return nil
}

func (s *experienceService) Reorder(ctx context.Context, req *models.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteExperienceRepo(tx)
		return txRepo.UpdateOrderIndexes(ctx, req.Items)
	})
	if err != nil {
		return err
	}

	s.notifier.ContentChanged("experiences")
	return nil
}
