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

// EducationService, eğitim listesi CRUD + sıralama işlemleri.
type EducationService interface {
	Create(ctx context.Context, req *models.CreateEducationRequest) (*models.Education, error)
	GetAll(ctx context.Context) ([]models.Education, error)
	GetByID(ctx context.Context, id string) (*models.Education, error)
	Update(ctx context.Context, id string, req *models.CreateEducationRequest) (*models.Education, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, req *models.ReorderRequest) error
}

type educationService struct {
	db       *sql.DB
	repo     repository.EducationRepository
	notifier *ContentNotifier
}

func NewEducationService(db *sql.DB, repo repository.EducationRepository, notifier *ContentNotifier) EducationService {
	return &educationService{db: db, repo: repo, notifier: notifier}
}

func (s *educationService) Create(ctx context.Context, req *models.CreateEducationRequest) (*models.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	edu := &models.Education{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
	}

	if err := s.repo.Create(ctx, edu); err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("education")
	return edu, nil
}

func (s *educationService) GetAll(ctx context.Context) ([]models.Education, error) {
	return s.repo.GetAll(ctx)
}

func (s *educationService) GetByID(ctx context.Context, id string) (*models.Education, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *educationService) Update(ctx context.Context, id string, req *models.CreateEducationRequest) (*models.Education, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	edu := &models.Education{
		ID:           id,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
	}

	if err := s.repo.Update(ctx, edu); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("education")
	return updated, nil
}

func (s *educationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.ContentChanged("education")
	return nil
}

func (s *educationService) Reorder(ctx context.Context, req *models.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteEducationRepo(tx)
		return txRepo.UpdateOrderIndexes(ctx, req.Items)
	})
	if err != nil {
		return err
	}

	s.notifier.ContentChanged("education")
	return nil
}
