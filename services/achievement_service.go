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

// AchievementService, başarı listesi CRUD + sıralama işlemleri.
type AchievementService interface {
	Create(ctx context.Context, req *models.CreateAchievementRequest) (*models.Achievement, error)
	GetAll(ctx context.Context) ([]models.Achievement, error)
	GetByID(ctx context.Context, id string) (*models.Achievement, error)
	Update(ctx context.Context, id string, req *models.CreateAchievementRequest) (*models.Achievement, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, req *models.ReorderRequest) error
}

type achievementService struct {
	db       *sql.DB
	repo     repository.AchievementRepository
	notifier *ContentNotifier
}

func NewAchievementService(db *sql.DB, repo repository.AchievementRepository, notifier *ContentNotifier) AchievementService {
	return &achievementService{db: db, repo: repo, notifier: notifier}
}

func (s *achievementService) Create(ctx context.Context, req *models.CreateAchievementRequest) (*models.Achievement, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	achievement := &models.Achievement{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		BgColor:     req.BgColor,
		BorderColor: req.BorderColor,
	}

	if err := s.repo.Create(ctx, achievement); err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("achievements")
	return achievement, nil
}

func (s *achievementService) GetAll(ctx context.Context) ([]models.Achievement, error) {
	return s.repo.GetAll(ctx)
}

func (s *achievementService) GetByID(ctx context.Context, id string) (*models.Achievement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *achievementService) Update(ctx context.Context, id string, req *models.CreateAchievementRequest) (*models.Achievement, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	achievement := &models.Achievement{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		BgColor:     req.BgColor,
		BorderColor: req.BorderColor,
	}

	if err := s.repo.Update(ctx, achievement); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("achievements")
	return updated, nil
}

func (s *achievementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.ContentChanged("achievements")
	return nil
}

func (s *achievementService) Reorder(ctx context.Context, req *models.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteAchievementRepo(tx)
		return txRepo.UpdateOrderIndexes(ctx, req.Items)
	})
	if err != nil {
		return err
	}

	s.notifier.ContentChanged("achievements")
	return nil
}
