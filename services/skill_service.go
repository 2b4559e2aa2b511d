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

// SkillService, yetenek listesi CRUD + sıralama işlemleri.
//
// Create yeni kaydı listenin sonuna ekler (max order_index + 1);
// silinmelerden sonra oluşan boşluklar kapatılmaz, sıralama görecelidir.
type SkillService interface {
	Create(ctx context.Context, req *models.CreateSkillRequest) (*models.Skill, error)
	GetAll(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	Update(ctx context.Context, id string, req *models.CreateSkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, req *models.ReorderRequest) error
}

type skillService struct {
	db       *sql.DB // Reorder'da WithTx ile atomik toplu güncelleme için
	repo     repository.SkillRepository
	notifier *ContentNotifier
}

func NewSkillService(db *sql.DB, repo repository.SkillRepository, notifier *ContentNotifier) SkillService {
	return &skillService{db: db, repo: repo, notifier: notifier}
}

func (s *skillService) Create(ctx context.Context, req *models.CreateSkillRequest) (*models.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	skill := &models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("skills")
	return skill, nil
}

func (s *skillService) GetAll(ctx context.Context) ([]models.Skill, error) {
	return s.repo.GetAll(ctx)
}

func (s *skillService) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

// Update tam overwrite'tır — admin formu her alanı gönderir.
func (s *skillService) Update(ctx context.Context, id string, req *models.CreateSkillRequest) (*models.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	skill := &models.Skill{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("skills")
	return updated, nil
}

func (s *skillService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.ContentChanged("skills")
	return nil
}

// Reorder, sürükle-bırak sonrası tüm listenin yeni sırasını tek
// transaction'da yazar — kısmi sıralama asla görünmez.
func (s *skillService) Reorder(ctx context.Context, req *models.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txRepo := repository.NewSQLiteSkillRepo(tx)
		return txRepo.UpdateOrderIndexes(ctx, req.Items)
	})
	if err != nil {
		return err
	}

	s.notifier.ContentChanged("skills")
	return nil
}
