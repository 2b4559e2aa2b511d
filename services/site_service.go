package services

import (
	"context"
	"time"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg/cache"
	"github.com/akinalp/vitrin/repository"
)

// siteCacheTTL: public toplu içerik bu kadar süre cache'te kalır.
// Admin yazmaları cache'i anında düşürdüğü için TTL sadece emniyet payıdır.
const siteCacheTTL = 30 * time.Second

const siteCacheKey = "site"

// SiteService, public sitenin toplu içerik ve istatistik okumaları.
//
// GetContent tüm bölümleri tek yanıtta toplar; singleton bölümler hiç
// kaydedilmemişse varsayılanlarıyla gelir. Yanıt kısa süreli cache'lenir —
// anonim trafik her sayfa yüklemesinde DB'ye inmez.
type SiteService interface {
	GetContent(ctx context.Context) (*models.SiteContent, error)
	GetStats(ctx context.Context) (*models.SiteStats, error)
	InvalidateCache()
}

type siteService struct {
	sections        SectionService
	skillRepo       repository.SkillRepository
	experienceRepo  repository.ExperienceRepository
	projectRepo     repository.ProjectRepository
	educationRepo   repository.EducationRepository
	achievementRepo repository.AchievementRepository
	cache           *cache.TTLCache[string, *models.SiteContent]
}

func NewSiteService(
	sections SectionService,
	skillRepo repository.SkillRepository,
	experienceRepo repository.ExperienceRepository,
	projectRepo repository.ProjectRepository,
	educationRepo repository.EducationRepository,
	achievementRepo repository.AchievementRepository,
) SiteService {
	return &siteService{
		sections:        sections,
		skillRepo:       skillRepo,
		experienceRepo:  experienceRepo,
		projectRepo:     projectRepo,
		educationRepo:   educationRepo,
		achievementRepo: achievementRepo,
		cache:           cache.New[string, *models.SiteContent](siteCacheTTL, time.Minute),
	}
}

func (s *siteService) GetContent(ctx context.Context) (*models.SiteContent, error) {
	if content, ok := s.cache.Get(siteCacheKey); ok {
		return content, nil
	}

	hero, _, err := s.sections.GetHero(ctx)
	if err != nil {
		return nil, err
	}

	about, _, err := s.sections.GetAbout(ctx)
	if err != nil {
		return nil, err
	}

	contactInfo, _, err := s.sections.GetContactInfo(ctx)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	experiences, err := s.experienceRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	education, err := s.educationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	achievements, err := s.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	content := &models.SiteContent{
		Hero:         hero,
		About:        about,
		ContactInfo:  contactInfo,
		Skills:       GroupSkills(skills),
		Experiences:  experiences,
		Projects:     projects,
		Education:    education,
		Achievements: achievements,
	}

	s.cache.Set(siteCacheKey, content)
	return content, nil
}

func (s *siteService) GetStats(ctx context.Context) (*models.SiteStats, error) {
	projectCount, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	skillCount, err := s.skillRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	experienceCount, err := s.experienceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	achievementCount, err := s.achievementRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.SiteStats{
		ProjectCount:     projectCount,
		SkillCount:       skillCount,
		ExperienceCount:  experienceCount,
		AchievementCount: achievementCount,
	}, nil
}

// InvalidateCache, admin yazmalarından sonra ContentNotifier tarafından çağrılır.
func (s *siteService) InvalidateCache() {
	s.cache.Delete(siteCacheKey)
}

// GroupSkills, düz yetenek listesini kategori bazında gruplar.
// Kategori sırası, listedeki ilk görülme sırasıdır — order_index
// kategoriler arası sıralamayı da dolaylı belirler.
func GroupSkills(skills []models.Skill) []models.SkillGroup {
	groups := []models.SkillGroup{}
	indexByCategory := map[string]int{}

	for _, skill := range skills {
		idx, ok := indexByCategory[skill.Category]
		if !ok {
			idx = len(groups)
			indexByCategory[skill.Category] = idx
			groups = append(groups, models.SkillGroup{Category: skill.Category, Skills: []models.Skill{}})
		}
		groups[idx].Skills = append(groups[idx].Skills, skill)
	}

	return groups
}
