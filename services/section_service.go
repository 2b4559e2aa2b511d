package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/repository"
)

// SectionService, üç singleton bölümün (hero, about, contact info)
// okuma ve upsert işlemlerini toplar.
//
// Get* metodları hiç kayıt yoksa varsayılan içerikle döner (defaulted=true) —
// public site hiçbir zaman boş bölüm render etmez. Admin tarafı da aynı
// varsayılanı form başlangıcı olarak kullanır.
//
// Upsert'ler tam satır overwrite'tır; iki tarayıcı sekmesi yarışırsa
// son yazan kazanır, versiyon kontrolü yoktur.
type SectionService interface {
	GetHero(ctx context.Context) (*models.HeroSection, bool, error)
	UpsertHero(ctx context.Context, req *models.UpsertHeroRequest) (*models.HeroSection, error)
	GetAbout(ctx context.Context) (*models.AboutSection, bool, error)
	UpsertAbout(ctx context.Context, req *models.UpsertAboutRequest) (*models.AboutSection, error)
	GetContactInfo(ctx context.Context) (*models.ContactInfo, bool, error)
	UpsertContactInfo(ctx context.Context, req *models.UpsertContactInfoRequest) (*models.ContactInfo, error)
}

type sectionService struct {
	heroRepo    repository.HeroRepository
	aboutRepo   repository.AboutRepository
	contactRepo repository.ContactInfoRepository
	notifier    *ContentNotifier
}

func NewSectionService(
	heroRepo repository.HeroRepository,
	aboutRepo repository.AboutRepository,
	contactRepo repository.ContactInfoRepository,
	notifier *ContentNotifier,
) SectionService {
	return &sectionService{
		heroRepo:    heroRepo,
		aboutRepo:   aboutRepo,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// ─── Varsayılan içerik ───
//
// Bölüm hiç kaydedilmemişse dönen sabit objeler. ID boştur — frontend
// "henüz kayıt yok" durumunu isterse bundan anlayabilir ama sayfa yine dolu görünür.

func strPtr(s string) *string { return &s }

// DefaultHero, hero bölümü için varsayılan içerik.
func DefaultHero() *models.HeroSection {
	return &models.HeroSection{
		Title:              "Hi, I'm a Developer",
		Subtitle:           strPtr("Full Stack Developer"),
		Description:        strPtr("I build things for the web."),
		CTAText:            strPtr("Get in touch"),
		CTALink:            strPtr("#contact"),
		AvailabilityStatus: strPtr("available"),
	}
}

// DefaultAbout, hakkımda bölümü için varsayılan içerik.
func DefaultAbout() *models.AboutSection {
	return &models.AboutSection{
		Title:   "About Me",
		Content: strPtr("I'm a developer who enjoys building clean, reliable software."),
	}
}

// DefaultContactInfo, iletişim bölümü için varsayılan içerik.
func DefaultContactInfo() *models.ContactInfo {
	return &models.ContactInfo{
		Email: "hello@example.com",
	}
}

// ─── Hero ───

func (s *sectionService) GetHero(ctx context.Context) (*models.HeroSection, bool, error) {
	hero, err := s.heroRepo.Get(ctx)
	if errors.Is(err, pkg.ErrNotFound) {
		return DefaultHero(), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return hero, false, nil
}

func (s *sectionService) UpsertHero(ctx context.Context, req *models.UpsertHeroRequest) (*models.HeroSection, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hero := &models.HeroSection{
		Title:              req.Title,
		Subtitle:           req.Subtitle,
		Description:        req.Description,
		CTAText:            req.CTAText,
		CTALink:            req.CTALink,
		AvailabilityStatus: req.AvailabilityStatus,
		ProfileImageURL:    req.ProfileImageURL,
		BackgroundImageURL: req.BackgroundImageURL,
	}

	if err := s.heroRepo.Upsert(ctx, hero); err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("hero")
	return hero, nil
}

// ─── About ───

func (s *sectionService) GetAbout(ctx context.Context) (*models.AboutSection, bool, error) {
	about, err := s.aboutRepo.Get(ctx)
	if errors.Is(err, pkg.ErrNotFound) {
		return DefaultAbout(), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return about, false, nil
}

func (s *sectionService) UpsertAbout(ctx context.Context, req *models.UpsertAboutRequest) (*models.AboutSection, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	about := &models.AboutSection{
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		ResumeURL: req.ResumeURL,
	}

	if err := s.aboutRepo.Upsert(ctx, about); err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("about")
	return about, nil
}

// ─── Contact Info ───

func (s *sectionService) GetContactInfo(ctx context.Context) (*models.ContactInfo, bool, error) {
	info, err := s.contactRepo.Get(ctx)
	if errors.Is(err, pkg.ErrNotFound) {
		return DefaultContactInfo(), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return info, false, nil
}

func (s *sectionService) UpsertContactInfo(ctx context.Context, req *models.UpsertContactInfoRequest) (*models.ContactInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	info := &models.ContactInfo{
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		GitHubURL:   req.GitHubURL,
		LinkedInURL: req.LinkedInURL,
		TwitterURL:  req.TwitterURL,
		WebsiteURL:  req.WebsiteURL,
	}

	if err := s.contactRepo.Upsert(ctx, info); err != nil {
		return nil, err
	}

	s.notifier.ContentChanged("contact_info")
	return info, nil
}
