package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/ws"
)

// fakeHeroRepo, in-memory singleton davranışı taklit eder.
type fakeHeroRepo struct {
	hero *models.HeroSection
	err  error
}

func (f *fakeHeroRepo) Get(ctx context.Context) (*models.HeroSection, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.hero == nil {
		return nil, pkg.ErrNotFound
	}
	return f.hero, nil
}

func (f *fakeHeroRepo) Upsert(ctx context.Context, hero *models.HeroSection) error {
	hero.ID = "hero-1"
	f.hero = hero
	return nil
}

type fakeAboutRepo struct {
	about *models.AboutSection
}

func (f *fakeAboutRepo) Get(ctx context.Context) (*models.AboutSection, error) {
	if f.about == nil {
		return nil, pkg.ErrNotFound
	}
	return f.about, nil
}

func (f *fakeAboutRepo) Upsert(ctx context.Context, about *models.AboutSection) error {
	about.ID = "about-1"
	f.about = about
	return nil
}

type fakeContactInfoRepo struct {
	info *models.ContactInfo
}

func (f *fakeContactInfoRepo) Get(ctx context.Context) (*models.ContactInfo, error) {
	if f.info == nil {
		return nil, pkg.ErrNotFound
	}
	return f.info, nil
}

func (f *fakeContactInfoRepo) Upsert(ctx context.Context, info *models.ContactInfo) error {
	info.ID = "contact-1"
	f.info = info
	return nil
}

// fakePublisher, broadcast edilen event'leri toplar.
type fakePublisher struct {
	events []ws.Event
}

func (f *fakePublisher) BroadcastToAll(event ws.Event) {
	f.events = append(f.events, event)
}

func newTestSectionService(hub ws.EventPublisher) (SectionService, *fakeHeroRepo) {
	heroRepo := &fakeHeroRepo{}
	notifier := NewContentNotifier(hub, nil)
	svc := NewSectionService(heroRepo, &fakeAboutRepo{}, &fakeContactInfoRepo{}, notifier)
	return svc, heroRepo
}

func TestGetHeroFallsBackToDefault(t *testing.T) {
	svc, _ := newTestSectionService(&fakePublisher{})

	hero, defaulted, err := svc.GetHero(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !defaulted {
		t.Fatal("empty table should report defaulted=true")
	}
	if hero.Title == "" {
		t.Fatal("default hero should have a title")
	}
	if hero.ID != "" {
		t.Fatalf("default hero should have empty ID, got %q", hero.ID)
	}
}

func TestGetHeroReturnsStoredContent(t *testing.T) {
	svc, repo := newTestSectionService(&fakePublisher{})
	repo.hero = &models.HeroSection{ID: "hero-1", Title: "Merhaba"}

	hero, defaulted, err := svc.GetHero(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if defaulted {
		t.Fatal("stored content should report defaulted=false")
	}
	if hero.Title != "Merhaba" {
		t.Fatalf("got title %q", hero.Title)
	}
}

func TestGetHeroPropagatesRepoError(t *testing.T) {
	svc, repo := newTestSectionService(&fakePublisher{})
	repo.err = fmt.Errorf("disk on fire")

	_, _, err := svc.GetHero(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestUpsertHeroValidatesAndNotifies(t *testing.T) {
	pub := &fakePublisher{}
	svc, repo := newTestSectionService(pub)

	_, err := svc.UpsertHero(context.Background(), &models.UpsertHeroRequest{Title: "  "})
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("blank title should be ErrBadRequest, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatal("failed upsert should not broadcast")
	}

	hero, err := svc.UpsertHero(context.Background(), &models.UpsertHeroRequest{Title: "Merhaba"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.ID == "" || repo.hero == nil {
		t.Fatal("upsert should persist the section")
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Op != ws.OpContentUpdate {
		t.Fatalf("op = %q", ev.Op)
	}
	data, ok := ev.Data.(ws.ContentUpdateData)
	if !ok || data.Section != "hero" {
		t.Fatalf("data = %#v", ev.Data)
	}
}

func TestGetContactInfoDefault(t *testing.T) {
	svc, _ := newTestSectionService(&fakePublisher{})

	info, defaulted, err := svc.GetContactInfo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !defaulted {
		t.Fatal("expected defaulted=true")
	}
	if info.Email == "" {
		t.Fatal("default contact info should carry an email")
	}
}
