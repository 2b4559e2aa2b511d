package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/akinalp/vitrin/database"
	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
)

// Gerçek SQLite ile test — pure-Go driver sayesinde CGO'suz çalışır.
// Her test kendi geçici DB dosyasını alır, migration'lar gömülü set'ten koşar.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), database.EmbeddedMigrations)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSkillCreateAssignsNextOrderIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteSkillRepo(db.Conn)
	ctx := context.Background()

	names := []string{"Go", "React", "SQLite"}
	for i, name := range names {
		skill := &models.Skill{Name: name, Category: "backend", Proficiency: 80}
		if err := repo.Create(ctx, skill); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if skill.ID == "" {
			t.Fatal("create should fill in the generated id")
		}
		if skill.OrderIndex != i {
			t.Fatalf("%s order_index = %d, want %d", name, skill.OrderIndex, i)
		}
	}
}

// Silinen kaydın order_index boşluğu kapanmaz; yeni kayıt max+1 alır.
func TestSkillOrderGapSurvivesDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteSkillRepo(db.Conn)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"Go", "React", "SQLite"} {
		skill := &models.Skill{Name: name, Category: "backend"}
		if err := repo.Create(ctx, skill); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, skill.ID)
	}

	// Ortadaki kaydı sil (order_index=1)
	if err := repo.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("delete: %v", err)
	}

	next := &models.Skill{Name: "Docker", Category: "devops"}
	if err := repo.Create(ctx, next); err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if next.OrderIndex != 3 {
		t.Fatalf("order_index = %d, want 3 (max+1, boşluk kapanmaz)", next.OrderIndex)
	}
}

func TestSkillUpdateUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteSkillRepo(db.Conn)

	err := repo.Update(context.Background(), &models.Skill{ID: "yok", Name: "X", Category: "y"})
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSkillReorderRollsBackOnUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteSkillRepo(db.Conn)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"Go", "React"} {
		skill := &models.Skill{Name: name, Category: "backend"}
		if err := repo.Create(ctx, skill); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, skill.ID)
	}

	// İlk item geçerli, ikincisi bilinmiyor — tamamı geri alınmalı.
	err := database.WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		txRepo := NewSQLiteSkillRepo(tx)
		return txRepo.UpdateOrderIndexes(ctx, []models.OrderUpdate{
			{ID: ids[0], OrderIndex: 99},
			{ID: "bilinmeyen", OrderIndex: 1},
		})
	})
	if !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	first, err := repo.GetByID(ctx, ids[0])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first.OrderIndex == 99 {
		t.Fatal("partial reorder leaked — transaction did not roll back")
	}
}

func TestSkillReorderSwapsPositions(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteSkillRepo(db.Conn)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"Go", "React"} {
		skill := &models.Skill{Name: name, Category: "backend"}
		if err := repo.Create(ctx, skill); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, skill.ID)
	}

	err := database.WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		txRepo := NewSQLiteSkillRepo(tx)
		return txRepo.UpdateOrderIndexes(ctx, []models.OrderUpdate{
			{ID: ids[0], OrderIndex: 1},
			{ID: ids[1], OrderIndex: 0},
		})
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}

	skills, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if skills[0].Name != "React" || skills[1].Name != "Go" {
		t.Fatalf("order after swap: %s, %s", skills[0].Name, skills[1].Name)
	}
}
