package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
)

type fakeMediaRepo struct {
	files     map[string]*models.MediaFile
	nextID    int
	createErr error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{files: map[string]*models.MediaFile{}}
}

func (f *fakeMediaRepo) Create(ctx context.Context, file *models.MediaFile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	file.ID = fmt.Sprintf("media-%d", f.nextID)
	cp := *file
	f.files[file.ID] = &cp
	return nil
}

func (f *fakeMediaRepo) GetByID(ctx context.Context, id string) (*models.MediaFile, error) {
	m, ok := f.files[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMediaRepo) GetAll(ctx context.Context) ([]models.MediaFile, error) {
	out := make([]models.MediaFile, 0, len(f.files))
	for _, m := range f.files {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMediaRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.files[id]; !ok {
		return pkg.ErrNotFound
	}
	delete(f.files, id)
	return nil
}

// fakeUpload, multipart.File + header çifti üretir — gerçek HTTP isteği kurmadan.
func fakeUpload(t *testing.T, filename, contentType, content string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	reader := multipart.NewReader(&buf, mw.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	header := form.File["file"][0]
	file, err := header.Open()
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	t.Cleanup(func() { file.Close() })

	return file, header
}

func newTestUploadService(t *testing.T, repo *fakeMediaRepo) (UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewUploadService(repo, dir, 5*1024*1024, 50*1024*1024)
	return svc, dir
}

func TestUploadStoresFileAndRecord(t *testing.T) {
	repo := newFakeMediaRepo()
	svc, dir := newTestUploadService(t, repo)

	file, header := fakeUpload(t, "cover.png", "image/png", "fake png bytes")

	media, err := svc.Upload(context.Background(), "projects", file, header)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if media.Folder != "projects" || media.MimeType != "image/png" {
		t.Fatalf("media = %+v", media)
	}
	if !strings.HasSuffix(media.Filename, "_cover.png") {
		t.Fatalf("filename should keep original suffix, got %q", media.Filename)
	}
	if media.FileURL != "/api/uploads/projects/"+media.Filename {
		t.Fatalf("file_url = %q", media.FileURL)
	}

	if _, err := os.Stat(filepath.Join(dir, "projects", media.Filename)); err != nil {
		t.Fatalf("file not on disk: %v", err)
	}
	if len(repo.files) != 1 {
		t.Fatalf("expected 1 DB record, got %d", len(repo.files))
	}
}

func TestUploadRejectsUnknownFolder(t *testing.T) {
	svc, _ := newTestUploadService(t, newFakeMediaRepo())
	file, header := fakeUpload(t, "x.png", "image/png", "data")

	_, err := svc.Upload(context.Background(), "../etc", file, header)
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestUploadRejectsDisallowedMime(t *testing.T) {
	svc, _ := newTestUploadService(t, newFakeMediaRepo())
	file, header := fakeUpload(t, "evil.sh", "application/x-sh", "#!/bin/sh")

	_, err := svc.Upload(context.Background(), "projects", file, header)
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	repo := newFakeMediaRepo()
	dir := t.TempDir()
	// 10 byte tavan — içerik 14 byte
	svc := NewUploadService(repo, dir, 10, 50)

	file, header := fakeUpload(t, "big.png", "image/png", "fourteen bytes")

	_, err := svc.Upload(context.Background(), "hero", file, header)
	if !errors.Is(err, pkg.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

// DB yazımı patlarsa diskte artık dosya kalmamalı.
func TestUploadCleansDiskOnRepoFailure(t *testing.T) {
	repo := newFakeMediaRepo()
	repo.createErr = fmt.Errorf("db locked")
	svc, dir := newTestUploadService(t, repo)

	file, header := fakeUpload(t, "cover.png", "image/png", "data")

	if _, err := svc.Upload(context.Background(), "hero", file, header); err == nil {
		t.Fatal("expected error")
	}

	entries, err := os.ReadDir(filepath.Join(dir, "hero"))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("disk should be clean, found %d entries", len(entries))
	}
}

func TestDeleteRemovesRecordAndFile(t *testing.T) {
	repo := newFakeMediaRepo()
	svc, dir := newTestUploadService(t, repo)

	file, header := fakeUpload(t, "cover.png", "image/png", "data")
	media, err := svc.Upload(context.Background(), "hero", file, header)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Delete(context.Background(), media.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "hero", media.Filename)); !os.IsNotExist(err) {
		t.Fatal("file should be removed from disk")
	}
	if err := svc.Delete(context.Background(), media.ID); !errors.Is(err, pkg.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..", "unnamed"},
		{"", "unnamed"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
