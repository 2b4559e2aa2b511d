package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/repository"
)

// UploadService, medya yükleme iş mantığı interface'i.
type UploadService interface {
	Upload(ctx context.Context, folder string, file multipart.File, header *multipart.FileHeader) (*models.MediaFile, error)
	List(ctx context.Context) ([]models.MediaFile, error)
	Delete(ctx context.Context, id string) error
}

// allowedFolders, yüklemeye açık klasörler. URL'den gelen folder değeri
// bu listede yoksa istek reddedilir — path traversal'a ek bariyer.
var allowedFolders = map[string]bool{
	"hero":      true,
	"about":     true,
	"projects":  true,
	"education": true,
	"resume":    true,
}

type uploadService struct {
	mediaRepo    repository.MediaRepository
	uploadDir    string
	maxImageSize int64
	maxVideoSize int64
}

// NewUploadService, constructor.
func NewUploadService(
	mediaRepo repository.MediaRepository,
	uploadDir string,
	maxImageSize int64,
	maxVideoSize int64,
) UploadService {
	return &uploadService{
		mediaRepo:    mediaRepo,
		uploadDir:    uploadDir,
		maxImageSize: maxImageSize,
		maxVideoSize: maxVideoSize,
	}
}

// Upload, dosyayı doğrular, diske kaydeder ve DB'ye medya kaydı oluşturur.
//
// Kurallar:
// - folder allowlist'te olmalı
// - MIME prefix image/* veya video/* olmalı
// - image için maxImageSize (5MB), video için maxVideoSize (50MB) tavanı
//
// Dosya adı {uuid}_{sanitized_original} — çakışma ve güvenlik için.
func (s *uploadService) Upload(ctx context.Context, folder string, file multipart.File, header *multipart.FileHeader) (*models.MediaFile, error) {
	if !allowedFolders[folder] {
		return nil, fmt.Errorf("%w: invalid upload folder: %s", pkg.ErrBadRequest, folder)
	}

	contentType := header.Header.Get("Content-Type")
	mimeBase := strings.TrimSpace(strings.Split(contentType, ";")[0])

	var maxSize int64
	switch {
	case strings.HasPrefix(mimeBase, "image/"):
		maxSize = s.maxImageSize
	case strings.HasPrefix(mimeBase, "video/"):
		maxSize = s.maxVideoSize
	default:
		return nil, fmt.Errorf("%w: file type not allowed: %s", pkg.ErrBadRequest, mimeBase)
	}

	if header.Size > maxSize {
		return nil, fmt.Errorf("%w: file too large (max %dMB)", pkg.ErrBadRequest, maxSize/(1024*1024))
	}

	safeFilename := sanitizeFilename(header.Filename)
	diskFilename := uuid.NewString() + "_" + safeFilename

	folderPath := filepath.Join(s.uploadDir, folder)
	if err := os.MkdirAll(folderPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload folder: %w", err)
	}

	destPath := filepath.Join(folderPath, diskFilename)
	destFile, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, file); err != nil {
		// Hata durumunda dosyayı temizle
		os.Remove(destPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	media := &models.MediaFile{
		Folder:   folder,
		Filename: diskFilename,
		FileURL:  "/api/uploads/" + folder + "/" + diskFilename,
		MimeType: mimeBase,
		FileSize: header.Size,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		os.Remove(destPath) // Hata durumunda dosyayı temizle
		return nil, fmt.Errorf("failed to create media record: %w", err)
	}

	return media, nil
}

// List, admin panelin medya envanterini döner.
func (s *uploadService) List(ctx context.Context) ([]models.MediaFile, error) {
	return s.mediaRepo.GetAll(ctx)
}

// Delete, hem DB kaydını hem diskteki dosyayı kaldırır.
// Dosya diskte yoksa sessiz geçilir — kayıt yine silinir.
func (s *uploadService) Delete(ctx context.Context, id string) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return err
	}

	diskPath := filepath.Join(s.uploadDir, media.Folder, media.Filename)
	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file from disk: %w", err)
	}

	return nil
}

// sanitizeFilename, dosya adını güvenli hale getirir.
// Path traversal saldırılarını önler (../../etc/passwd gibi).
func sanitizeFilename(name string) string {
	name = filepath.Base(name)

	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '\x00' {
			return -1
		}
		return r
	}, name)

	if name == "" || name == "." || name == ".." {
		name = "unnamed"
	}

	return name
}
