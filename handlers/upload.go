package handlers

import (
	"net/http"

	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/services"
)

// maxUploadMemory: multipart form parse ederken bellekte tutulacak
// maksimum boyut; kalan kısım geçici dosyaya taşar.
const maxUploadMemory = 10 << 20 // 10MB

// UploadHandler, medya yükleme endpoint'leri.
type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload godoc
// POST /api/admin/upload?folder=<hero|about|projects|education|resume>
// multipart/form-data, dosya alanı: "file"
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")
	if folder == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "folder query parameter is required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	media, err := h.uploadService.Upload(r.Context(), folder, file, header)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, media)
}

// List godoc
// GET /api/admin/media — yüklenen dosyaların envanteri.
func (h *UploadHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.uploadService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, files)
}

// Delete godoc
// DELETE /api/admin/media/{id} — kayıt + diskteki dosya birlikte silinir.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uploadService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "media deleted"})
}
