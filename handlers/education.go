package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/services"
)

// EducationHandler, eğitim endpoint'leri.
type EducationHandler struct {
	educationService services.EducationService
}

func NewEducationHandler(educationService services.EducationService) *EducationHandler {
	return &EducationHandler{educationService: educationService}
}

// List godoc
// GET /api/site/education — public.
func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.educationService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, entries)
}

// Create godoc
// POST /api/admin/education
func (h *EducationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEducationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	edu, err := h.educationService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, edu)
}

// Update godoc
// PUT /api/admin/education/{id}
func (h *EducationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.CreateEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	edu, err := h.educationService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, edu)
}

// Delete godoc
// DELETE /api/admin/education/{id}
func (h *EducationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.educationService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "education entry deleted"})
}

// Reorder godoc
// PATCH /api/admin/education/reorder
func (h *EducationHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.educationService.Reorder(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "education reordered"})
}
