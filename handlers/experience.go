package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/services"
)

// ExperienceHandler, iş deneyimi endpoint'leri.
type ExperienceHandler struct {
	experienceService services.ExperienceService
}

func NewExperienceHandler(experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// List godoc
// GET /api/site/experiences — public.
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.experienceService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, experiences)
}

// Create godoc
// POST /api/admin/experiences
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExperienceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.experienceService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, exp)
}

// Update godoc
// PUT /api/admin/experiences/{id}
func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.experienceService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, exp)
}

// Delete godoc
// DELETE /api/admin/experiences/{id}
func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.experienceService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "experience deleted"})
}

// Reorder godoc
// PATCH /api/admin/experiences/reorder
func (h *ExperienceHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.experienceService.Reorder(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "experiences reordered"})
}
