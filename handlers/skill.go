package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/services"
)

// SkillHandler, yetenek listesi endpoint'leri.
type SkillHandler struct {
	skillService services.SkillService
}

func NewSkillHandler(skillService services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// List godoc
// GET /api/site/skills — public, kategori bazında gruplu.
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, services.GroupSkills(skills))
}

// AdminList godoc
// GET /api/admin/skills — düz liste, order_index sırasıyla.
func (h *SkillHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, skills)
}

// Create godoc
// POST /api/admin/skills
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSkillRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	skill, err := h.skillService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, skill)
}

// Update godoc
// PUT /api/admin/skills/{id} — tam overwrite.
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	skill, err := h.skillService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, skill)
}

// Delete godoc
// DELETE /api/admin/skills/{id}
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.skillService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "skill deleted"})
}

// Reorder godoc
// PATCH /api/admin/skills/reorder
// Body: { "items": [ { "id": "...", "order_index": 0 }, ... ] }
func (h *SkillHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.skillService.Reorder(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "skills reordered"})
}
