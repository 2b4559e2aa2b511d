package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/services"
)

// AchievementHandler, başarı endpoint'leri.
type AchievementHandler struct {
	achievementService services.AchievementService
}

func NewAchievementHandler(achievementService services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// List godoc
// GET /api/site/achievements — public.
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.achievementService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, achievements)
}

// Create godoc
// POST /api/admin/achievements
func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAchievementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	achievement, err := h.achievementService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, achievement)
}

// Update godoc
// PUT /api/admin/achievements/{id}
func (h *AchievementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.CreateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	achievement, err := h.achievementService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, achievement)
}

// Delete godoc
// DELETE /api/admin/achievements/{id}
func (h *AchievementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.achievementService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "achievement deleted"})
}

// Reorder godoc
// PATCH /api/admin/achievements/reorder
func (h *AchievementHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.achievementService.Reorder(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "achievements reordered"})
}
