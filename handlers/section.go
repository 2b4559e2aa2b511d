package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/services"
)

// SectionHandler, singleton bölümlerin (hero, about, contact info)
// public okuma ve admin upsert endpoint'leri.
type SectionHandler struct {
	sectionService services.SectionService
}

func NewSectionHandler(sectionService services.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// ─── Public okumalar ───
//
// Kayıt yoksa varsayılan içerik 200 ile döner; "default": true işareti
// frontend'e bunun placeholder olduğunu söyler. Public sayfa asla boş
// bölüm render etmez.

// GetHero godoc
// GET /api/site/hero
func (h *SectionHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, defaulted, err := h.sectionService.GetHero(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, struct {
		*models.HeroSection
		Default bool `json:"default"`
	}{hero, defaulted})
}

// GetAbout godoc
// GET /api/site/about
func (h *SectionHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, defaulted, err := h.sectionService.GetAbout(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, struct {
		*models.AboutSection
		Default bool `json:"default"`
	}{about, defaulted})
}

// GetContactInfo godoc
// GET /api/site/contact-info
func (h *SectionHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, defaulted, err := h.sectionService.GetContactInfo(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, struct {
		*models.ContactInfo
		Default bool `json:"default"`
	}{info, defaulted})
}

// ─── Admin okumalar ───
//
// Admin formu "henüz kayıt yok" ile "kayıt var" ayrımına ihtiyaç duyar;
// bu yüzden public'in aksine boş tabloda 404 döner, form boş başlar.

// AdminGetHero godoc
// GET /api/admin/hero
func (h *SectionHandler) AdminGetHero(w http.ResponseWriter, r *http.Request) {
	hero, defaulted, err := h.sectionService.GetHero(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	if defaulted {
		pkg.Error(w, pkg.ErrNotFound)
		return
	}

	pkg.JSON(w, http.StatusOK, hero)
}

// AdminGetAbout godoc
// GET /api/admin/about
func (h *SectionHandler) AdminGetAbout(w http.ResponseWriter, r *http.Request) {
	about, defaulted, err := h.sectionService.GetAbout(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	if defaulted {
		pkg.Error(w, pkg.ErrNotFound)
		return
	}

	pkg.JSON(w, http.StatusOK, about)
}

// AdminGetContactInfo godoc
// GET /api/admin/contact-info
func (h *SectionHandler) AdminGetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, defaulted, err := h.sectionService.GetContactInfo(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	if defaulted {
		pkg.Error(w, pkg.ErrNotFound)
		return
	}

	pkg.JSON(w, http.StatusOK, info)
}

// ─── Admin upsert'ler ───

// UpsertHero godoc
// PUT /api/admin/hero
func (h *SectionHandler) UpsertHero(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertHeroRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hero, err := h.sectionService.UpsertHero(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, hero)
}

// UpsertAbout godoc
// PUT /api/admin/about
func (h *SectionHandler) UpsertAbout(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertAboutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	about, err := h.sectionService.UpsertAbout(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, about)
}

// UpsertContactInfo godoc
// PUT /api/admin/contact-info
func (h *SectionHandler) UpsertContactInfo(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertContactInfoRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info, err := h.sectionService.UpsertContactInfo(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, info)
}
