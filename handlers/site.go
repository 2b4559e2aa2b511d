package handlers

import (
	"net/http"

	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/services"
)

// SiteHandler, public toplu içerik ve istatistik endpoint'leri.
type SiteHandler struct {
	siteService services.SiteService
}

func NewSiteHandler(siteService services.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// GetContent godoc
// GET /api/site
// Tüm bölümleri tek yanıtta döner — sayfa başına tek istek.
// 30sn TTL cache arkasında; admin yazmaları cache'i anında düşürür.
func (h *SiteHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.siteService.GetContent(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, content)
}

// GetStats godoc
// GET /api/stats
// Landing page sayaçları. Auth gerekmez.
func (h *SiteHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.siteService.GetStats(r.Context())
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	pkg.JSON(w, http.StatusOK, stats)
}
