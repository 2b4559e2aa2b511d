package handlers

import (
	"fmt"
	"net/http"
	"strings"
)

// MetaHandler, SEO ve sağlık endpoint'leri: robots.txt, sitemap.xml, health.
// publicURL, sitemap'teki mutlak URL'ler için config'den gelir.
type MetaHandler struct {
	publicURL string
}

func NewMetaHandler(publicURL string) *MetaHandler {
	return &MetaHandler{publicURL: strings.TrimRight(publicURL, "/")}
}

// Health godoc
// GET /api/health
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}

// Robots godoc
// GET /robots.txt
// Admin paneli arama motorlarından gizlenir.
func (h *MetaHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", h.publicURL)
}

// publicRoutes, sitemap'te listelenen SPA sayfaları.
var publicRoutes = []string{"/", "/projects"}

// Sitemap godoc
// GET /sitemap.xml
func (h *MetaHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, route := range publicRoutes {
		b.WriteString("  <url><loc>" + h.publicURL + route + "</loc></url>\n")
	}
	b.WriteString("</urlset>\n")

	fmt.Fprint(w, b.String())
}
