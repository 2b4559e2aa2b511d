// Package static, React frontend build çıktısını binary'ye gömer ve
// SPA fallback ile servis eder.
//
// Build sırasında client/dist/ içeriği static/dist/ dizinine kopyalanır,
// ardından Go derleyicisi bu dosyaları binary'ye gömer.
//
// Development modunda dist/ içi boş olabilir (.gitkeep) —
// bu durumda Vite dev server frontend'i servis eder.
//
// Production'da binary frontend'i doğrudan servis eder: bilinen dosyalar
// (assets, index.html) doğrudan döner, bilinmeyen her path index.html'e
// düşer — client-side routing (/admin, /login) böyle çalışır.
package static

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

// frontendFS, dist/ dizinindeki frontend build dosyalarını içerir.
// "all:" prefix'i .gitkeep gibi nokta ile başlayan dosyaları da dahil eder.
//
//go:embed all:dist
var frontendFS embed.FS

// Handler, gömülü frontend'i SPA fallback ile servis eden http.Handler döner.
func Handler() http.Handler {
	dist, err := fs.Sub(frontendFS, "dist")
	if err != nil {
		// embed derleme zamanında garanti — buraya düşülmez.
		panic(err)
	}

	fileServer := http.FileServer(http.FS(dist))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "index.html"
		}

		if _, err := fs.Stat(dist, path); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		// Bilinmeyen path → SPA fallback.
		index, err := fs.ReadFile(dist, "index.html")
		if err != nil {
			// Dev modunda dist boş — frontend'i Vite servis eder.
			http.Error(w, "frontend build not embedded", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(index)
	})
}
