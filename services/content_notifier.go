package services

import (
	"github.com/akinalp/vitrin/ws"
)

// SiteCacheInvalidator, admin yazmalarından sonra public içerik cache'ini
// düşürmek için kullanılır. Pratikte SiteService bunu karşılar.
type SiteCacheInvalidator interface {
	InvalidateCache()
}

// ContentNotifier, her admin yazması sonrası yapılması gereken iki işi
// tek noktada toplar: cache invalidation + content_update broadcast.
// Mutasyon yapan tüm service'ler bunu paylaşır.
type ContentNotifier struct {
	hub   ws.EventPublisher
	cache SiteCacheInvalidator
}

func NewContentNotifier(hub ws.EventPublisher, cache SiteCacheInvalidator) *ContentNotifier {
	return &ContentNotifier{hub: hub, cache: cache}
}

// BindCache, cache invalidator'ı kuruluş sonrası bağlar.
//
// Neden constructor'da değil? SiteService, SectionService'i okur;
// SectionService yazma yolunda notifier'ı çağırır; notifier da
// SiteService cache'ini düşürür. Bu döngü main.go'da şöyle kırılır:
// notifier cache'siz oluşturulur, service'ler bağlandıktan sonra
// BindCache çağrılır. Wire-up tamamlanmadan hiçbir request işlenmez,
// bu yüzden senkronizasyon gerekmez.
func (n *ContentNotifier) BindCache(cache SiteCacheInvalidator) {
	n.cache = cache
}

// ContentChanged — önce cache düşer, sonra broadcast gider.
// Sıra önemli: broadcast'i alan sayfa yeniden fetch ettiğinde
// bayat cache'e denk gelmemeli.
func (n *ContentNotifier) ContentChanged(section string) {
	if n == nil {
		return
	}
	if n.cache != nil {
		n.cache.InvalidateCache()
	}
	if n.hub != nil {
		n.hub.BroadcastToAll(ws.Event{
			Op:   ws.OpContentUpdate,
			Data: ws.ContentUpdateData{Section: section},
		})
	}
}
