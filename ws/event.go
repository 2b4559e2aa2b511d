// Package ws, WebSocket bağlantı yönetimi ve gerçek zamanlı event dağıtımını sağlar.
//
// Mimari:
// - Hub: Tüm bağlantıları yöneten merkezi yapı (Observer pattern)
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Client-server arası iletilen mesaj formatı
//
// Event akışı:
// 1. Admin bir bölümü kaydeder → HTTP → Service → DB kayıt
// 2. Service, Hub'ın BroadcastToAll metodunu çağırır
// 3. Hub, content_update event'ini tüm açık sayfalara iletir
// 4. Public sayfa event'i alır ve ilgili bölümü yeniden çeker
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op (operation): Event türü — "content_update", "heartbeat" vb.
// Data: Event'e özgü payload.
// Seq (sequence number): Her outbound event'e verilen artan sayı;
// frontend eksik event tespiti için takip edebilir.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client periyodik gönderir — "hâlâ bağlıyım" sinyali
)

// Server → Client operasyonları
const (
	OpHeartbeatAck  = "heartbeat_ack"  // Heartbeat'e yanıt
	OpContentUpdate = "content_update" // Bir içerik bölümü değişti — sayfa yeniden çeksin
)

// ContentUpdateData, content_update event'inin payload'ı.
// Section hangi bölümün değiştiğini söyler: "hero", "skills", "projects" vb.
type ContentUpdateData struct {
	Section string `json:"section"`
}
