package models

import (
	"encoding/json"
	"regexp"
)

// Basit RFC-benzeri kontrol — tam RFC 5322 değil, kasıtlı olarak gevşek.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// jsonUnmarshal, özel UnmarshalJSON implementasyonlarında sonsuz
// özyinelemeye düşmemek için ortak yardımcı.
func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
