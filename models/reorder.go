package models

import "fmt"

// OrderUpdate, tek bir kaydın yeni sıra numarası.
type OrderUpdate struct {
	ID         string `json:"id"`
	OrderIndex int    `json:"order_index"`
}

// ReorderRequest, sürükle-bırak sonrası tüm listenin yeni sırası.
// Güncelleme tek transaction içinde yapılır; kısmi sonuç kalmaz.
type ReorderRequest struct {
	Items []OrderUpdate `json:"items"`
}

func (r *ReorderRequest) Validate() error {
	if len(r.Items) == 0 {
		return fmt.Errorf("items cannot be empty")
	}
	seen := make(map[string]bool, len(r.Items))
	for _, it := range r.Items {
		if it.ID == "" {
			return fmt.Errorf("item id is required")
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate item id: %s", it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}
