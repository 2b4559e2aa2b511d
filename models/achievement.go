package models

import (
	"fmt"
	"strings"
	"time"
)

// Achievement — ödül, sertifika veya öne çıkan başarı kartı.
// Renk alanları frontend'in stil token'ları; backend içerik olarak saklar.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	BgColor     *string   `json:"bg_color"`
	BorderColor *string   `json:"border_color"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateAchievementRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	BgColor     *string `json:"bg_color"`
	BorderColor *string `json:"border_color"`
}

func (r *CreateAchievementRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
