package models

import (
	"fmt"
	"strings"
	"time"
)

// Skill, yetenekler bölümündeki tek bir satır.
// Kategori bazında gruplanır; sıralama order_index ile belirlenir.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateSkillRequest hem create hem update için kullanılır — update tam overwrite.
type CreateSkillRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

func (r *CreateSkillRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Category == "" {
		r.Category = "general"
	}
	if r.Proficiency < 0 || r.Proficiency > 100 {
		return fmt.Errorf("proficiency must be between 0 and 100")
	}
	return nil
}
