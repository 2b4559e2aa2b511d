package models

import (
	"fmt"
	"strings"
	"time"
)

// Experience, iş deneyimi zaman çizelgesindeki bir kayıt.
// EndDate nil ise pozisyon halen devam ediyor demektir (IsCurrent ile birlikte).
type Experience struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	IsCurrent   bool      `json:"is_current"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateExperienceRequest struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   bool    `json:"is_current"`
}

func (r *CreateExperienceRequest) Validate() error {
	r.Company = strings.TrimSpace(r.Company)
	r.Position = strings.TrimSpace(r.Position)
	r.StartDate = strings.TrimSpace(r.StartDate)
	if r.Company == "" {
		return fmt.Errorf("company is required")
	}
	if r.Position == "" {
		return fmt.Errorf("position is required")
	}
	if r.StartDate == "" {
		return fmt.Errorf("start_date is required")
	}
	// Devam eden pozisyonda bitiş tarihi anlamsız, sessizce temizlenir.
	if r.IsCurrent {
		r.EndDate = nil
	}
	return nil
}
