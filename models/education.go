package models

import (
	"fmt"
	"strings"
	"time"
)

// Education, eğitim geçmişindeki bir kayıt.
type Education struct {
	ID           string    `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	FieldOfStudy *string   `json:"field_of_study"`
	Description  *string   `json:"description"`
	LogoURL      *string   `json:"logo_url"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	IsCurrent    bool      `json:"is_current"`
	OrderIndex   int       `json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateEducationRequest struct {
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsCurrent    bool    `json:"is_current"`
}

func (r *CreateEducationRequest) Validate() error {
	r.Institution = strings.TrimSpace(r.Institution)
	r.Degree = strings.TrimSpace(r.Degree)
	r.StartDate = strings.TrimSpace(r.StartDate)
	if r.Institution == "" {
		return fmt.Errorf("institution is required")
	}
	if r.Degree == "" {
		return fmt.Errorf("degree is required")
	}
	if r.StartDate == "" {
		return fmt.Errorf("start_date is required")
	}
	if r.IsCurrent {
		r.EndDate = nil
	}
	return nil
}
