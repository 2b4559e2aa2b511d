package models

import (
	"fmt"
	"strings"
	"time"
)

// AboutSection hakkımda bölümü — singleton satır.
type AboutSection struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	ImageURL  *string   `json:"image_url"`
	ResumeURL *string   `json:"resume_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpsertAboutRequest struct {
	Title     string  `json:"title"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"image_url"`
	ResumeURL *string `json:"resume_url"`
}

func (r *UpsertAboutRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
