package models

import (
	"fmt"
	"strings"
	"time"
)

// ContactInfo, iletişim bölümündeki statik bilgiler — singleton satır.
// Ziyaretçi mesajları için ContactMessage'a bakın, bu sadece vitrin verisi.
type ContactInfo struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Location    *string   `json:"location"`
	GitHubURL   *string   `json:"github_url"`
	LinkedInURL *string   `json:"linkedin_url"`
	TwitterURL  *string   `json:"twitter_url"`
	WebsiteURL  *string   `json:"website_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpsertContactInfoRequest struct {
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	GitHubURL   *string `json:"github_url"`
	LinkedInURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`
	WebsiteURL  *string `json:"website_url"`
}

func (r *UpsertContactInfoRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
