package models

import (
	"fmt"
	"strings"
	"time"
)

// HeroSection, ana sayfanın en üst bölümünü temsil eder.
// Singleton'dır — tabloda en fazla bir satır bulunur, upsert-only.
type HeroSection struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Subtitle           *string   `json:"subtitle"`
	Description        *string   `json:"description"`
	CTAText            *string   `json:"cta_text"`
	CTALink            *string   `json:"cta_link"`
	AvailabilityStatus *string   `json:"availability_status"`
	ProfileImageURL    *string   `json:"profile_image_url"`
	BackgroundImageURL *string   `json:"background_image_url"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpsertHeroRequest, hero bölümünü kaydederken gelen veri.
// Tam satır overwrite — partial update yoktur, form her alanı gönderir.
type UpsertHeroRequest struct {
	Title              string  `json:"title"`
	Subtitle           *string `json:"subtitle"`
	Description        *string `json:"description"`
	CTAText            *string `json:"cta_text"`
	CTALink            *string `json:"cta_link"`
	AvailabilityStatus *string `json:"availability_status"`
	ProfileImageURL    *string `json:"profile_image_url"`
	BackgroundImageURL *string `json:"background_image_url"`
}

// Validate — title zorunlu; boş title ile kaydetme network çağrısı yapmadan reddedilir.
func (r *UpsertHeroRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
