package models

import (
	"fmt"
	"strings"
	"time"
)

// Project, portföydeki bir proje kartı.
// Technologies API'de dizi olarak gezer; istek tarafında hem dizi hem
// virgülle ayrılmış string kabul edilir (admin formu string gönderir).
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	ImageURL        *string   `json:"image_url"`
	VideoURL        *string   `json:"video_url"`
	DemoURL         *string   `json:"demo_url"`
	GitHubURL       *string   `json:"github_url"`
	Technologies    []string  `json:"technologies"`
	Featured        bool      `json:"featured"`
	OrderIndex      int       `json:"order_index"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateProjectRequest struct {
	Title           string           `json:"title"`
	Description     *string          `json:"description"`
	LongDescription *string          `json:"long_description"`
	ImageURL        *string          `json:"image_url"`
	VideoURL        *string          `json:"video_url"`
	DemoURL         *string          `json:"demo_url"`
	GitHubURL       *string          `json:"github_url"`
	Technologies    TechnologiesList `json:"technologies"`
	Featured        bool             `json:"featured"`
}

func (r *CreateProjectRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// TechnologiesList JSON'da hem ["Go","React"] hem "Go, React" biçimini çözer.
type TechnologiesList []string

func (t *TechnologiesList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*t = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var arr []string
		if err := jsonUnmarshal(data, &arr); err != nil {
			return err
		}
		*t = normalizeTechnologies(arr)
		return nil
	}
	var s string
	if err := jsonUnmarshal(data, &s); err != nil {
		return err
	}
	*t = normalizeTechnologies(strings.Split(s, ","))
	return nil
}

func normalizeTechnologies(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
