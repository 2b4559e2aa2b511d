package models

import (
	"fmt"
	"strings"
	"time"
)

// ContactMessage, iletişim formundan gelen bir ziyaretçi mesajı.
// E-posta iletimi başarısız olsa bile kayıt silinmez; admin panel
// bu kayıtları gelen kutusu gibi listeler.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequest, public iletişim formunun gövdesi.
type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

// Validate — hata mesajları doğrudan API yanıtına yazılır, frontend
// bunları kullanıcıya gösterir; formatı değiştirmeyin.
func (r *ContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	if r.Name == "" {
		return fmt.Errorf("Name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("Email is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("Invalid email format")
	}
	if r.Message == "" {
		return fmt.Errorf("Message is required")
	}
	return nil
}
